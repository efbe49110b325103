package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docparse/docparse/constants"
)

func TestExtractReceipt(t *testing.T) {
	text := "Receipt No: R-4821\nStarbucks Coffee\nTotal: $8.75\nPayment Method: Visa Card"
	fields := extractReceipt(text, nil)

	num := requireSingle(t, fields, constants.FieldReceiptNumber)
	assert.Equal(t, "R-4821", num.Value)
	assert.Equal(t, float32(0.90), num.Confidence)

	merchants := fieldsByName(fields, constants.FieldMerchantName)
	require.NotEmpty(t, merchants)
	var values []string
	for _, m := range merchants {
		values = append(values, m.Value)
		assert.Equal(t, float32(0.60), m.Confidence)
	}
	// catch-all line-start rule: high recall, the real merchant is in
	// there but so is other line-head text
	assert.Contains(t, values, "Starbucks Coffee")

	pay := requireSingle(t, fields, constants.FieldPaymentMethod)
	assert.Equal(t, "visa card", pay.Value)
	assert.Equal(t, float32(0.80), pay.Confidence)
}

func TestExtractReceiptNumberPerMatch(t *testing.T) {
	text := "receipt #A1\nduplicate receipt #A2"
	nums := fieldsByName(extractReceipt(text, nil), constants.FieldReceiptNumber)
	require.Len(t, nums, 2)
	assert.Equal(t, "A1", nums[0].Value)
	assert.Equal(t, "A2", nums[1].Value)
}

// "no" inside an ordinary word must not act as the number label.
func TestExtractReceiptNumberLabelBoundary(t *testing.T) {
	fields := extractReceipt("Receipt not valid without signature\nReceipt No: R-9", nil)
	nums := fieldsByName(fields, constants.FieldReceiptNumber)
	require.Len(t, nums, 1)
	assert.Equal(t, "R-9", nums[0].Value)
}

func TestExtractReceiptPaymentVocabulary(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "cash", text: "paid by: cash", want: "cash"},
		{name: "paypal", text: "Payment: PayPal", want: "paypal"},
		{name: "card", text: "payment method - master card", want: "master card"},
		{name: "venmo", text: "paid via venmo", want: "venmo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pay := requireSingle(t, extractReceipt(tt.text, nil), constants.FieldPaymentMethod)
			assert.Equal(t, tt.want, pay.Value)
		})
	}
}

func TestExtractStatement(t *testing.T) {
	text := "Account Summary\nAccount Number: 4411-2290\nStatement Period: Jan 1 - Jan 31, 2024"
	fields := extractStatement(text, nil)

	acct := requireSingle(t, fields, constants.FieldAccountNumber)
	assert.Equal(t, "4411-2290", acct.Value)
	assert.Equal(t, float32(0.90), acct.Confidence)

	period := requireSingle(t, fields, constants.FieldStatementPeriod)
	assert.Equal(t, "Jan 1 - Jan 31, 2024", period.Value)
	assert.Equal(t, float32(0.85), period.Confidence)
}

func TestExtractStatementBillingPeriod(t *testing.T) {
	fields := extractStatement("Billing Period: 2024-01-01 to 2024-01-31", nil)
	period := requireSingle(t, fields, constants.FieldStatementPeriod)
	assert.Equal(t, "2024-01-01 to 2024-01-31", period.Value)
}

func TestExtractPurchaseOrder(t *testing.T) {
	text := "Order Confirmation\nPurchase Order No: PO-7741\nDelivery Date: 2024-04-02"
	fields := extractPurchaseOrder(text, nil)

	num := requireSingle(t, fields, constants.FieldPurchaseOrderNumber)
	assert.Equal(t, "PO-7741", num.Value)
	assert.Equal(t, float32(0.90), num.Confidence)

	date := requireSingle(t, fields, constants.FieldDeliveryDate)
	assert.Equal(t, "2024-04-02", date.Value)
	assert.Equal(t, float32(0.85), date.Confidence)
}

// Prose words starting with "po" ahead of the real label must not
// hijack the purchase order number (first match wins).
func TestExtractPurchaseOrderIgnoresPOPrefixWords(t *testing.T) {
	text := "Order Confirmation\nPostage paid\nPurchase Order No: PO-7741"
	num := requireSingle(t, extractPurchaseOrder(text, nil), constants.FieldPurchaseOrderNumber)
	assert.Equal(t, "PO-7741", num.Value)
}

func TestExtractPurchaseOrderPOAbbreviation(t *testing.T) {
	fields := extractPurchaseOrder("P.O. #88231\nShip Date: May 2, 2024", nil)

	num := requireSingle(t, fields, constants.FieldPurchaseOrderNumber)
	assert.Equal(t, "88231", num.Value)

	date := requireSingle(t, fields, constants.FieldDeliveryDate)
	assert.Equal(t, "May 2, 2024", date.Value)
}
