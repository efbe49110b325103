package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docparse/docparse/constants"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want constants.DocumentCategory
	}{
		{name: "invoice keyword", text: "This Invoice is due on receipt of goods", want: constants.Invoice},
		{name: "bill to", text: "BILL TO: Northwind Traders", want: constants.Invoice},
		{name: "receipt keyword", text: "Sales Receipt #100", want: constants.Receipt},
		{name: "payment received", text: "Payment Received - thank you", want: constants.Receipt},
		{name: "statement keyword", text: "Monthly Statement for account", want: constants.Statement},
		{name: "account summary", text: "Account Summary as of March", want: constants.Statement},
		{name: "purchase order", text: "Purchase Order for widgets", want: constants.PurchaseOrder},
		{name: "order confirmation", text: "Order Confirmation #500", want: constants.PurchaseOrder},
		{name: "order alone is not enough", text: "your order has shipped", want: constants.Unknown},
		{name: "no keywords", text: "random unrelated content", want: constants.Unknown},
		{name: "empty", text: "", want: constants.Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

// Rule order decides, not rule specificity: a statement that also
// mentions "invoice" resolves to Invoice.
func TestClassifyPriority(t *testing.T) {
	assert.Equal(t, constants.Invoice, Classify("Account statement with invoice attached"))
	assert.Equal(t, constants.Receipt, Classify("receipt for your statement of work"))
	assert.Equal(t, constants.Invoice, Classify("purchase order against invoice NV-1001"))
}
