package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docparse/docparse/constants"
)

func requireSingle(t *testing.T, fields []Field, name string) Field {
	t.Helper()
	got := fieldsByName(fields, name)
	require.Len(t, got, 1, "expected exactly one %s field", name)
	return got[0]
}

func TestExtractInvoiceFull(t *testing.T) {
	text := "Invoice NV-1007\nDate: 2024-03-31\nTotalAmount 1875.50\nVendorName ABC.LTD"
	fields := extractInvoice(text, ExtractCommon(text))

	num := requireSingle(t, fields, constants.FieldInvoiceNumber)
	assert.Equal(t, "NV-1007", num.Value)
	assert.Equal(t, float32(0.85), num.Confidence)

	date := requireSingle(t, fields, constants.FieldInvoiceDate)
	assert.Equal(t, "2024-03-31", date.Value)
	assert.Equal(t, float32(0.85), date.Confidence)

	total := requireSingle(t, fields, constants.FieldTotalAmount)
	assert.Equal(t, "1875.50", total.Value)
	assert.Equal(t, float32(0.85), total.Confidence)

	vendor := requireSingle(t, fields, constants.FieldVendorName)
	assert.Equal(t, "ABC.LTD", vendor.Value)
	assert.Equal(t, float32(0.85), vendor.Confidence)
}

// The invoice-specific date supersedes the generic one: all Date fields
// emitted by the common pass are removed before invoice rules run.
func TestExtractInvoiceDropsGenericDates(t *testing.T) {
	text := "Invoice dated 03/15/2024, also 04/16/2024"
	common := ExtractCommon(text)
	require.Len(t, fieldsByName(common, constants.FieldDate), 2)

	fields := extractInvoice(text, common)
	assert.Empty(t, fieldsByName(fields, constants.FieldDate))
}

func TestExtractInvoiceTotalFallbacks(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "table shaped", text: "TotalAmount 1875.50", want: "1875.50"},
		{name: "bare decimal fallback", text: "charges of 450.75 apply", want: "450.75"},
		{name: "label with separator", text: "TotalAmount: $23.00", want: "23.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := extractInvoice(tt.text, nil)
			total := requireSingle(t, fields, constants.FieldTotalAmount)
			assert.Equal(t, tt.want, total.Value)
			assert.Equal(t, float32(0.85), total.Confidence)
		})
	}
}

func TestExtractInvoiceTotalAbsent(t *testing.T) {
	fields := extractInvoice("no numbers of note here", nil)
	assert.Empty(t, fieldsByName(fields, constants.FieldTotalAmount))
}

func TestExtractVendorNameChain(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		want     string
		wantConf float32
	}{
		{name: "known vendor literal", text: "goods sold by ABC.LTD this month", want: "ABC.LTD", wantConf: 0.85},
		{name: "label", text: "VendorName: Fabrikam Industries", want: "Fabrikam Industries", wantConf: 0.85},
		{name: "company suffix after digit", text: "Invoice 42 Contoso Ltd", want: "Contoso Ltd", wantConf: 0.85},
		{name: "table scan fallback", text: "Invoice No 55\nVendorName\nNorthwind Traders", want: "Northwind Traders", wantConf: 0.80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vendor, conf, ok := extractVendorName(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.want, vendor)
			assert.Equal(t, tt.wantConf, conf)
		})
	}
}

func TestExtractVendorNameRejections(t *testing.T) {
	// numeric and too-short candidates are rejected, the chain moves on
	vendor, conf, ok := extractVendorName("VendorName: 12\n9 Acme Corp")
	require.True(t, ok)
	assert.Equal(t, "Acme Corp", vendor)
	assert.Equal(t, float32(0.85), conf)

	// nothing acceptable anywhere
	_, _, ok = extractVendorName("no vendor情報 here")
	assert.False(t, ok)
}

func TestExtractVendorNameTableScanRules(t *testing.T) {
	tests := []struct {
		name string
		text string
		ok   bool
	}{
		{name: "next line numeric", text: "VendorName\n12345"},
		{name: "next line starts with Invoice", text: "VendorName\nInvoice 99"},
		{name: "next line empty", text: "VendorName\n\n"},
		{name: "next line acceptable", text: "VendorName\nWayne Enterprises", ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := extractVendorName(tt.text)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
