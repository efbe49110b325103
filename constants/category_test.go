package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		input string
		want  DocumentCategory
		ok    bool
	}{
		{input: "invoice", want: Invoice, ok: true},
		{input: "  Receipt ", want: Receipt, ok: true},
		{input: "po", want: PurchaseOrder, ok: true},
		{input: "bank statement", want: Statement, ok: true},
		{input: "bill", want: Invoice, ok: true},
		{input: "memo", want: Unknown, ok: false},
		{input: "", want: Unknown, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Canonicalize(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestAsStringSlice(t *testing.T) {
	got := AsStringSlice()
	assert.Contains(t, got, string(Invoice))
	assert.Contains(t, got, string(PurchaseOrder))
	assert.Len(t, got, len(allCategories))
}
