package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "collapses space runs", in: "a  \t b", want: "a b"},
		{name: "unifies line endings", in: "line1\r\nline2\rline3", want: "line1\nline2\nline3"},
		{name: "strips non printable", in: "café\x00 bar", want: "caf bar"},
		{name: "trims", in: "   Invoice 42   ", want: "Invoice 42"},
		{name: "keeps line structure", in: "VendorName\r\nAcme Corp\r\n", want: "VendorName\nAcme Corp"},
		{name: "trailing spaces per line", in: "a  \nb\t\n", want: "a\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Receipt No: R-4821\r\nStarbucks\tCoffee  \r\nTotal: $8.75",
		"  \x07Invoice NV-1007  TotalAmount  1875.50  ",
		"multi\n\n\nblank\r\rlines",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", in)
	}
}
