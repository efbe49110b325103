package constants

import (
	"strings"
)

// DocumentCategory is the coarse document type driving which extraction
// rules apply. Decided exactly once per document; never revised.
type DocumentCategory string

const (
	Invoice       DocumentCategory = "Invoice"
	Receipt       DocumentCategory = "Receipt"
	Statement     DocumentCategory = "Statement"
	PurchaseOrder DocumentCategory = "PurchaseOrder"
	Unknown       DocumentCategory = "Unknown"
)

var allCategories = []DocumentCategory{
	Invoice,
	Receipt,
	Statement,
	PurchaseOrder,
	Unknown,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps a free-form label (stored row, CLI flag) onto the
// closed category set. Unrecognized labels map to Unknown.
func Canonicalize(input string) (DocumentCategory, bool) {
	if input == "" {
		return Unknown, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]DocumentCategory{
		"bill":           Invoice,
		"tax invoice":    Invoice,
		"sales receipt":  Receipt,
		"bank statement": Statement,
		"account summary": Statement,
		"po":              PurchaseOrder,
		"purchase order":  PurchaseOrder,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Unknown, false
}
