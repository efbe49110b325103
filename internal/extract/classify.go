package extract

import (
	"strings"

	"github.com/docparse/docparse/constants"
)

// classifierRules is a first-match-wins priority chain. Order is
// load-bearing: a document matching several rules always resolves to
// the earliest listed category (a statement that also says "invoice"
// is an Invoice).
var classifierRules = []struct {
	category constants.DocumentCategory
	match    func(s string) bool
}{
	{constants.Invoice, func(s string) bool {
		return strings.Contains(s, "invoice") || strings.Contains(s, "bill to")
	}},
	{constants.Receipt, func(s string) bool {
		return strings.Contains(s, "receipt") || strings.Contains(s, "payment received")
	}},
	{constants.Statement, func(s string) bool {
		return strings.Contains(s, "statement") || strings.Contains(s, "account summary")
	}},
	{constants.PurchaseOrder, func(s string) bool {
		return strings.Contains(s, "order") &&
			(strings.Contains(s, "purchase") || strings.Contains(s, "confirmation"))
	}},
}

// Classify assigns a document category from normalized text using
// case-insensitive substring tests. Decided once; never revised later
// in the pipeline.
func Classify(normalized string) constants.DocumentCategory {
	s := strings.ToLower(normalized)
	for _, rule := range classifierRules {
		if rule.match(s) {
			return rule.category
		}
	}
	return constants.Unknown
}
