package extract

import (
	"regexp"

	"github.com/docparse/docparse/constants"
)

// Building blocks for the labeled amount rules. Bare numbers matching
// numberPat alone are deliberately never emitted as fields.
const (
	numberPat   = `((?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d{2})?)`
	currencyPat = `(?:[$£€]|usd|eur|gbp|cad|aud|inr|jpy)?\s*`
)

// Three independent date pattern families, applied in order. Every
// match from every family becomes its own Date field — no dedup, no
// "pick one"; the consumer chooses a representative.
var dateRules = []*regexp.Regexp{
	// day-first or month-first numeric: D[/.-]D[/.-]D
	regexp.MustCompile(`\b\d{1,2}[/.\-]\d{1,2}[/.\-]\d{2,4}\b`),
	// ISO-like: YYYY[/.-]M[/.-]D
	regexp.MustCompile(`\b\d{4}[/.\-]\d{1,2}[/.\-]\d{1,2}\b`),
	// textual month: Mon[th] D[,] YYYY
	regexp.MustCompile(`(?i)\b(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}\b`),
}

const dateConfidence float32 = 0.80

type amountRule struct {
	re         *regexp.Regexp
	field      string
	confidence float32
}

// Total and subtotal share one pattern and dispatch on the optional
// "sub" prefix; a separate \btotal rule would also fire on the spaced
// "Sub Total" label (the boundary holds after the space) and report
// the subtotal as the document total.
var reTotalAmount = regexp.MustCompile(`(?i)\b(sub\s?)?total\s*[:\-]\s*` + currencyPat + numberPat)

// Static rule table: (pattern, fieldName, confidence). Confidence is a
// fixed per-rule constant, never computed from match quality.
var amountRules = []amountRule{
	{regexp.MustCompile(`(?i)\b(?:tax|vat|gst)\s*[:\-]\s*` + currencyPat + numberPat), constants.FieldTaxAmount, 0.85},
}

// ExtractCommon runs the category-independent rules (dates, labeled
// amounts) over normalized text. Runs for every category, Unknown
// included.
func ExtractCommon(normalized string) []Field {
	var fields []Field
	for _, re := range dateRules {
		for _, m := range re.FindAllString(normalized, -1) {
			fields = append(fields, Field{Name: constants.FieldDate, Value: m, Confidence: dateConfidence})
		}
	}
	for _, m := range reTotalAmount.FindAllStringSubmatch(normalized, -1) {
		if m[1] != "" {
			fields = append(fields, Field{Name: constants.FieldSubtotalAmount, Value: m[2], Confidence: 0.85})
		} else {
			fields = append(fields, Field{Name: constants.FieldTotalAmount, Value: m[2], Confidence: 0.90})
		}
	}
	for _, rule := range amountRules {
		for _, m := range rule.re.FindAllStringSubmatch(normalized, -1) {
			fields = append(fields, Field{Name: rule.field, Value: m[1], Confidence: rule.confidence})
		}
	}
	return fields
}
