package extract

import (
	"regexp"
	"strings"

	"github.com/docparse/docparse/constants"
)

var (
	reAccountNumber   = regexp.MustCompile(`(?i)\baccount[ \t]*(?:no\.?|number|#)?[ \t]*[:#]?[ \t]*([0-9][0-9\-]{3,})`)
	reStatementPeriod = regexp.MustCompile(`(?i)\b(?:statement|billing)[ \t]*period[ \t]*[:\-]?[ \t]*([^\n]+)`)
)

func extractStatement(text string, fields []Field) []Field {
	if m, ok := firstGroup(reAccountNumber, text); ok {
		fields = append(fields, Field{Name: constants.FieldAccountNumber, Value: m, Confidence: 0.90})
	}
	if m, ok := firstGroup(reStatementPeriod, text); ok {
		fields = append(fields, Field{Name: constants.FieldStatementPeriod, Value: strings.TrimSpace(m), Confidence: 0.85})
	}
	return fields
}
