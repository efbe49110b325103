package extract

import (
	"regexp"
	"strings"

	"github.com/docparse/docparse/constants"
)

var (
	// word boundaries on the label tokens keep "no" from matching
	// inside words like "not"
	reReceiptNumber = regexp.MustCompile(`(?i)\breceipt[ \t]*(?:no\b\.?|number\b|id\b|#)[ \t]*[:#]?[ \t]*([A-Za-z0-9\-]+)`)
	// catch-all: the start of any line can be the merchant; deliberately
	// low-confidence, high-recall
	reMerchantLine = regexp.MustCompile(`(?m)^([A-Za-z][A-Za-z&.,'\- ]{2,})`)
	// closed vocabulary only
	rePaymentMethod = regexp.MustCompile(`(?i)\b(?:payment[ \t]*(?:method)?|paid[ \t]*(?:by|via)?)[ \t]*[:\-]?[ \t]*((?:[A-Za-z]+[ \t]+card)|cash|check|paypal|venmo)\b`)
)

func extractReceipt(text string, fields []Field) []Field {
	for _, m := range reReceiptNumber.FindAllStringSubmatch(text, -1) {
		fields = append(fields, Field{Name: constants.FieldReceiptNumber, Value: m[1], Confidence: 0.90})
	}
	for _, m := range reMerchantLine.FindAllStringSubmatch(text, -1) {
		fields = append(fields, Field{Name: constants.FieldMerchantName, Value: strings.TrimSpace(m[1]), Confidence: 0.60})
	}
	if m, ok := firstGroup(rePaymentMethod, text); ok {
		fields = append(fields, Field{Name: constants.FieldPaymentMethod, Value: strings.ToLower(m), Confidence: 0.80})
	}
	return fields
}
