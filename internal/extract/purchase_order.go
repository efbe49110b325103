package extract

import (
	"regexp"
	"strings"

	"github.com/docparse/docparse/constants"
)

var (
	// the bare "po" form requires a label token after it; without one,
	// any word starting with "po" would donate its tail as the number
	rePONumber     = regexp.MustCompile(`(?i)\b(?:(?:purchase[ \t]+order|p\.o\.?)[ \t]*(?:no\b\.?|number\b|#)?|po[ \t]*(?:no\b\.?|number\b|#))[ \t]*[:#]?[ \t]*([A-Za-z0-9\-]+)`)
	reDeliveryDate = regexp.MustCompile(`(?i)\b(?:delivery|ship(?:ping)?)[ \t]*date[ \t]*[:\-]?[ \t]*([^\n]+)`)
)

func extractPurchaseOrder(text string, fields []Field) []Field {
	if m, ok := firstGroup(rePONumber, text); ok {
		fields = append(fields, Field{Name: constants.FieldPurchaseOrderNumber, Value: m, Confidence: 0.90})
	}
	if m, ok := firstGroup(reDeliveryDate, text); ok {
		fields = append(fields, Field{Name: constants.FieldDeliveryDate, Value: strings.TrimSpace(m), Confidence: 0.85})
	}
	return fields
}
