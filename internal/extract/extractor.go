package extract

import (
	"fmt"
	"log/slog"

	"github.com/docparse/docparse/constants"
)

// The only two failure reasons the core produces. Pattern misses are
// not failures: no match means no field, and the pass is still a
// success.
const (
	ReasonOCRFailed     = "OCR processing failed, cannot extract structured data"
	reasonProcessPrefix = "Text processing failed: "
)

// Extractor sequences normalization, classification, common extraction
// and category extraction into one forward pass. Stateless; safe for
// concurrent use from multiple goroutines.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract processes one document's text to completion. If upstream OCR
// signaled failure the text is never touched. Any fault inside the
// pass is caught at this boundary and converted to a failure outcome;
// no partial field list escapes.
func (e *Extractor) Extract(in Input) (out Outcome) {
	if !in.OCRSucceeded {
		return failure(ReasonOCRFailed)
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("extract.pipeline.panic", "cause", r)
			out = failure(reasonProcessPrefix + fmt.Sprint(r))
		}
	}()

	normalized := Normalize(in.RawText)
	category := Classify(normalized)
	fields := ExtractCommon(normalized)
	fields = extractCategoryFields(category, normalized, fields)

	e.logger.Debug("extract.pipeline.ok",
		"category", string(category),
		"fields", len(fields),
		"normalized_bytes", len(normalized),
	)
	return success(category, fields, normalized)
}

// extractCategoryFields dispatches on the category computed upstream;
// exactly one branch runs, and none for Unknown.
func extractCategoryFields(category constants.DocumentCategory, text string, fields []Field) []Field {
	switch category {
	case constants.Invoice:
		return extractInvoice(text, fields)
	case constants.Receipt:
		return extractReceipt(text, fields)
	case constants.Statement:
		return extractStatement(text, fields)
	case constants.PurchaseOrder:
		return extractPurchaseOrder(text, fields)
	default:
		return fields
	}
}
