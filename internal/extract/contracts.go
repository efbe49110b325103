// Package extract turns raw OCR text into a typed, structured record:
// a document category plus a set of named fields, each carrying a
// confidence score. The pipeline is a single forward pass — normalize,
// classify, common extraction, category extraction — with no
// backtracking across stages.
package extract

import (
	"github.com/docparse/docparse/constants"
)

// Input is what the OCR collaborator hands us for one document.
// RawText may be empty.
type Input struct {
	RawText      string
	OCRSucceeded bool
}

// Field is a named, confidence-scored value extracted from text.
// Multiple fields may share the same name; the core never deduplicates.
// Downstream consumers group by name and pick the highest confidence.
type Field struct {
	Name       string  `json:"name"`
	Value      string  `json:"value"`
	Confidence float32 `json:"confidence"`
}

// Outcome is the result of one extraction pass. Exactly one of the two
// shapes holds: OK with category/fields/normalized text, or not-OK with
// a failure reason. Created once per invocation, immutable.
type Outcome struct {
	OK             bool                       `json:"ok"`
	Category       constants.DocumentCategory `json:"category,omitempty"`
	Fields         []Field                    `json:"fields,omitempty"`
	NormalizedText string                     `json:"normalized_text,omitempty"`
	FailureReason  string                     `json:"failure_reason,omitempty"`
}

func success(category constants.DocumentCategory, fields []Field, normalized string) Outcome {
	return Outcome{
		OK:             true,
		Category:       category,
		Fields:         fields,
		NormalizedText: normalized,
	}
}

func failure(reason string) Outcome {
	return Outcome{OK: false, FailureReason: reason}
}
