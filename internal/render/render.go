// Package render is the consumer side of the extraction contract: the
// core emits every candidate field, and rendering groups candidates
// sharing a name and selects the highest-confidence value. That policy
// lives here on purpose — never inside the extraction core.
package render

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/docparse/docparse/internal/extract"
)

// FieldValue is the representative value chosen for one field name.
type FieldValue struct {
	Value      string  `json:"value"`
	Confidence float32 `json:"confidence"`
}

// Document is the rendered shape of one successful extraction.
type Document struct {
	Category   string                `json:"category"`
	Fields     map[string]FieldValue `json:"fields"`
	Candidates []extract.Field       `json:"candidates,omitempty"`
}

// Group collapses duplicate field names to the highest-confidence
// candidate. On equal confidence the earlier candidate wins; rule
// order is meaningful upstream.
func Group(fields []extract.Field) map[string]FieldValue {
	out := make(map[string]FieldValue, len(fields))
	for _, f := range fields {
		cur, ok := out[f.Name]
		if !ok || f.Confidence > cur.Confidence {
			out[f.Name] = FieldValue{Value: f.Value, Confidence: f.Confidence}
		}
	}
	return out
}

// JSON renders category+fields as indented JSON and validates the
// bytes against the result schema before returning them.
func JSON(category string, fields []extract.Field) ([]byte, error) {
	doc := Document{
		Category:   category,
		Fields:     Group(fields),
		Candidates: fields,
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	if err := ValidateJSONAgainstSchema(resultSchema, b); err != nil {
		return nil, err
	}
	return b, nil
}

// sortedNames returns the grouped field names in stable order.
func sortedNames(grouped map[string]FieldValue) []string {
	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
