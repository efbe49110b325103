package render

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/docparse/docparse/internal/extract"
)

// CSV renders the grouped fields of one extraction as CSV rows, one
// row per field name, sorted for stable output.
func CSV(category string, fields []extract.Field) ([]byte, error) {
	grouped := Group(fields)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"category", "field", "value", "confidence"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, name := range sortedNames(grouped) {
		fv := grouped[name]
		row := []string{category, name, fv.Value, fmt.Sprintf("%.2f", fv.Confidence)}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
