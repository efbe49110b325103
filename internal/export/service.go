package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/docparse/docparse/internal/entity"
	"github.com/docparse/docparse/internal/render"
	"github.com/docparse/docparse/internal/repository"
)

// Service is a tiny façade over the result repository that produces
// XLSX or CSV bytes for exports.
type Service struct {
	results repository.ResultRepository
	logger  *slog.Logger
}

var exportHeaders = []string{
	"Document ID",
	"Category",
	"Field",
	"Value",
	"Confidence",
	"Extracted At",
}

// exportRows flattens stored results into one row per grouped field,
// field names sorted within each result so output is stable.
func exportRows(results []*entity.ExtractionResult) [][]string {
	var rows [][]string
	for _, r := range results {
		grouped := render.Group(r.Fields)
		names := make([]string, 0, len(grouped))
		for name := range grouped {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fv := grouped[name]
			rows = append(rows, []string{
				r.DocumentID.String(),
				r.Category,
				name,
				fv.Value,
				fmt.Sprintf("%.2f", fv.Confidence),
				r.CreatedAt.UTC().Format(time.RFC3339),
			})
		}
	}
	return rows
}

func NewService(results repository.ResultRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{results: results, logger: logger}
}

// ExportXLSX returns an XLSX workbook (as bytes) for the given date
// window. If only from is provided -> from..today (inclusive); if
// neither -> all stored results. A non-empty category keeps only
// results of that category.
func (s *Service) ExportXLSX(ctx context.Context, from, to *time.Time, category string) ([]byte, error) {
	start := time.Now()

	results, err := s.listWindow(ctx, from, to, category)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Extractions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, cells := range exportRows(results) {
		for col, v := range cells {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 38) // document id
	_ = f.SetColWidth(sheet, "B", "B", 16) // category
	_ = f.SetColWidth(sheet, "C", "C", 22) // field
	_ = f.SetColWidth(sheet, "D", "D", 40) // value
	_ = f.SetColWidth(sheet, "E", "E", 12) // confidence
	_ = f.SetColWidth(sheet, "F", "F", 22) // timestamp

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"results", len(results),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportCSV returns the same rows as ExportXLSX as CSV bytes.
func (s *Service) ExportCSV(ctx context.Context, from, to *time.Time, category string) ([]byte, error) {
	start := time.Now()

	results, err := s.listWindow(ctx, from, to, category)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeaders); err != nil {
		return nil, err
	}
	for _, row := range exportRows(results) {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv write: %w", err)
	}

	s.logger.Info("export.csv.ok",
		"results", len(results),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// listWindow normalizes the date window to day boundaries in UTC and
// queries the store, then applies the optional category filter.
// from without to means from..today inclusive.
func (s *Service) listWindow(ctx context.Context, from, to *time.Time, category string) ([]*entity.ExtractionResult, error) {
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}

	results, err := s.results.List(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	if category == "" {
		return results, nil
	}
	var kept []*entity.ExtractionResult
	for _, r := range results {
		if r.Category == category {
			kept = append(kept, r)
		}
	}
	return kept, nil
}
