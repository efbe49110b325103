package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/docparse/docparse/constants"
	"github.com/docparse/docparse/internal/export"
	"github.com/docparse/docparse/internal/repository"
)

func newExportCmd() *cobra.Command {
	var (
		dataDir     string
		outPath     string
		format      string
		fromStr     string
		toStr       string
		categoryStr string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored extraction results to an XLSX workbook or CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "xlsx" && format != "csv" {
				return fmt.Errorf("unsupported format %q (want xlsx or csv)", format)
			}

			store, err := repository.NewSQLiteStore(dataDir)
			if err != nil {
				return err
			}
			defer store.Close()

			var category string
			if categoryStr != "" {
				cat, ok := constants.Canonicalize(categoryStr)
				if !ok {
					return fmt.Errorf("unknown category %q (valid: %s)",
						categoryStr, strings.Join(constants.AsStringSlice(), ", "))
				}
				category = string(cat)
			}

			var from, to *time.Time
			if fromStr != "" {
				t, err := time.ParseInLocation("2006-01-02", fromStr, time.UTC)
				if err != nil {
					return fmt.Errorf("invalid --from: %w", err)
				}
				from = &t
			}
			if toStr != "" {
				t, err := time.ParseInLocation("2006-01-02", toStr, time.UTC)
				if err != nil {
					return fmt.Errorf("invalid --to: %w", err)
				}
				to = &t
			}

			svc := export.NewService(store, quietLogger())
			var b []byte
			switch format {
			case "xlsx":
				b, err = svc.ExportXLSX(cmd.Context(), from, to, category)
			case "csv":
				b, err = svc.ExportCSV(cmd.Context(), from, to, category)
			}
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, b, 0644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", outPath, len(b))
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "local store directory (default ~/.docparse/data)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "extractions.xlsx", "output file path")
	cmd.Flags().StringVarP(&format, "format", "f", "xlsx", "output format: xlsx or csv")
	cmd.Flags().StringVar(&fromStr, "from", "", "start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&toStr, "to", "", "end date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&categoryStr, "category", "", "only export results of this category (synonyms accepted, e.g. \"po\")")
	return cmd
}
