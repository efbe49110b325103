package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/docparse/docparse/internal/extract"
	"github.com/docparse/docparse/internal/render"
)

func newExtractCmd() *cobra.Command {
	var (
		format    string
		ocrFailed bool
	)

	cmd := &cobra.Command{
		Use:   "extract [file...]",
		Short: "Run extraction over OCR text files (or stdin) and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "csv" {
				return fmt.Errorf("unsupported format %q (want json or csv)", format)
			}

			extractor := extract.NewExtractor(quietLogger())

			run := func(raw string) error {
				out := extractor.Extract(extract.Input{RawText: raw, OCRSucceeded: !ocrFailed})
				if !out.OK {
					return fmt.Errorf("%s", out.FailureReason)
				}
				var (
					b   []byte
					err error
				)
				switch format {
				case "json":
					b, err = render.JSON(string(out.Category), out.Fields)
				case "csv":
					b, err = render.CSV(string(out.Category), out.Fields)
				}
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(append(b, '\n'))
				return err
			}

			if len(args) == 0 {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				return run(string(raw))
			}
			for _, path := range args {
				raw, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				if err := run(string(raw)); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or csv")
	cmd.Flags().BoolVar(&ocrFailed, "ocr-failed", false, "treat input as a failed OCR pass")
	return cmd
}
