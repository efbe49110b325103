package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docparse/docparse/internal/async"
	"github.com/docparse/docparse/internal/extract"
	"github.com/docparse/docparse/internal/ingest"
	"github.com/docparse/docparse/internal/pipeline"
	"github.com/docparse/docparse/internal/repository"
)

func newIngestCmd() *cobra.Command {
	var (
		dataDir    string
		exts       []string
		skipHidden bool
	)

	cmd := &cobra.Command{
		Use:   "ingest <dir>",
		Short: "Ingest a directory of OCR text dumps into the local store and extract each",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := quietLogger()

			store, err := repository.NewSQLiteStore(dataDir)
			if err != nil {
				return err
			}
			defer store.Close()

			svc := ingest.NewService(store, logger)
			results, stats, err := svc.IngestDirectory(cmd.Context(), args[0], exts, skipHidden)
			if err != nil {
				return err
			}

			proc := pipeline.NewProcessor(logger, extract.NewExtractor(logger), store, store, store)
			queue := async.NewProcessorQueue(proc, logger, async.WithWorkers(4))
			for _, r := range results {
				if r.Err != "" || r.Deduplicated {
					continue
				}
				job, err := proc.EnqueueDocument(cmd.Context(), r.DocumentID)
				if err != nil {
					logger.Error("queueing document failed", "document_id", r.DocumentID, "error", err)
					continue
				}
				_ = queue.Enqueue(cmd.Context(), async.Job{ID: job.ID, DocumentID: r.DocumentID})
			}
			queue.Shutdown(cmd.Context())

			fmt.Fprintf(cmd.OutOrStdout(),
				"scanned %d, matched %d, ingested %d, deduplicated %d, failed %d (store: %s)\n",
				stats.Scanned, stats.Matched, stats.Succeeded, stats.Deduplicated, stats.Failed, store.Path())
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "local store directory (default ~/.docparse/data)")
	cmd.Flags().StringSliceVar(&exts, "ext", nil, "file extensions to include (default txt)")
	cmd.Flags().BoolVar(&skipHidden, "skip-hidden", true, "skip hidden files and directories")
	return cmd
}
