// docparsed watches an inbox directory for OCR text dumps, runs the
// extraction pipeline over each new document, and persists results to
// Postgres.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/docparse/docparse/internal/async"
	"github.com/docparse/docparse/internal/common"
	"github.com/docparse/docparse/internal/extract"
	"github.com/docparse/docparse/internal/ingest"
	"github.com/docparse/docparse/internal/pipeline"
	"github.com/docparse/docparse/internal/repository"
)

func main() {
	// Logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slogger := slog.Default()

	// DB pool
	pool, err := repository.Open(ctx, cfg.Database, slogger)
	if err != nil {
		log.Fatalf("creating DB pool: %v", err)
	}
	defer pool.Close()

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, slogger); err != nil {
		log.Fatalf("DB health failed: %v", err)
	}
	log.Infow("DB health OK")

	store := repository.NewPostgresStore(pool)
	proc := pipeline.NewProcessor(slogger, extract.NewExtractor(slogger), store, store, store)
	queue := async.NewProcessorQueue(proc, slogger,
		async.WithWorkers(cfg.Queue.Workers),
		async.WithQueueSize(cfg.Queue.Size),
		async.WithProcessTimeout(cfg.Queue.ProcessTimeout),
	)
	ingestor := ingest.NewService(store, slogger)

	log.Infof("watching inbox %s every %s", cfg.Ingest.InboxDir, cfg.Ingest.ScanInterval)

	go scanLoop(ctx, log, cfg.Ingest, ingestor, proc, queue)

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	fmt.Println("stopped.")
}

// scanLoop periodically re-walks the inbox; deduplicated files are
// skipped, anything new is queued for extraction.
func scanLoop(ctx context.Context, log *zap.SugaredLogger, cfg common.IngestConfig, ingestor *ingest.Service, proc *pipeline.Processor, queue async.Queue) {
	ticker := time.NewTicker(cfg.ScanInterval)
	defer ticker.Stop()

	scan := func() {
		results, stats, err := ingestor.IngestDirectory(ctx, cfg.InboxDir, nil, cfg.SkipHidden)
		if err != nil {
			log.Errorw("inbox scan failed", "error", err)
			return
		}
		queued := 0
		for _, r := range results {
			if r.Err != "" || r.Deduplicated {
				continue
			}
			job, err := proc.EnqueueDocument(ctx, r.DocumentID)
			if err != nil {
				log.Errorw("queueing document failed", "document_id", r.DocumentID, "error", err)
				continue
			}
			_ = queue.Enqueue(ctx, async.Job{
				ID:          job.ID,
				DocumentID:  r.DocumentID,
				SubmittedAt: time.Now().UTC(),
			})
			queued++
		}
		if queued > 0 || stats.Failed > 0 {
			log.Infow("inbox scan",
				"matched", stats.Matched, "queued", queued,
				"deduplicated", stats.Deduplicated, "failed", stats.Failed)
		}
	}

	scan()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			scan()
		}
	}
}
