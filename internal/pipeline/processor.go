package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docparse/docparse/internal/entity"
	"github.com/docparse/docparse/internal/extract"
	"github.com/docparse/docparse/internal/repository"
)

// Processor coordinates one extraction pass over a stored document:
// load text, run the rule engine, persist the outcome, advance the
// parse job.
type Processor struct {
	logger    *slog.Logger
	extractor *extract.Extractor
	docs      repository.DocumentRepository
	jobs      repository.JobRepository
	results   repository.ResultRepository
}

func NewProcessor(
	logger *slog.Logger,
	extractor *extract.Extractor,
	docs repository.DocumentRepository,
	jobs repository.JobRepository,
	results repository.ResultRepository,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if extractor == nil {
		extractor = extract.NewExtractor(logger)
	}
	return &Processor{
		logger:    logger,
		extractor: extractor,
		docs:      docs,
		jobs:      jobs,
		results:   results,
	}
}

// EnqueueDocument registers a QUEUED parse job for the document; a
// worker advances it later via ProcessJob.
func (p *Processor) EnqueueDocument(ctx context.Context, documentID uuid.UUID) (*entity.ParseJob, error) {
	job, err := p.jobs.Enqueue(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("enqueue job: %w", err)
	}
	p.logger.Debug("processor.job.queued", "document_id", documentID, "job_id", job.ID)
	return job, nil
}

// ProcessJob drives one queued job to a terminal status. A document
// that already has a result is skipped unless force is set; the job
// still resolves as parsed.
func (p *Processor) ProcessJob(ctx context.Context, jobID, documentID uuid.UUID, force bool) error {
	doc, err := p.docs.GetByID(ctx, documentID)
	if err != nil {
		_ = p.jobs.FinishFailure(ctx, jobID, err.Error())
		return fmt.Errorf("get document: %w", err)
	}

	if !force {
		if existing, err := p.results.GetByDocumentID(ctx, doc.ID); err == nil && existing != nil {
			_ = p.jobs.FinishSuccess(ctx, jobID)
			p.logger.Info("processor.parse.skipped",
				"document_id", doc.ID, "job_id", jobID, "result_id", existing.ID)
			return nil
		}
	}

	if err := p.jobs.Start(ctx, jobID); err != nil {
		return fmt.Errorf("start job: %w", err)
	}

	out := p.extractor.Extract(extract.Input{
		RawText:      doc.RawText,
		OCRSucceeded: doc.OCRSucceeded,
	})
	if !out.OK {
		_ = p.jobs.FinishFailure(ctx, jobID, out.FailureReason)
		p.logger.Error("processor.extract.failed",
			"document_id", doc.ID, "job_id", jobID, "reason", out.FailureReason)
		return fmt.Errorf("extraction failed: %s", out.FailureReason)
	}

	res := &entity.ExtractionResult{
		DocumentID:     doc.ID,
		Category:       string(out.Category),
		Fields:         out.Fields,
		NormalizedText: out.NormalizedText,
	}
	if err := p.results.Save(ctx, res); err != nil {
		_ = p.jobs.FinishFailure(ctx, jobID, err.Error())
		return fmt.Errorf("save result: %w", err)
	}
	if err := p.jobs.FinishSuccess(ctx, jobID); err != nil {
		return err
	}

	p.logger.Info("processor.parse.ok",
		"document_id", doc.ID,
		"job_id", jobID,
		"category", res.Category,
		"fields", len(res.Fields),
	)
	return nil
}

// ProcessDocument is the synchronous path: enqueue a job and run it to
// completion in one call. Always reprocesses. Returns the job ID.
func (p *Processor) ProcessDocument(ctx context.Context, documentID uuid.UUID) (uuid.UUID, error) {
	job, err := p.EnqueueDocument(ctx, documentID)
	if err != nil {
		return uuid.Nil, err
	}
	return job.ID, p.ProcessJob(ctx, job.ID, documentID, true)
}
