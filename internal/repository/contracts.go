package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/docparse/docparse/internal/entity"
)

// DocumentRepository stores raw OCR text intake rows.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	// FindByHash returns the existing document with the given content
	// hash, or nil when none exists. Used for ingest deduplication.
	FindByHash(ctx context.Context, hash []byte) (*entity.Document, error)
}

// JobRepository tracks the lifecycle of parse jobs:
// QUEUED -> RUNNING -> PARSED | FAILED.
type JobRepository interface {
	// Enqueue creates a QUEUED job row for the document.
	Enqueue(ctx context.Context, documentID uuid.UUID) (*entity.ParseJob, error)
	// Start flips the job to RUNNING and stamps started_at.
	Start(ctx context.Context, jobID uuid.UUID) error
	GetJob(ctx context.Context, jobID uuid.UUID) (*entity.ParseJob, error)
	FinishSuccess(ctx context.Context, jobID uuid.UUID) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, reason string) error
}

// ResultRepository stores successful extraction outcomes.
type ResultRepository interface {
	Save(ctx context.Context, res *entity.ExtractionResult) error
	GetByDocumentID(ctx context.Context, documentID uuid.UUID) (*entity.ExtractionResult, error)
	List(ctx context.Context, from, to *time.Time) ([]*entity.ExtractionResult, error)
}
