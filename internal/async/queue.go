package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one queued parse job. ID refers to the parse_jobs row created
// at enqueue time; TraceID correlates the worker's log lines and is
// assigned on Enqueue when empty.
type Job struct {
	ID          uuid.UUID
	DocumentID  uuid.UUID
	Force       bool // reprocess even if a result already exists
	SubmittedAt time.Time
	TraceID     string
}

// Runner is what the queue drives; satisfied by pipeline.Processor.
type Runner interface {
	ProcessJob(ctx context.Context, jobID, documentID uuid.UUID, force bool) error
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
