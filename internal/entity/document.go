package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document is one unit of raw OCR output registered for extraction.
type Document struct {
	ID           uuid.UUID `json:"id"`
	SourcePath   string    `json:"source_path"`
	RawText      string    `json:"raw_text"`
	OCRSucceeded bool      `json:"ocr_succeeded"`
	ContentHash  []byte    `json:"content_hash"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// ParseJob tracks one extraction attempt over a document. Created
// QUEUED when the work is accepted; StartedAt is stamped when a worker
// picks it up.
type ParseJob struct {
	ID           uuid.UUID  `json:"id"`
	DocumentID   uuid.UUID  `json:"document_id"`
	Status       string     `json:"status"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	QueuedAt     time.Time  `json:"queued_at"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
}
