package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/docparse/docparse/internal/extract"
)

// ExtractionResult is a stored successful extraction: the category plus
// every field candidate the rules emitted, duplicates included. The
// representative-value choice happens at render time, never here.
type ExtractionResult struct {
	ID             uuid.UUID       `json:"id"`
	DocumentID     uuid.UUID       `json:"document_id"`
	Category       string          `json:"category"`
	Fields         []extract.Field `json:"fields"`
	NormalizedText string          `json:"normalized_text"`
	CreatedAt      time.Time       `json:"created_at"`
}
