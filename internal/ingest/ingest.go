// Package ingest registers OCR text dumps (one .txt file per scanned
// document, written by the external OCR collaborator) as documents
// ready for extraction. Content-hash deduplication keeps rescans cheap.
package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/docparse/docparse/internal/entity"
	"github.com/docparse/docparse/internal/repository"
)

// Result is the per-file ingest outcome.
type Result struct {
	SourcePath   string
	DocumentID   uuid.UUID
	Deduplicated bool
	HashHex      string
	Err          string
}

type Service struct {
	docs   repository.DocumentRepository
	logger *slog.Logger
}

func NewService(docs repository.DocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docs: docs, logger: logger}
}

// IngestPath registers one OCR dump. A dump that is empty after
// trimming is recorded with ocr_succeeded=false: the upstream pass
// produced nothing usable, and extraction will short-circuit on it.
func (s *Service) IngestPath(ctx context.Context, path string) (Result, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Result{SourcePath: path, Err: err.Error()}, fmt.Errorf("read %s: %w", path, err)
	}

	sum := sha256.Sum256(b)
	hash := sum[:]
	hashHex := hex.EncodeToString(hash)

	existing, err := s.docs.FindByHash(ctx, hash)
	if err != nil {
		return Result{SourcePath: path, HashHex: hashHex, Err: err.Error()}, err
	}
	if existing != nil {
		s.logger.Debug("ingest.dedup", "path", path, "document_id", existing.ID)
		return Result{
			SourcePath:   path,
			DocumentID:   existing.ID,
			Deduplicated: true,
			HashHex:      hashHex,
		}, nil
	}

	doc, err := s.docs.Create(ctx, &entity.Document{
		SourcePath:   path,
		RawText:      string(b),
		OCRSucceeded: strings.TrimSpace(string(b)) != "",
		ContentHash:  hash,
	})
	if err != nil {
		return Result{SourcePath: path, HashHex: hashHex, Err: err.Error()}, err
	}

	s.logger.Debug("ingest.ok", "path", path, "document_id", doc.ID, "bytes", len(b))
	return Result{SourcePath: path, DocumentID: doc.ID, HashHex: hashHex}, nil
}
