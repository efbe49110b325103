package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/docparse/docparse/constants"
	"github.com/docparse/docparse/internal/common"
	"github.com/docparse/docparse/internal/entity"
	"github.com/docparse/docparse/internal/extract"
)

// PostgresStore implements the repository interfaces on a pgx pool.
// Schema is managed out-of-band (see migrations/postgres.sql).
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Create(ctx context.Context, doc *entity.Document) (*entity.Document, error) {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = time.Now().UTC()
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO documents (id, source_path, raw_text, ocr_succeeded, content_hash, uploaded_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		doc.ID, doc.SourcePath, doc.RawText, doc.OCRSucceeded, doc.ContentHash, doc.UploadedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}
	return doc, nil
}

func (s *PostgresStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, source_path, raw_text, ocr_succeeded, content_hash, uploaded_at
		 FROM documents WHERE id = $1`, id)
	var doc entity.Document
	err := row.Scan(&doc.ID, &doc.SourcePath, &doc.RawText, &doc.OCRSucceeded, &doc.ContentHash, &doc.UploadedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("document %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &doc, nil
}

func (s *PostgresStore) FindByHash(ctx context.Context, hash []byte) (*entity.Document, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, source_path, raw_text, ocr_succeeded, content_hash, uploaded_at
		 FROM documents WHERE content_hash = $1`, hash)
	var doc entity.Document
	err := row.Scan(&doc.ID, &doc.SourcePath, &doc.RawText, &doc.OCRSucceeded, &doc.ContentHash, &doc.UploadedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find document by hash: %w", err)
	}
	return &doc, nil
}

func (s *PostgresStore) Enqueue(ctx context.Context, documentID uuid.UUID) (*entity.ParseJob, error) {
	job := &entity.ParseJob{
		ID:         uuid.New(),
		DocumentID: documentID,
		Status:     string(constants.JobStatusQueued),
		QueuedAt:   time.Now().UTC(),
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO parse_jobs (id, document_id, status, queued_at) VALUES ($1, $2, $3, $4)`,
		job.ID, job.DocumentID, job.Status, job.QueuedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("enqueue job: %w", err)
	}
	return job, nil
}

func (s *PostgresStore) Start(ctx context.Context, jobID uuid.UUID) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE parse_jobs SET status = $1, started_at = $2 WHERE id = $3`,
		string(constants.JobStatusRunning), time.Now().UTC(), jobID,
	)
	if err != nil {
		return fmt.Errorf("start job: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetJob(ctx context.Context, jobID uuid.UUID) (*entity.ParseJob, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, document_id, status, error_message, queued_at, started_at, finished_at
		 FROM parse_jobs WHERE id = $1`, jobID)
	var job entity.ParseJob
	err := row.Scan(&job.ID, &job.DocumentID, &job.Status, &job.ErrorMessage,
		&job.QueuedAt, &job.StartedAt, &job.FinishedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("job %s: %w", jobID, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	return &job, nil
}

func (s *PostgresStore) FinishSuccess(ctx context.Context, jobID uuid.UUID) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE parse_jobs SET status = $1, finished_at = $2 WHERE id = $3`,
		string(constants.JobStatusParsed), time.Now().UTC(), jobID,
	)
	if err != nil {
		return fmt.Errorf("finish job: %w", err)
	}
	return nil
}

func (s *PostgresStore) FinishFailure(ctx context.Context, jobID uuid.UUID, reason string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE parse_jobs SET status = $1, error_message = $2, finished_at = $3 WHERE id = $4`,
		string(constants.JobStatusFailed), reason, time.Now().UTC(), jobID,
	)
	if err != nil {
		return fmt.Errorf("fail job: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, res *entity.ExtractionResult) error {
	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now().UTC()
	}
	fieldsJSON, err := json.Marshal(res.Fields)
	if err != nil {
		return fmt.Errorf("marshal fields: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO extraction_results (id, document_id, category, fields, normalized_text, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (document_id) DO UPDATE
		 SET category = EXCLUDED.category, fields = EXCLUDED.fields,
		     normalized_text = EXCLUDED.normalized_text, created_at = EXCLUDED.created_at`,
		res.ID, res.DocumentID, res.Category, fieldsJSON, res.NormalizedText, res.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetByDocumentID(ctx context.Context, documentID uuid.UUID) (*entity.ExtractionResult, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, document_id, category, fields, normalized_text, created_at
		 FROM extraction_results WHERE document_id = $1`, documentID)
	res, err := scanResult(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("result for document %s: %w", documentID, common.ErrNotFound)
	}
	return res, err
}

func (s *PostgresStore) List(ctx context.Context, from, to *time.Time) ([]*entity.ExtractionResult, error) {
	q := `SELECT id, document_id, category, fields, normalized_text, created_at
	      FROM extraction_results WHERE 1=1`
	args := []any{}
	if from != nil {
		args = append(args, *from)
		q += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		q += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}
	q += " ORDER BY created_at"

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var out []*entity.ExtractionResult
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(row rowScanner) (*entity.ExtractionResult, error) {
	var res entity.ExtractionResult
	var fieldsJSON []byte
	if err := row.Scan(&res.ID, &res.DocumentID, &res.Category, &fieldsJSON, &res.NormalizedText, &res.CreatedAt); err != nil {
		return nil, err
	}
	var fields []extract.Field
	if err := json.Unmarshal(fieldsJSON, &fields); err != nil {
		return nil, fmt.Errorf("unmarshal fields: %w", err)
	}
	res.Fields = fields
	return &res, nil
}
