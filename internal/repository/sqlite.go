package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/docparse/docparse/constants"
	"github.com/docparse/docparse/internal/common"
	"github.com/docparse/docparse/internal/entity"
	"github.com/docparse/docparse/internal/extract"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS documents (
	id            TEXT PRIMARY KEY,
	source_path   TEXT NOT NULL,
	raw_text      TEXT NOT NULL,
	ocr_succeeded INTEGER NOT NULL,
	content_hash  BLOB NOT NULL,
	uploaded_at   TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_documents_hash ON documents(content_hash);

CREATE TABLE IF NOT EXISTS parse_jobs (
	id            TEXT PRIMARY KEY,
	document_id   TEXT NOT NULL REFERENCES documents(id),
	status        TEXT NOT NULL,
	error_message TEXT,
	queued_at     TIMESTAMP NOT NULL,
	started_at    TIMESTAMP,
	finished_at   TIMESTAMP
);

CREATE TABLE IF NOT EXISTS extraction_results (
	id              TEXT PRIMARY KEY,
	document_id     TEXT NOT NULL UNIQUE REFERENCES documents(id),
	category        TEXT NOT NULL,
	fields          TEXT NOT NULL,
	normalized_text TEXT NOT NULL,
	created_at      TIMESTAMP NOT NULL
);
`

// SQLiteStore is the local store used by the CLI for offline and batch
// runs. Implements the same repository interfaces as PostgresStore.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (and if needed creates) the store under dataDir.
// Empty dataDir defaults to ~/.docparse/data.
func NewSQLiteStore(dataDir string) (*SQLiteStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".docparse", "data")
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "docparse.db")
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &SQLiteStore{db: db, path: dbPath}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) Create(ctx context.Context, doc *entity.Document) (*entity.Document, error) {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (id, source_path, raw_text, ocr_succeeded, content_hash, uploaded_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		doc.ID.String(), doc.SourcePath, doc.RawText, doc.OCRSucceeded, doc.ContentHash, doc.UploadedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}
	return doc, nil
}

func (s *SQLiteStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source_path, raw_text, ocr_succeeded, content_hash, uploaded_at
		 FROM documents WHERE id = ?`, id.String())
	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("document %s: %w", id, common.ErrNotFound)
	}
	return doc, err
}

func (s *SQLiteStore) FindByHash(ctx context.Context, hash []byte) (*entity.Document, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source_path, raw_text, ocr_succeeded, content_hash, uploaded_at
		 FROM documents WHERE content_hash = ?`, hash)
	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return doc, err
}

func (s *SQLiteStore) Enqueue(ctx context.Context, documentID uuid.UUID) (*entity.ParseJob, error) {
	job := &entity.ParseJob{
		ID:         uuid.New(),
		DocumentID: documentID,
		Status:     string(constants.JobStatusQueued),
		QueuedAt:   time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO parse_jobs (id, document_id, status, queued_at) VALUES (?, ?, ?, ?)`,
		job.ID.String(), job.DocumentID.String(), job.Status, job.QueuedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("enqueue job: %w", err)
	}
	return job, nil
}

func (s *SQLiteStore) Start(ctx context.Context, jobID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE parse_jobs SET status = ?, started_at = ? WHERE id = ?`,
		string(constants.JobStatusRunning), time.Now().UTC(), jobID.String(),
	)
	if err != nil {
		return fmt.Errorf("start job: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetJob(ctx context.Context, jobID uuid.UUID) (*entity.ParseJob, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, document_id, status, error_message, queued_at, started_at, finished_at
		 FROM parse_jobs WHERE id = ?`, jobID.String())

	var (
		job        entity.ParseJob
		id, docID  string
		errMsg     sql.NullString
		startedAt  sql.NullTime
		finishedAt sql.NullTime
	)
	err := row.Scan(&id, &docID, &job.Status, &errMsg, &job.QueuedAt, &startedAt, &finishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("job %s: %w", jobID, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	if job.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("parse job id: %w", err)
	}
	if job.DocumentID, err = uuid.Parse(docID); err != nil {
		return nil, fmt.Errorf("parse job document id: %w", err)
	}
	if errMsg.Valid {
		job.ErrorMessage = &errMsg.String
	}
	if startedAt.Valid {
		job.StartedAt = &startedAt.Time
	}
	if finishedAt.Valid {
		job.FinishedAt = &finishedAt.Time
	}
	return &job, nil
}

func (s *SQLiteStore) FinishSuccess(ctx context.Context, jobID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE parse_jobs SET status = ?, finished_at = ? WHERE id = ?`,
		string(constants.JobStatusParsed), time.Now().UTC(), jobID.String(),
	)
	if err != nil {
		return fmt.Errorf("finish job: %w", err)
	}
	return nil
}

func (s *SQLiteStore) FinishFailure(ctx context.Context, jobID uuid.UUID, reason string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE parse_jobs SET status = ?, error_message = ?, finished_at = ? WHERE id = ?`,
		string(constants.JobStatusFailed), reason, time.Now().UTC(), jobID.String(),
	)
	if err != nil {
		return fmt.Errorf("fail job: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Save(ctx context.Context, res *entity.ExtractionResult) error {
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
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO extraction_results (id, document_id, category, fields, normalized_text, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (document_id) DO UPDATE
		 SET category = excluded.category, fields = excluded.fields,
		     normalized_text = excluded.normalized_text, created_at = excluded.created_at`,
		res.ID.String(), res.DocumentID.String(), res.Category, string(fieldsJSON), res.NormalizedText, res.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetByDocumentID(ctx context.Context, documentID uuid.UUID) (*entity.ExtractionResult, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, document_id, category, fields, normalized_text, created_at
		 FROM extraction_results WHERE document_id = ?`, documentID.String())
	res, err := scanSQLiteResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("result for document %s: %w", documentID, common.ErrNotFound)
	}
	return res, err
}

func (s *SQLiteStore) List(ctx context.Context, from, to *time.Time) ([]*entity.ExtractionResult, error) {
	q := `SELECT id, document_id, category, fields, normalized_text, created_at
	      FROM extraction_results WHERE 1=1`
	args := []any{}
	if from != nil {
		q += " AND created_at >= ?"
		args = append(args, *from)
	}
	if to != nil {
		q += " AND created_at <= ?"
		args = append(args, *to)
	}
	q += " ORDER BY created_at"

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var out []*entity.ExtractionResult
	for rows.Next() {
		res, err := scanSQLiteResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func scanDocument(row rowScanner) (*entity.Document, error) {
	var doc entity.Document
	var id string
	if err := row.Scan(&id, &doc.SourcePath, &doc.RawText, &doc.OCRSucceeded, &doc.ContentHash, &doc.UploadedAt); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse document id: %w", err)
	}
	doc.ID = parsed
	return &doc, nil
}

func scanSQLiteResult(row rowScanner) (*entity.ExtractionResult, error) {
	var res entity.ExtractionResult
	var id, docID, fieldsJSON string
	if err := row.Scan(&id, &docID, &res.Category, &fieldsJSON, &res.NormalizedText, &res.CreatedAt); err != nil {
		return nil, err
	}
	var err error
	if res.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("parse result id: %w", err)
	}
	if res.DocumentID, err = uuid.Parse(docID); err != nil {
		return nil, fmt.Errorf("parse document id: %w", err)
	}
	var fields []extract.Field
	if err := json.Unmarshal([]byte(fieldsJSON), &fields); err != nil {
		return nil, fmt.Errorf("unmarshal fields: %w", err)
	}
	res.Fields = fields
	return &res, nil
}
