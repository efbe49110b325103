package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docparse/docparse/internal/common"
	"github.com/docparse/docparse/internal/repository"
)

func newTestService(t *testing.T) (*Service, *repository.SQLiteStore) {
	t.Helper()
	store, err := repository.NewSQLiteStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewService(store, nil), store
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestIngestPath(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	dir := t.TempDir()

	path := writeFile(t, dir, "scan-001.txt", "Invoice NV-1007\nTotalAmount 1875.50")

	res, err := svc.IngestPath(ctx, path)
	require.NoError(t, err)
	assert.False(t, res.Deduplicated)
	assert.NotEmpty(t, res.HashHex)

	doc, err := store.GetByID(ctx, res.DocumentID)
	require.NoError(t, err)
	assert.True(t, doc.OCRSucceeded)
	assert.Equal(t, "Invoice NV-1007\nTotalAmount 1875.50", doc.RawText)
}

func TestIngestPathDeduplicates(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	dir := t.TempDir()

	a := writeFile(t, dir, "a.txt", "same content")
	b := writeFile(t, dir, "b.txt", "same content")

	first, err := svc.IngestPath(ctx, a)
	require.NoError(t, err)
	second, err := svc.IngestPath(ctx, b)
	require.NoError(t, err)

	assert.True(t, second.Deduplicated)
	assert.Equal(t, first.DocumentID, second.DocumentID)
}

// An empty dump means the OCR pass produced nothing usable; the
// document is recorded but flagged so extraction short-circuits.
func TestIngestPathEmptyDump(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	path := writeFile(t, t.TempDir(), "blank.txt", "   \n ")
	res, err := svc.IngestPath(ctx, path)
	require.NoError(t, err)

	doc, err := store.GetByID(ctx, res.DocumentID)
	require.NoError(t, err)
	assert.False(t, doc.OCRSucceeded)
}

func TestIngestDirectory(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	dir := t.TempDir()

	writeFile(t, dir, "one.txt", "Receipt #R-1")
	writeFile(t, dir, "two.txt", "Receipt #R-2")
	writeFile(t, dir, "ignored.pdf", "binary-ish")
	writeFile(t, dir, ".hidden.txt", "skipped")

	results, stats, err := svc.IngestDirectory(ctx, dir, nil, true)
	require.NoError(t, err)

	assert.Equal(t, uint32(2), stats.Matched)
	assert.Equal(t, uint32(2), stats.Succeeded)
	assert.Equal(t, uint32(0), stats.Failed)
	assert.Len(t, results, 2)
}

func TestIngestDirectoryRequiresRoot(t *testing.T) {
	svc, _ := newTestService(t)
	_, _, err := svc.IngestDirectory(context.Background(), "  ", nil, true)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}
