package retrieval

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the vector store:
// 1. BuildIndex persists documents and Open reloads them.
// 2. Building with no documents fails.
// 3. Opening a directory without an index reports ErrNoIndex.

var indexedDocuments = []string{
	"'demo' is a Python package.",
	"'text' is a Python module.",
	"'greet' is a Python function.",
	"'Color' is a Python enum.",
	"'Greeter' is a Python class.",
}

func buildTestIndex(t *testing.T) (string, *VectorStore) {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "index")
	provider := NewMockProvider(8)

	store, err := BuildIndex(context.Background(), dir, provider, indexedDocuments)
	require.NoError(t, err)
	return dir, store
}

func TestBuildIndexAndOpen(t *testing.T) {
	t.Parallel()

	dir, store := buildTestIndex(t)
	assert.Equal(t, len(indexedDocuments), store.Count())

	reopened, err := Open(dir, NewMockProvider(8))
	require.NoError(t, err)
	assert.Equal(t, len(indexedDocuments), reopened.Count())
	assert.Len(t, reopened.documents, len(indexedDocuments))
}

func TestBuildIndex_NoDocuments(t *testing.T) {
	t.Parallel()

	_, err := BuildIndex(context.Background(), t.TempDir(), NewMockProvider(8), nil)
	assert.Error(t, err)
}

func TestOpen_MissingIndex(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "absent"), NewMockProvider(8))
	assert.ErrorIs(t, err, ErrNoIndex)
}
