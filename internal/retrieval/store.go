package retrieval

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/philippgille/chromem-go"
)

const (
	collectionName = "docsage"
	documentsFile  = "documents.json"
)

// ErrNoIndex is returned when opening a directory that holds no built index.
var ErrNoIndex = errors.New("no index found")

// storedDocument is the sidecar record kept next to the vector data so the
// keyword searcher can rebuild its in-memory index on open.
type storedDocument struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// VectorStore persists embedded corpus chunks and serves searches over them.
type VectorStore struct {
	db         *chromem.DB
	collection *chromem.Collection
	provider   Provider
	documents  []storedDocument
}

// BuildIndex embeds the given documents and persists them under dir,
// replacing nothing: the caller is responsible for clearing a stale index
// first. Documents are embedded in passage mode.
func BuildIndex(ctx context.Context, dir string, provider Provider, documents []string) (*VectorStore, error) {
	if len(documents) == 0 {
		return nil, fmt.Errorf("no documents to index")
	}

	db, err := chromem.NewPersistentDB(dir, false)
	if err != nil {
		return nil, fmt.Errorf("failed to create vector database: %w", err)
	}

	collection, err := db.GetOrCreateCollection(collectionName, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	embeddings, err := provider.Embed(ctx, documents, EmbedModePassage)
	if err != nil {
		return nil, fmt.Errorf("failed to embed documents: %w", err)
	}

	stored := make([]storedDocument, 0, len(documents))
	for i, content := range documents {
		doc := chromem.Document{
			ID:        uuid.NewString(),
			Content:   content,
			Embedding: embeddings[i],
		}
		if err := collection.AddDocument(ctx, doc); err != nil {
			return nil, fmt.Errorf("failed to add document %s: %w", doc.ID, err)
		}
		stored = append(stored, storedDocument{ID: doc.ID, Content: content})
	}

	if err := writeDocuments(dir, stored); err != nil {
		return nil, err
	}

	return &VectorStore{
		db:         db,
		collection: collection,
		provider:   provider,
		documents:  stored,
	}, nil
}

// Open loads a previously built index from dir.
func Open(dir string, provider Provider) (*VectorStore, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoIndex, dir)
	}

	db, err := chromem.NewPersistentDB(dir, false)
	if err != nil {
		return nil, fmt.Errorf("failed to open vector database: %w", err)
	}

	collection := db.GetCollection(collectionName, nil)
	if collection == nil {
		return nil, fmt.Errorf("%w: collection %q missing in %s", ErrNoIndex, collectionName, dir)
	}

	documents, err := readDocuments(dir)
	if err != nil {
		return nil, err
	}

	return &VectorStore{
		db:         db,
		collection: collection,
		provider:   provider,
		documents:  documents,
	}, nil
}

// Count returns the number of indexed documents.
func (s *VectorStore) Count() int {
	return s.collection.Count()
}

func writeDocuments(dir string, documents []storedDocument) error {
	data, err := json.MarshalIndent(documents, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode document sidecar: %w", err)
	}
	path := filepath.Join(dir, documentsFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write document sidecar: %w", err)
	}
	return nil
}

func readDocuments(dir string) ([]storedDocument, error) {
	data, err := os.ReadFile(filepath.Join(dir, documentsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read document sidecar: %w", err)
	}
	var documents []storedDocument
	if err := json.Unmarshal(data, &documents); err != nil {
		return nil, fmt.Errorf("failed to decode document sidecar: %w", err)
	}
	return documents, nil
}
