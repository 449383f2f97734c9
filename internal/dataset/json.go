package dataset

import (
	"encoding/json"
	"fmt"
	"os"
)

// Corpus is the on-disk form of a generated corpus: every retrieval chunk
// from every dataset in order, followed by every tuning document.
type Corpus struct {
	RetrievalDocuments []string   `json:"retrieval_documents"`
	TuningDocuments    []Document `json:"tuning_documents"`
}

// ValidationError reports why a corpus file failed to load.
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid corpus %s: %s", e.Path, e.Reason)
}

// Store writes the corpus to path as indented JSON, replacing any existing
// file.
func Store(path string, corpus Corpus) error {
	data, err := json.MarshalIndent(corpus, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding corpus: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing corpus: %w", err)
	}
	return nil
}

// Load reads a corpus file and validates its shape. A file that fails
// validation yields no partial corpus.
func Load(path string) (Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Corpus{}, fmt.Errorf("reading corpus: %w", err)
	}

	var raw struct {
		RetrievalDocuments *[]string `json:"retrieval_documents"`
		TuningDocuments    *[]struct {
			Context  *string `json:"context"`
			Question *string `json:"question"`
			Answer   *string `json:"answer"`
			Split    *string `json:"split"`
		} `json:"tuning_documents"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Corpus{}, &ValidationError{Path: path, Reason: err.Error()}
	}
	if raw.RetrievalDocuments == nil {
		return Corpus{}, &ValidationError{Path: path, Reason: "missing retrieval_documents"}
	}
	if raw.TuningDocuments == nil {
		return Corpus{}, &ValidationError{Path: path, Reason: "missing tuning_documents"}
	}

	corpus := Corpus{
		RetrievalDocuments: *raw.RetrievalDocuments,
		TuningDocuments:    make([]Document, 0, len(*raw.TuningDocuments)),
	}
	for i, doc := range *raw.TuningDocuments {
		switch {
		case doc.Context == nil:
			return Corpus{}, &ValidationError{Path: path, Reason: fmt.Sprintf("tuning document %d: missing context", i)}
		case doc.Question == nil:
			return Corpus{}, &ValidationError{Path: path, Reason: fmt.Sprintf("tuning document %d: missing question", i)}
		case doc.Answer == nil:
			return Corpus{}, &ValidationError{Path: path, Reason: fmt.Sprintf("tuning document %d: missing answer", i)}
		case doc.Split == nil:
			return Corpus{}, &ValidationError{Path: path, Reason: fmt.Sprintf("tuning document %d: missing split", i)}
		}
		split := Split(*doc.Split)
		if !validSplits[split] {
			return Corpus{}, &ValidationError{Path: path, Reason: fmt.Sprintf("tuning document %d: unknown split %q", i, *doc.Split)}
		}
		corpus.TuningDocuments = append(corpus.TuningDocuments, Document{
			Context:  *doc.Context,
			Question: *doc.Question,
			Answer:   *doc.Answer,
			Split:    split,
		})
	}
	return corpus, nil
}
