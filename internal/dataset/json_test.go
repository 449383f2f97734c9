package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for corpus serialization:
// 1. Store writes four-space-indented JSON and Load reads it back unchanged.
// 2. Load rejects malformed JSON, missing top-level keys, missing document
//    fields and unknown split labels, returning a ValidationError and no
//    partial corpus.

func sampleCorpus() Corpus {
	return Corpus{
		RetrievalDocuments: []string{
			"'demo' is a Python package.",
			"'text' is a Python module.",
		},
		TuningDocuments: []Document{
			{
				Context:  "'demo' is the root package.",
				Question: "What is the root package?",
				Answer:   "'demo' is the root package.",
				Split:    SplitTrain,
			},
			{
				Context:  "'text' is a Python module.",
				Question: "What is 'text'?",
				Answer:   "'text' is a Python module.",
				Split:    SplitTest,
			},
		},
	}
}

func TestStoreLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dataset.json")
	corpus := sampleCorpus()

	require.NoError(t, Store(path, corpus))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, corpus, loaded)
}

func TestStoreIndentation(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, Store(path, sampleCorpus()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "{\n    \"retrieval_documents\": ["))
	assert.Contains(t, text, "\n        \"context\": ")
}

func TestStoreOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, Store(path, sampleCorpus()))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, loaded.TuningDocuments, 2)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		payload string
	}{
		{"malformed", `{"retrieval_documents": [`},
		{"missing retrieval documents", `{"tuning_documents": []}`},
		{"missing tuning documents", `{"retrieval_documents": []}`},
		{
			"missing context",
			`{"retrieval_documents": [], "tuning_documents": [{"question": "q", "answer": "a", "split": "train"}]}`,
		},
		{
			"missing question",
			`{"retrieval_documents": [], "tuning_documents": [{"context": "c", "answer": "a", "split": "train"}]}`,
		},
		{
			"missing answer",
			`{"retrieval_documents": [], "tuning_documents": [{"context": "c", "question": "q", "split": "train"}]}`,
		},
		{
			"missing split",
			`{"retrieval_documents": [], "tuning_documents": [{"context": "c", "question": "q", "answer": "a"}]}`,
		},
		{
			"unknown split",
			`{"retrieval_documents": [], "tuning_documents": [{"context": "c", "question": "q", "answer": "a", "split": "eval"}]}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "dataset.json")
			require.NoError(t, os.WriteFile(path, []byte(tc.payload), 0o644))

			corpus, err := Load(path)

			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Empty(t, corpus.RetrievalDocuments)
			assert.Empty(t, corpus.TuningDocuments)
		})
	}
}
