package dataset

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsage/docsage/internal/introspect"
)

// Test Plan for the corpus builder:
// 1. Building over the demo fixture emits every package dataset first, then
//    every module dataset, then the member datasets, in walk order.
// 2. Two builds with the same allocator seed produce identical corpora.
// 3. A missing root package aborts the build.
// 4. The progress hook observes every stage.

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()

	in, err := introspect.New(introspect.Config{
		SourceRoot: "../introspect/testdata/src",
		Excludes:   []string{"*vendor*"},
	})
	require.NoError(t, err)

	alloc, err := NewAllocator(0, DefaultProportions())
	require.NoError(t, err)

	return &Builder{
		Introspector: in,
		Generator:    NewGenerator(alloc),
		Logger:       slog.Default(),
	}
}

func TestBuilderBuild(t *testing.T) {
	t.Parallel()

	datasets, err := newTestBuilder(t).Build("demo")
	require.NoError(t, err)
	require.NotEmpty(t, datasets)

	// Two packages, one module with members, then per-member datasets.
	assert.Equal(t, "'demo' is a Python package.", datasets[0].RetrievalChunks[0])
	assert.Equal(t, "'shapes' is a Python package.", datasets[1].RetrievalChunks[0])
	assert.Equal(t, "'text' is a Python module.", datasets[2].RetrievalChunks[0])
	assert.Equal(t, "'circle' is a Python module.", datasets[3].RetrievalChunks[0])

	corpus := Flatten(datasets)
	assert.Contains(t, corpus.RetrievalDocuments, "'greet' is a Python function.")
	assert.Contains(t, corpus.RetrievalDocuments, "'Color' is a Python enum.")
	assert.Contains(t, corpus.RetrievalDocuments, "'Greeter' is a Python class.")

	require.NotEmpty(t, corpus.TuningDocuments)
	for _, doc := range corpus.TuningDocuments {
		assert.True(t, validSplits[doc.Split])
	}
}

func TestBuilderBuild_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := newTestBuilder(t).Build("demo")
	require.NoError(t, err)
	second, err := newTestBuilder(t).Build("demo")
	require.NoError(t, err)

	assert.Equal(t, Flatten(first), Flatten(second))
}

func TestBuilderBuild_RootNotFound(t *testing.T) {
	t.Parallel()

	_, err := newTestBuilder(t).Build("absent")
	assert.ErrorIs(t, err, introspect.ErrPackageNotFound)
}

func TestBuilderBuild_Progress(t *testing.T) {
	t.Parallel()

	builder := newTestBuilder(t)

	stages := map[string]int{}
	builder.Progress = func(stage string, completed, total int) {
		stages[stage]++
		assert.LessOrEqual(t, completed, total)
	}

	_, err := builder.Build("demo")
	require.NoError(t, err)

	assert.Equal(t, 2, stages["packages"])
	assert.Equal(t, 2, stages["modules"])
	assert.Positive(t, stages["members"])
}
