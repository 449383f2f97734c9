package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsage/docsage/internal/introspect"
)

// Test Plan for the dataset generator:
// 1. Question and answer paraphrases pair positionally, cycling the shorter
//    answer list; no answers means no tuning documents.
// 2. Package, module and member datasets carry the identity chunk first and
//    cover the presence and absence branches of each fact.
// 3. Classified members yield a generic dataset plus a kind-specific one; the
//    generic dataset absorbs the full kind chunk list while the kind dataset
//    keeps only its two identity chunks.
// 4. A generator seeded identically reproduces a dataset exactly.

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	alloc, err := NewAllocator(0, DefaultProportions())
	require.NoError(t, err)
	return NewGenerator(alloc)
}

func chunkList(t *testing.T, datasets []Dataset) []string {
	t.Helper()
	var chunks []string
	for _, ds := range datasets {
		chunks = append(chunks, ds.RetrievalChunks...)
	}
	return chunks
}

func TestTuningDocuments_PositionalPairing(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t)
	questions := []string{"q0", "q1", "q2", "q3"}
	answers := []string{"a0", "a1"}

	documents := g.tuningDocuments("fact", questions, answers)
	require.Len(t, documents, 4)
	for i, doc := range documents {
		assert.Equal(t, "fact", doc.Context)
		assert.Equal(t, questions[i], doc.Question)
		assert.Equal(t, answers[i%2], doc.Answer)
		assert.True(t, validSplits[doc.Split])
	}
}

func TestTuningDocuments_NoAnswers(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t)
	assert.Nil(t, g.tuningDocuments("fact", []string{"q0"}, nil))
}

func TestPackageDataset_Root(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t)
	ds, err := g.PackageDataset(introspect.PackageRecord{
		Name:          "demo",
		QualifiedName: "demo",
		Hierarchy:     []string{"demo"},
		SubPackages:   []string{"shapes"},
		Modules:       []string{"text"},
		Summary:       "Demonstration package.",
		Exports:       []string{"greet", "Color"},
	})
	require.NoError(t, err)

	require.NotEmpty(t, ds.RetrievalChunks)
	assert.Equal(t, "'demo' is a Python package.", ds.RetrievalChunks[0])
	assert.Contains(t, ds.RetrievalChunks, "'demo' is the root package.")
	assert.Contains(t, ds.RetrievalChunks, "'demo' has no parent package.")
	assert.Contains(t, ds.RetrievalChunks,
		"Sub-packages of 'demo' package are as follows: 1. shapes.")
	assert.Contains(t, ds.RetrievalChunks,
		"Modules of 'demo' package are as follows: 1. text.")
	assert.Contains(t, ds.RetrievalChunks,
		"The following is the documentation of 'demo' package: 'Demonstration package.'.")
	assert.Contains(t, ds.RetrievalChunks,
		"'demo' package exports following public members using __all__: 1. greet 2. Color.")

	require.NotEmpty(t, ds.TuningDocuments)
	for _, doc := range ds.TuningDocuments {
		assert.True(t, validSplits[doc.Split])
		assert.NotEmpty(t, doc.Question)
		assert.NotEmpty(t, doc.Answer)
	}
}

func TestPackageDataset_LeafSubPackage(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t)
	ds, err := g.PackageDataset(introspect.PackageRecord{
		Name:          "shapes",
		QualifiedName: "demo.shapes",
		Hierarchy:     []string{"demo", "shapes"},
		Parent:        "demo",
	})
	require.NoError(t, err)

	assert.Contains(t, ds.RetrievalChunks,
		"'shapes' is part of parent package 'demo'.")
	assert.Contains(t, ds.RetrievalChunks,
		"Full name of 'shapes' sub-package is 'demo.shapes'.")
	assert.Contains(t, ds.RetrievalChunks,
		"Hierarchy of 'shapes' package is as follows: 1. demo 2. shapes.")
	assert.Contains(t, ds.RetrievalChunks,
		"'shapes' package does not have any further sub-packages.")
	assert.Contains(t, ds.RetrievalChunks,
		"'shapes' package does not have any further modules.")
	assert.Contains(t, ds.RetrievalChunks,
		"Unfortunately, 'shapes' package currently does not have any documentation.")
	assert.Contains(t, ds.RetrievalChunks,
		"'shapes' package does not export anything publicly using __all__ variable.")
}

func TestModuleDataset(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t)
	ds, err := g.ModuleDataset(introspect.ModuleRecord{
		Name:          "text",
		QualifiedName: "demo.text",
		Hierarchy:     []string{"demo", "text"},
		Package:       "demo",
		Members:       []introspect.MemberStub{{Name: "Color"}, {Name: "greet"}},
		Summary:       "Text helpers.",
		Exports:       []string{"greet"},
	})
	require.NoError(t, err)

	require.NotEmpty(t, ds.RetrievalChunks)
	assert.Equal(t, "'text' is a Python module.", ds.RetrievalChunks[0])
	assert.Contains(t, ds.RetrievalChunks,
		"'text' module is part of parent package 'demo'.")
	assert.Contains(t, ds.RetrievalChunks,
		"Full name of 'text' module is 'demo.text'.")
	assert.Contains(t, ds.RetrievalChunks,
		"'text' module has 2 many members.")
	assert.Contains(t, ds.RetrievalChunks,
		"Members of 'text' module are as follows: 1. Color 2. greet.")
	assert.Contains(t, ds.RetrievalChunks,
		"The following is the documentation of 'text' module: Text helpers..")
	assert.Contains(t, ds.RetrievalChunks,
		"'text' module exports following members using __all__: 1. greet.")
}

func greetRecord() introspect.MemberRecord {
	return introspect.MemberRecord{
		Name:          "greet",
		QualifiedName: "demo.text.greet",
		Hierarchy:     []string{"demo", "text", "greet"},
		Module:        "demo.text",
		Docstring:     "Render a greeting.",
		Detail: introspect.FunctionDetail{
			Parameters: []introspect.Parameter{
				{
					Name:       "name",
					ParamKind:  introspect.ParamPositionalOrKeyword,
					Summary:    "Who to greet.",
					Annotation: introspect.Value("str"),
				},
			},
			Returns: introspect.Return{
				Annotation: introspect.Value("str"),
				Summary:    "The rendered greeting.",
			},
			Summary: "Render a greeting.",
		},
	}
}

func TestMemberDataset_Function(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t)
	datasets, err := g.MemberDataset(greetRecord())
	require.NoError(t, err)
	require.Len(t, datasets, 2)

	member := datasets[0]
	assert.Contains(t, member.RetrievalChunks,
		"'greet' object is part of parent module text.")
	assert.Contains(t, member.RetrievalChunks,
		"Full name of 'greet' object is 'demo.text.greet'.")
	assert.Contains(t, member.RetrievalChunks,
		"Hierarchy of 'greet' object is as follows: 1. demo 2. text 3. greet.")
	assert.Contains(t, member.RetrievalChunks,
		"The following is the documentation of 'greet' object: 'Render a greeting.'.")
	assert.Contains(t, member.RetrievalChunks,
		"'greet' is a Python function.")

	// The generic dataset absorbs every kind-specific chunk.
	assert.Contains(t, member.RetrievalChunks,
		"'greet' function takes the following parameters: 1. 'name', of type 'positional or keyword'")

	kind := datasets[1]
	assert.Equal(t, []string{
		"'greet' function is a Python function.",
		"'greet' function has following docstring: Render a greeting..",
	}, kind.RetrievalChunks)
	assert.NotEmpty(t, kind.TuningDocuments)
}

func TestMemberDataset_Unclassified(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t)
	datasets, err := g.MemberDataset(introspect.MemberRecord{
		Name:          "VERSION",
		QualifiedName: "demo.text.VERSION",
		Hierarchy:     []string{"demo", "text", "VERSION"},
		Module:        "demo.text",
	})
	require.NoError(t, err)
	require.Len(t, datasets, 1)

	ds := datasets[0]
	require.NotEmpty(t, ds.RetrievalChunks)
	assert.Equal(t, "'VERSION' is a Python object.", ds.RetrievalChunks[0])
	assert.Contains(t, ds.RetrievalChunks,
		"Unfortunately, 'VERSION' object currently does not have any documentation.")
}

type aliasDetail struct{}

func (aliasDetail) Kind() introspect.Kind { return "alias" }

func TestMemberDataset_UnsupportedKind(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t)
	record := greetRecord()
	record.Detail = aliasDetail{}

	_, err := g.MemberDataset(record)
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestMemberDataset_Enum(t *testing.T) {
	t.Parallel()

	g := newTestGenerator(t)
	datasets, err := g.MemberDataset(introspect.MemberRecord{
		Name:          "Color",
		QualifiedName: "demo.text.Color",
		Hierarchy:     []string{"demo", "text", "Color"},
		Module:        "demo.text",
		Docstring:     "Available colors.",
		Detail: introspect.EnumDetail{
			Members: []introspect.EnumMember{
				{Name: "RED", Value: "red"},
				{Name: "GREEN", Value: "green"},
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, datasets, 2)

	chunks := chunkList(t, datasets)
	assert.Contains(t, chunks, "'Color' is a Python enum.")
	assert.Contains(t, chunks,
		"Members of 'Color' enum are as follows: 1. RED (corresponding to 'red') 2. GREEN (corresponding to 'green').")

	assert.Len(t, datasets[1].RetrievalChunks, 2)
}

func TestGeneratorDeterminism(t *testing.T) {
	t.Parallel()

	first, err := newTestGenerator(t).MemberDataset(greetRecord())
	require.NoError(t, err)
	second, err := newTestGenerator(t).MemberDataset(greetRecord())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
