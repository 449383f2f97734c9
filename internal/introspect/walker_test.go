package introspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Introspector:
// - Walk a package tree and emit one record per package
// - Exclude "tests" children and configured glob patterns
// - Surface package summary and __all__ exports from __init__.py
// - Fail with ErrPackageNotFound for an unknown root
// - List only locally-defined top-level members of a module
// - Resolve member details for enum, class and function kinds
// - Merge docstring data over signature data with the right precedence

func newTestIntrospector(t *testing.T) *Introspector {
	t.Helper()

	in, err := New(Config{
		SourceRoot: "testdata/src",
		Excludes:   []string{"*vendor*"},
	})
	require.NoError(t, err)
	return in
}

func TestPackageContents(t *testing.T) {
	t.Parallel()

	in := newTestIntrospector(t)

	records, err := in.PackageContents("demo")
	require.NoError(t, err)
	require.Len(t, records, 2)

	root := records[0]
	assert.Equal(t, "demo", root.Name)
	assert.Equal(t, "demo", root.QualifiedName)
	assert.Equal(t, []string{"demo"}, root.Hierarchy)
	assert.Empty(t, root.Parent)
	assert.Equal(t, []string{"shapes"}, root.SubPackages)
	assert.Equal(t, []string{"text"}, root.Modules)
	assert.Equal(t,
		"Demonstration package used by the documentation tooling. It bundles a handful of small text utilities.",
		root.Summary)
	assert.Equal(t, []string{"greet", "Color", "Greeter"}, root.Exports)

	sub := records[1]
	assert.Equal(t, "shapes", sub.Name)
	assert.Equal(t, "demo.shapes", sub.QualifiedName)
	assert.Equal(t, "demo", sub.Parent)
	assert.Empty(t, sub.SubPackages)
	assert.Equal(t, []string{"circle"}, sub.Modules)
	assert.Equal(t, "Geometry helpers.", sub.Summary)
}

func TestPackageContents_RootNotFound(t *testing.T) {
	t.Parallel()

	in := newTestIntrospector(t)

	_, err := in.PackageContents("nosuchpackage")
	require.ErrorIs(t, err, ErrPackageNotFound)
}

func TestModuleContents(t *testing.T) {
	t.Parallel()

	in := newTestIntrospector(t)

	mod, err := in.ModuleContents("demo.text")
	require.NoError(t, err)

	assert.Equal(t, "text", mod.Name)
	assert.Equal(t, "demo.text", mod.QualifiedName)
	assert.Equal(t, "demo", mod.Package)
	assert.Equal(t, []string{"demo", "text"}, mod.Hierarchy)
	assert.Equal(t, "Text helpers. Small helpers for producing greetings.", mod.Summary)
	assert.Equal(t, []string{"greet", "Color", "Greeter"}, mod.Exports)

	names := make([]string, 0, len(mod.Members))
	for _, member := range mod.Members {
		names = append(names, member.Name)
	}
	// Declaration order; imported names and plain values never appear.
	assert.Equal(t, []string{"Color", "Greeter", "greet", "_internal"}, names)
}

func findMember(t *testing.T, mod ModuleRecord, name string) MemberStub {
	t.Helper()

	for _, member := range mod.Members {
		if member.Name == name {
			return member
		}
	}
	t.Fatalf("member %q not found in %s", name, mod.QualifiedName)
	return MemberStub{}
}

func TestMemberDetails_Enum(t *testing.T) {
	t.Parallel()

	in := newTestIntrospector(t)
	mod, err := in.ModuleContents("demo.text")
	require.NoError(t, err)

	record, err := in.MemberDetails(mod, findMember(t, mod, "Color"))
	require.NoError(t, err)

	assert.Equal(t, "demo.text.Color", record.QualifiedName)
	assert.Equal(t, "demo.text", record.Module)
	assert.Equal(t, "Supported highlight colors.", record.Docstring)

	detail, ok := record.Detail.(EnumDetail)
	require.True(t, ok)
	assert.Equal(t, []EnumMember{
		{Name: "RED", Value: "red"},
		{Name: "GREEN", Value: "green"},
		{Name: "BLUE", Value: "blue"},
	}, detail.Members)
	assert.Equal(t, "RED (corresponding to 'red')", detail.Members[0].Display())
}

func TestMemberDetails_Class(t *testing.T) {
	t.Parallel()

	in := newTestIntrospector(t)
	mod, err := in.ModuleContents("demo.text")
	require.NoError(t, err)

	record, err := in.MemberDetails(mod, findMember(t, mod, "Greeter"))
	require.NoError(t, err)

	detail, ok := record.Detail.(ClassDetail)
	require.True(t, ok)

	assert.Equal(t,
		"Produces greetings for a configured audience. Greetings are rendered lazily.",
		detail.Summary)
	assert.Equal(t,
		"greet : module-level convenience wrapper. Instances are reusable.",
		detail.Notes)

	require.Len(t, detail.Parameters, 2)
	audience := detail.Parameters[0]
	assert.Equal(t, "audience", audience.Name)
	assert.Equal(t, Value("str"), audience.Annotation)
	assert.False(t, audience.Default.Defined)
	assert.Equal(t, ParamPositionalOrKeyword, audience.ParamKind)
	assert.Equal(t, "Name of the audience to greet.", audience.Summary)
	assert.Equal(t, "'audience', of type 'positional or keyword'", audience.Details())

	loud := detail.Parameters[1]
	assert.Equal(t, "loud", loud.Name)
	assert.Equal(t, Value("False"), loud.Default)
	assert.Equal(t, Value("bool"), loud.Annotation)

	// Private methods and attributes are not surfaced.
	require.Len(t, detail.Methods, 1)
	assert.Equal(t, "render", detail.Methods[0].Name)
	assert.Equal(t, []string{"punctuation"}, detail.Methods[0].Parameters)
	assert.Equal(t, "Render the greeting.", detail.Methods[0].Summary)
	assert.Equal(t, []string{"default_audience"}, detail.Attributes)
}

func TestMemberDetails_Function(t *testing.T) {
	t.Parallel()

	in := newTestIntrospector(t)
	mod, err := in.ModuleContents("demo.text")
	require.NoError(t, err)

	record, err := in.MemberDetails(mod, findMember(t, mod, "greet"))
	require.NoError(t, err)

	detail, ok := record.Detail.(FunctionDetail)
	require.True(t, ok)

	assert.Equal(t, "Greet a person by name. The greeting is colored and indented.", detail.Summary)

	require.Len(t, detail.Parameters, 5)
	assert.Equal(t, "name", detail.Parameters[0].Name)
	assert.Equal(t, Value("str"), detail.Parameters[0].Annotation)
	assert.Equal(t, "Person to greet.", detail.Parameters[0].Summary)

	color := detail.Parameters[1]
	assert.Equal(t, Value("Color.RED"), color.Default)
	assert.Equal(t, Value("Color"), color.Annotation)

	assert.Equal(t, ParamVariadicPositional, detail.Parameters[2].ParamKind)
	assert.Equal(t, "args", detail.Parameters[2].Name)
	assert.Equal(t, ParamKeywordOnly, detail.Parameters[3].ParamKind)
	assert.Equal(t, Value("0"), detail.Parameters[3].Default)
	assert.Equal(t, ParamVariadicKeyword, detail.Parameters[4].ParamKind)
	assert.Equal(t, "options", detail.Parameters[4].Name)

	assert.Equal(t, Value("str"), detail.Returns.Annotation)
	assert.Equal(t, "The rendered greeting.", detail.Returns.Summary)

	require.Len(t, detail.Raises, 1)
	assert.Equal(t, "ValueError", detail.Raises[0].Type)
	assert.Equal(t, "'ValueError' ('If the name is empty.')", detail.Raises[0].Details())

	require.Len(t, detail.Warns, 1)
	assert.Equal(t, "UserWarning", detail.Warns[0].Type)

	assert.Equal(t, "Prefer Greeter for repeated greetings.", detail.Notes)
	assert.Equal(t, "RFC 5321.", detail.References)
	assert.Equal(t, `>>> greet("Ada")`, detail.Examples)
}

func TestMemberDetails_UnclassifiedHandle(t *testing.T) {
	t.Parallel()

	in := newTestIntrospector(t)
	mod, err := in.ModuleContents("demo.text")
	require.NoError(t, err)

	_, err = in.MemberDetails(mod, MemberStub{Name: "ghost"})
	require.Error(t, err)
}
