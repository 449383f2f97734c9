package docstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for docstring parser:
// - Summary vs extended summary split at the first blank line
// - Parameters section with "name : type" headers and indented descriptions
// - Returns/Raises/Warns entries with bare type headers
// - Free-text sections (Notes, See Also, References, Examples)
// - Unknown sections ignored
// - Clean() dedents continuation lines like inspect.getdoc

const sampleDocstring = `Greet a person by name.

Builds a friendly greeting and returns it
as a single string.

Parameters
----------
name : str
    name of the person to greet
punctuation : str, optional
    trailing punctuation, by default "!"

Returns
-------
str
    the greeting text

Raises
------
ValueError
    if name is empty

Warns
-----
UserWarning
    if name looks numeric

See Also
--------
farewell : say goodbye instead

Notes
-----
Unicode names are fine.

References
----------
RFC 5322

Examples
--------
>>> greet("Ada")
'Hello, Ada!'`

func TestParse_Sections(t *testing.T) {
	t.Parallel()

	parsed := Parse(sampleDocstring)

	assert.Equal(t, []string{"Greet a person by name."}, parsed.Summary)
	assert.Equal(t, []string{
		"Builds a friendly greeting and returns it",
		"as a single string.",
	}, parsed.ExtendedSummary)

	require.Len(t, parsed.Parameters, 2)
	assert.Equal(t, "name", parsed.Parameters[0].Name)
	assert.Equal(t, "str", parsed.Parameters[0].Type)
	assert.Equal(t, []string{"name of the person to greet"}, parsed.Parameters[0].Desc)
	assert.Equal(t, "punctuation", parsed.Parameters[1].Name)
	assert.Equal(t, "str, optional", parsed.Parameters[1].Type)

	require.Len(t, parsed.Returns, 1)
	assert.Empty(t, parsed.Returns[0].Name)
	assert.Equal(t, "str", parsed.Returns[0].Type)
	assert.Equal(t, []string{"the greeting text"}, parsed.Returns[0].Desc)

	require.Len(t, parsed.Raises, 1)
	assert.Equal(t, "ValueError", parsed.Raises[0].Type)
	assert.Equal(t, []string{"if name is empty"}, parsed.Raises[0].Desc)

	require.Len(t, parsed.Warns, 1)
	assert.Equal(t, "UserWarning", parsed.Warns[0].Type)

	assert.Equal(t, []string{"farewell : say goodbye instead"}, parsed.SeeAlso)
	assert.Equal(t, []string{"Unicode names are fine."}, parsed.Notes)
	assert.Equal(t, []string{"RFC 5322"}, parsed.References)
	assert.Equal(t, []string{">>> greet(\"Ada\")", "'Hello, Ada!'"}, parsed.Examples)
}

func TestParse_SummaryOnly(t *testing.T) {
	t.Parallel()

	parsed := Parse("Do a thing.")

	assert.Equal(t, []string{"Do a thing."}, parsed.Summary)
	assert.Empty(t, parsed.ExtendedSummary)
	assert.Empty(t, parsed.Parameters)
	assert.Empty(t, parsed.Raises)
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	parsed := Parse("")

	assert.Empty(t, parsed.Summary)
	assert.Empty(t, parsed.SummaryText())
}

func TestParsed_SummaryText(t *testing.T) {
	t.Parallel()

	parsed := Parsed{
		Summary:         []string{"First line."},
		ExtendedSummary: []string{"Second line.", "Third line."},
	}

	assert.Equal(t, "First line. Second line. Third line.", parsed.SummaryText())
}

func TestParsed_NotesText(t *testing.T) {
	t.Parallel()

	parsed := Parsed{
		SeeAlso: []string{"other_function"},
		Notes:   []string{"Careful with input."},
	}

	// Class details join with a space, function details with the empty string.
	assert.Equal(t, "other_function Careful with input.", parsed.NotesText(" "))
	assert.Equal(t, "other_functionCareful with input.", parsed.NotesText(""))
}

func TestClean_Dedent(t *testing.T) {
	t.Parallel()

	raw := "Summary line.\n\n    Indented body line one.\n    Indented body line two.\n    "

	assert.Equal(t, "Summary line.\n\nIndented body line one.\nIndented body line two.", Clean(raw))
}

func TestClean_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Clean(""))
	assert.Empty(t, Clean("   \n  "))
}
