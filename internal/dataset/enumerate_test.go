package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsage/docsage/internal/introspect"
)

// Test Plan for EnumerateElements:
// 1. String slices render as a numbered single-line listing.
// 2. Struct slices resolve the named attribute, both fields and methods.
// 3. Non-slice values, non-string elements without an attribute, and
//    unknown attributes report ErrInvalidArgument.

func TestEnumerateElements_Strings(t *testing.T) {
	t.Parallel()

	listing, err := EnumerateElements([]string{"alpha", "beta", "gamma"}, "")
	require.NoError(t, err)
	assert.Equal(t, "1. alpha 2. beta 3. gamma", listing)
}

func TestEnumerateElements_Single(t *testing.T) {
	t.Parallel()

	listing, err := EnumerateElements([]string{"only"}, "")
	require.NoError(t, err)
	assert.Equal(t, "1. only", listing)
}

func TestEnumerateElements_Field(t *testing.T) {
	t.Parallel()

	members := []introspect.MemberStub{{Name: "greet"}, {Name: "Color"}}

	listing, err := EnumerateElements(members, "Name")
	require.NoError(t, err)
	assert.Equal(t, "1. greet 2. Color", listing)
}

func TestEnumerateElements_Method(t *testing.T) {
	t.Parallel()

	members := []introspect.EnumMember{
		{Name: "RED", Value: "red"},
		{Name: "GREEN", Value: "green"},
	}

	listing, err := EnumerateElements(members, "Display")
	require.NoError(t, err)
	assert.Equal(t,
		"1. RED (corresponding to 'red') 2. GREEN (corresponding to 'green')",
		listing)
}

func TestEnumerateElements_Errors(t *testing.T) {
	t.Parallel()

	_, err := EnumerateElements("not a slice", "")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = EnumerateElements([]introspect.MemberStub{{Name: "greet"}}, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = EnumerateElements([]introspect.MemberStub{{Name: "greet"}}, "Unknown")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
