package introspect

import "fmt"

// Kind identifies the classified type of a module member.
type Kind string

const (
	KindEnum     Kind = "enum"
	KindClass    Kind = "class"
	KindFunction Kind = "function"
)

// Optional is an explicitly absent-or-present source value. It distinguishes
// "no default declared" from a default whose text is literally "None", and
// "no annotation" from an annotation of "None". The zero value is absent.
type Optional struct {
	Defined bool
	Text    string
}

// Value returns a present Optional carrying the given source text.
func Value(text string) Optional {
	return Optional{Defined: true, Text: text}
}

// String renders the carried text, or the empty string when absent.
func (o Optional) String() string {
	return o.Text
}

// PackageRecord captures one package discovered by the walk. Parent is empty
// only for the root package; child name lists are relative to the package.
type PackageRecord struct {
	Name          string
	QualifiedName string
	Hierarchy     []string
	Parent        string
	SubPackages   []string
	Modules       []string
	Summary       string
	Exports       []string
}

// MemberStub pairs a member name with an opaque handle to its parsed source
// object. The handle is resolved into a MemberRecord by MemberDetails.
type MemberStub struct {
	Name   string
	object *definition
}

// ModuleRecord captures one module and stubs for its locally-defined members.
type ModuleRecord struct {
	Name          string
	QualifiedName string
	Hierarchy     []string
	Package       string
	Members       []MemberStub
	Summary       string
	Exports       []string
}

// MemberRecord captures one module member. Docstring is never absent (empty
// string when the source has none); Detail is nil for unclassified objects.
type MemberRecord struct {
	Name          string
	QualifiedName string
	Hierarchy     []string
	Module        string
	Docstring     string
	Detail        Detail
}

// Detail is the kind-specific description of a member. It is a closed sum:
// EnumDetail, ClassDetail and FunctionDetail are the only implementations.
type Detail interface {
	Kind() Kind
}

// EnumMember is one name/value pair of an enumeration, in declaration order.
// The value is the source text of the assignment, not a coerced primitive.
type EnumMember struct {
	Name  string
	Value string
}

// Display renders the member the way listings embed it.
func (m EnumMember) Display() string {
	return fmt.Sprintf("%s (corresponding to '%s')", m.Name, m.Value)
}

// EnumDetail describes an enumeration member.
type EnumDetail struct {
	Members []EnumMember
}

func (EnumDetail) Kind() Kind { return KindEnum }

// Parameter describes one argument of a class constructor or function,
// merging signature data with docstring data.
type Parameter struct {
	Name       string
	Default    Optional
	Annotation Optional
	ParamKind  string
	Summary    string
}

// Details renders the name-and-kind form used in parameter listings.
func (p Parameter) Details() string {
	return fmt.Sprintf("'%s', of type '%s'", p.Name, p.ParamKind)
}

// Method describes one public method of a class: its name, bare parameter
// names, and docstring summary ("" when undocumented).
type Method struct {
	Name       string
	Parameters []string
	Summary    string
}

// ClassDetail describes a class member.
type ClassDetail struct {
	Parameters []Parameter
	Methods    []Method
	Attributes []string
	Summary    string
	Notes      string
}

func (ClassDetail) Kind() Kind { return KindClass }

// Return describes the return of a function: annotation (absent-aware) and
// docstring summary ("" when undocumented).
type Return struct {
	Annotation Optional
	Summary    string
}

// Raise describes one documented exception.
type Raise struct {
	Type    string
	Summary string
}

// Details renders the type-and-summary form used in raises listings.
func (r Raise) Details() string {
	return fmt.Sprintf("'%s' ('%s')", r.Type, r.Summary)
}

// Warn describes one documented warning.
type Warn struct {
	Type    string
	Summary string
}

// Details renders the type-and-summary form used in warns listings.
func (w Warn) Details() string {
	return fmt.Sprintf("'%s' ('%s')", w.Type, w.Summary)
}

// FunctionDetail describes a function member. Notes, References and Examples
// are empty strings, not absent values, when the docstring lacks them.
type FunctionDetail struct {
	Parameters []Parameter
	Returns    Return
	Summary    string
	Raises     []Raise
	Warns      []Warn
	Notes      string
	References string
	Examples   string
}

func (FunctionDetail) Kind() Kind { return KindFunction }

// Parameter kind labels, matching the vocabulary of Python signatures.
const (
	ParamPositionalOnly      = "positional-only"
	ParamPositionalOrKeyword = "positional or keyword"
	ParamVariadicPositional  = "variadic positional"
	ParamKeywordOnly         = "keyword-only"
	ParamVariadicKeyword     = "variadic keyword"
)
