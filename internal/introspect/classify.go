package introspect

import (
	"strings"

	"github.com/docsage/docsage/internal/docstring"
)

// enumBases are the base-class names (last segment when dotted) that mark a
// class as an enumeration.
var enumBases = map[string]bool{
	"Enum":    true,
	"IntEnum": true,
	"StrEnum": true,
	"Flag":    true,
	"IntFlag": true,
}

// classify turns a parsed source definition into its kind-specific detail.
// Dispatch order is enum, class, function; anything else yields nil.
func classify(def *definition) Detail {
	parsed := docstring.Parse(docstring.Clean(def.docstring))

	switch def.kind {
	case defClass:
		if isEnumDef(def) {
			return classifyEnum(def)
		}
		return classifyClass(def, parsed)
	case defFunction:
		return classifyFunction(def, parsed)
	}
	return nil
}

func isEnumDef(def *definition) bool {
	for _, base := range def.bases {
		name := base
		if i := strings.LastIndex(base, "."); i >= 0 {
			name = base[i+1:]
		}
		if enumBases[name] {
			return true
		}
	}
	return false
}

func classifyEnum(def *definition) EnumDetail {
	var detail EnumDetail
	for _, member := range def.enumMembers {
		if isPrivate(member.Name) {
			continue
		}
		detail.Members = append(detail.Members, member)
	}
	return detail
}

func classifyClass(def *definition, parsed docstring.Parsed) ClassDetail {
	detail := ClassDetail{
		Parameters: mergeParameters(def.params, parsed.Parameters),
		Summary:    parsed.SummaryText(),
		Notes:      parsed.NotesText(" "),
	}

	for _, method := range def.methods {
		if isPrivate(method.name) {
			continue
		}
		summary := docstring.Parse(docstring.Clean(method.docstring)).SummaryText()
		detail.Methods = append(detail.Methods, Method{
			Name:       method.name,
			Parameters: method.params,
			Summary:    summary,
		})
	}

	for _, attribute := range def.attributes {
		if isPrivate(attribute) {
			continue
		}
		detail.Attributes = append(detail.Attributes, attribute)
	}

	return detail
}

func classifyFunction(def *definition, parsed docstring.Parsed) FunctionDetail {
	return FunctionDetail{
		Parameters: mergeParameters(def.params, parsed.Parameters),
		Returns:    mergeReturn(def.returns, parsed.Returns),
		Summary:    parsed.SummaryText(),
		Raises:     raisesOf(parsed.Raises),
		Warns:      warnsOf(parsed.Warns),
		Notes:      parsed.NotesText(""),
		References: strings.Join(parsed.References, ""),
		Examples:   strings.Join(parsed.Examples, ""),
	}
}

// mergeParameters combines signature parameters with their docstring entries.
// The signature drives order and membership; the docstring contributes the
// summary always and the annotation when the signature lacks one.
func mergeParameters(params []rawParam, entries []docstring.Entry) []Parameter {
	documented := make(map[string]docstring.Entry, len(entries))
	for _, entry := range entries {
		documented[entry.Name] = entry
	}

	var merged []Parameter
	for _, param := range params {
		out := Parameter{
			Name:       param.name,
			Default:    param.def,
			Annotation: param.annotation,
			ParamKind:  param.kind,
		}
		if entry, ok := documented[param.name]; ok {
			out.Summary = strings.Join(entry.Desc, " ")
			if entry.Type != "" {
				out.Annotation = Value(entry.Type)
			}
		}
		merged = append(merged, out)
	}
	return merged
}

// mergeReturn combines the signature return annotation with the docstring
// Returns section. The docstring type wins when both are present.
func mergeReturn(annotation Optional, entries []docstring.Entry) Return {
	ret := Return{Annotation: annotation}
	if len(entries) == 0 {
		return ret
	}
	entry := entries[0]
	if entry.Type != "" {
		ret.Annotation = Value(entry.Type)
	}
	ret.Summary = strings.Join(entry.Desc, " ")
	return ret
}

func raisesOf(entries []docstring.Entry) []Raise {
	var raises []Raise
	for _, entry := range entries {
		raises = append(raises, Raise{
			Type:    entry.Type,
			Summary: strings.Join(entry.Desc, " "),
		})
	}
	return raises
}

func warnsOf(entries []docstring.Entry) []Warn {
	var warns []Warn
	for _, entry := range entries {
		warns = append(warns, Warn{
			Type:    entry.Type,
			Summary: strings.Join(entry.Desc, " "),
		})
	}
	return warns
}

func isPrivate(name string) bool {
	return strings.HasPrefix(name, "_")
}
