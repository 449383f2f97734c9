// Package docstring parses NumPy-style docstrings into labeled sections.
//
// The parser understands the section layout produced by numpydoc-conformant
// documentation: a summary block followed by underlined section headers
// (Parameters, Returns, Raises, Warns, See Also, Notes, References, Examples).
// Consumers treat the result as an opaque section lookup; unknown sections are
// ignored rather than rejected.
package docstring

import "strings"

// Entry is a single item of an itemised section (Parameters, Returns, Raises,
// Warns). For Parameters the header line is "name : type"; for the other three
// a bare header line carries the type only.
type Entry struct {
	Name string
	Type string
	Desc []string
}

// Parsed holds the labeled sections of a docstring. Absent sections are nil or
// empty; callers decide per field whether that means "missing" or "empty".
type Parsed struct {
	Summary         []string
	ExtendedSummary []string
	Parameters      []Entry
	Returns         []Entry
	Raises          []Entry
	Warns           []Entry
	SeeAlso         []string
	Notes           []string
	References      []string
	Examples        []string
}

// SummaryText joins the Summary and Extended Summary sections with single
// spaces, the way class and function summaries are surfaced.
func (p Parsed) SummaryText() string {
	return strings.Join(append(append([]string{}, p.Summary...), p.ExtendedSummary...), " ")
}

// NotesText joins See Also and Notes with the given separator. Class details
// join with a space, function details with the empty string.
func (p Parsed) NotesText(sep string) string {
	return strings.Join(append(append([]string{}, p.SeeAlso...), p.Notes...), sep)
}

// sectionNames are the underlined headers the parser recognises.
var sectionNames = map[string]bool{
	"Parameters":       true,
	"Returns":          true,
	"Yields":           true,
	"Raises":           true,
	"Warns":            true,
	"See Also":         true,
	"Notes":            true,
	"References":       true,
	"Examples":         true,
	"Attributes":       true,
	"Other Parameters": true,
}

// Parse splits a cleaned docstring into sections. It never fails: malformed
// input degrades to a summary-only result.
func Parse(text string) Parsed {
	var parsed Parsed

	lines := strings.Split(text, "\n")

	// Locate section headers: a recognised name underlined by dashes.
	type sectionSpan struct {
		name  string
		start int // first content line after the underline
		end   int // exclusive
	}

	var spans []sectionSpan
	firstHeader := len(lines)

	for i := 0; i < len(lines)-1; i++ {
		name := strings.TrimSpace(lines[i])
		if !sectionNames[name] || !isUnderline(lines[i+1]) {
			continue
		}
		if len(spans) > 0 {
			spans[len(spans)-1].end = i
		} else {
			firstHeader = i
		}
		spans = append(spans, sectionSpan{name: name, start: i + 2, end: len(lines)})
	}

	parsed.Summary, parsed.ExtendedSummary = splitSummary(lines[:firstHeader])

	for _, span := range spans {
		body := lines[span.start:span.end]

		switch span.name {
		case "Parameters":
			parsed.Parameters = parseEntries(body)
		case "Returns", "Yields":
			parsed.Returns = append(parsed.Returns, parseEntries(body)...)
		case "Raises":
			parsed.Raises = parseEntries(body)
		case "Warns":
			parsed.Warns = parseEntries(body)
		case "See Also":
			parsed.SeeAlso = contentLines(body)
		case "Notes":
			parsed.Notes = contentLines(body)
		case "References":
			parsed.References = contentLines(body)
		case "Examples":
			parsed.Examples = contentLines(body)
		}
	}

	return parsed
}

// isUnderline reports whether a line is a dashed section underline.
func isUnderline(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		if r != '-' {
			return false
		}
	}
	return true
}

// splitSummary separates the leading block into the one-paragraph summary and
// the extended summary (everything after the first blank line).
func splitSummary(lines []string) (summary, extended []string) {
	blank := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			if len(summary) > 0 {
				blank = i
				break
			}
			continue
		}
		summary = append(summary, strings.TrimSpace(line))
	}

	if blank < 0 {
		return summary, nil
	}

	for _, line := range lines[blank:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		extended = append(extended, strings.TrimSpace(line))
	}

	return summary, extended
}

// parseEntries parses an itemised section: header lines at section indent with
// their indented description blocks.
func parseEntries(lines []string) []Entry {
	var entries []Entry

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indented := strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
		if indented {
			if len(entries) == 0 {
				continue
			}
			entries[len(entries)-1].Desc = append(entries[len(entries)-1].Desc, strings.TrimSpace(line))
			continue
		}

		header := strings.TrimSpace(line)
		if name, typ, ok := strings.Cut(header, " : "); ok {
			entries = append(entries, Entry{Name: strings.TrimSpace(name), Type: strings.TrimSpace(typ)})
		} else {
			// Bare header lines carry the type (Returns/Raises/Warns style).
			entries = append(entries, Entry{Type: header})
		}
	}

	return entries
}

// contentLines returns the trimmed non-blank lines of a free-text section.
func contentLines(lines []string) []string {
	var out []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, strings.TrimSpace(line))
	}
	return out
}

// Clean normalises a raw docstring the way Python's inspect.getdoc does:
// leading/trailing blank lines dropped, common indentation of continuation
// lines removed, trailing whitespace stripped.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(strings.ReplaceAll(text, "\t", "        "), "\n")

	margin := -1
	for _, line := range lines[1:] {
		trimmed := strings.TrimLeft(line, " ")
		if trimmed == "" {
			continue
		}
		indent := len(line) - len(trimmed)
		if margin < 0 || indent < margin {
			margin = indent
		}
	}

	cleaned := make([]string, 0, len(lines))
	cleaned = append(cleaned, strings.TrimSpace(lines[0]))
	for _, line := range lines[1:] {
		if margin > 0 && len(line) >= margin {
			line = line[margin:]
		}
		cleaned = append(cleaned, strings.TrimRight(line, " \t"))
	}

	for len(cleaned) > 0 && cleaned[0] == "" {
		cleaned = cleaned[1:]
	}
	for len(cleaned) > 0 && cleaned[len(cleaned)-1] == "" {
		cleaned = cleaned[:len(cleaned)-1]
	}

	return strings.Join(cleaned, "\n")
}
