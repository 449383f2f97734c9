package retrieval

import "strings"

// Default partitioning bounds: chunks of at most 512 characters, with 64
// characters of overlap between neighboring chunks of the same document.
const (
	DefaultChunkSize    = 512
	DefaultChunkOverlap = 64
)

// separators are tried in order; the first one present in the text drives
// the split, and oversized fragments recurse on the remaining separators.
var separators = []string{"\n\n", "\n", " ", ""}

// SplitDocuments partitions documents into retrieval chunks. Documents that
// already fit within chunkSize pass through unchanged.
func SplitDocuments(documents []string, chunkSize, overlap int) []string {
	var chunks []string
	for _, doc := range documents {
		chunks = append(chunks, splitText(doc, chunkSize, overlap, separators)...)
	}
	return chunks
}

func splitText(text string, chunkSize, overlap int, seps []string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if len(text) <= chunkSize {
		return []string{text}
	}

	sep := ""
	rest := []string{}
	for i, candidate := range seps {
		if candidate == "" || strings.Contains(text, candidate) {
			sep = candidate
			rest = seps[i+1:]
			break
		}
	}

	if sep == "" {
		return splitHard(text, chunkSize, overlap)
	}

	var (
		chunks     []string
		current    []string
		currentLen int
		fresh      bool
	)

	flush := func() {
		if !fresh {
			return
		}
		joined := strings.Join(current, sep)
		if strings.TrimSpace(joined) != "" {
			chunks = append(chunks, joined)
		}

		// Seed the next chunk with a trailing overlap window.
		var kept []string
		keptLen := 0
		for i := len(current) - 1; i >= 0; i-- {
			pieceLen := len(current[i]) + len(sep)
			if keptLen+pieceLen > overlap {
				break
			}
			kept = append([]string{current[i]}, kept...)
			keptLen += pieceLen
		}
		current = kept
		currentLen = keptLen
		fresh = false
	}

	for _, part := range strings.Split(text, sep) {
		if len(part) > chunkSize {
			flush()
			current = nil
			currentLen = 0
			chunks = append(chunks, splitText(part, chunkSize, overlap, rest)...)
			continue
		}
		if currentLen+len(part)+len(sep) > chunkSize && currentLen > 0 {
			flush()
		}
		current = append(current, part)
		currentLen += len(part) + len(sep)
		fresh = true
	}
	flush()

	return chunks
}

// splitHard cuts text at fixed offsets when no separator applies.
func splitHard(text string, chunkSize, overlap int) []string {
	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize
	}

	var chunks []string
	for start := 0; start < len(text); start += step {
		end := start + chunkSize
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[start:end])
		if end == len(text) {
			break
		}
	}
	return chunks
}
