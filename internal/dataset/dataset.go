// Package dataset synthesizes retrieval chunks and question/answer tuning
// documents from introspected Python package records, allocates each pair to
// a train/validation/test split, and serializes the corpus to JSON.
package dataset

// Document is one tuning triplet with its split allocation. Context carries
// the fact sentence the question and answer were generated from.
type Document struct {
	Context  string `json:"context"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Split    Split  `json:"split"`
}

// Dataset is the output of one generator call: retrieval chunks plus
// allocated tuning documents.
type Dataset struct {
	RetrievalChunks []string
	TuningDocuments []Document
}

// append merges another dataset into this one, preserving order.
func (d *Dataset) append(other Dataset) {
	d.RetrievalChunks = append(d.RetrievalChunks, other.RetrievalChunks...)
	d.TuningDocuments = append(d.TuningDocuments, other.TuningDocuments...)
}

// Generator synthesizes datasets from introspection records. All draws go
// through the one allocator, so a fixed seed reproduces a corpus exactly.
type Generator struct {
	alloc *Allocator
}

// NewGenerator builds a generator around a split allocator.
func NewGenerator(alloc *Allocator) *Generator {
	return &Generator{alloc: alloc}
}

// tuningDocuments pairs question and answer paraphrases positionally, cycling
// the shorter answer list, and draws one split label per pair.
func (g *Generator) tuningDocuments(context string, questions, answers []string) []Document {
	if len(answers) == 0 {
		return nil
	}

	documents := make([]Document, 0, len(questions))
	for i, question := range questions {
		documents = append(documents, Document{
			Context:  context,
			Question: question,
			Answer:   answers[i%len(answers)],
			Split:    g.alloc.Draw(),
		})
	}
	return documents
}
