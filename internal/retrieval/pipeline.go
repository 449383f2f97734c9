package retrieval

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// promptTemplate instructs the model to answer only from the retrieved
// context and to keep the answer concise.
const promptTemplate = `You are a chat assistant for question answering tasks.

Use the following retrieved context to answer the given question.

If the answer is not in the context, say "I do not know.".

Keep your answer as concise as possible.

Context

%s

Question

%s

Answer

`

// Response is the answer to one question, with the retrieval details
// captured for inspection.
type Response struct {
	Query           string
	Answer          string
	SourceDocuments []string
	UsedPrompt      string
	Duration        time.Duration
}

// Pipeline wires document search and answer generation together.
type Pipeline struct {
	store   *VectorStore
	model   LanguageModel
	options Options
}

// NewPipeline builds a question answering pipeline over an opened store.
func NewPipeline(store *VectorStore, model LanguageModel, options Options) *Pipeline {
	return &Pipeline{
		store:   store,
		model:   model,
		options: options,
	}
}

// Ask retrieves context for the question, prompts the model and captures the
// effective prompt and generation duration.
func (p *Pipeline) Ask(ctx context.Context, question string) (Response, error) {
	results, err := p.store.Search(ctx, question, p.options)
	if err != nil {
		return Response{}, fmt.Errorf("retrieval failed: %w", err)
	}

	sources := make([]string, 0, len(results))
	for _, result := range results {
		sources = append(sources, result.Content)
	}

	prompt := fmt.Sprintf(promptTemplate, strings.Join(sources, "\n\n"), question)

	started := time.Now()
	answer, err := p.model.Generate(ctx, prompt)
	if err != nil {
		return Response{}, fmt.Errorf("generation failed: %w", err)
	}

	return Response{
		Query:           question,
		Answer:          answer,
		SourceDocuments: sources,
		UsedPrompt:      prompt,
		Duration:        time.Since(started),
	}, nil
}
