package retrieval

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the question answering pipeline:
// 1. Ask retrieves context, renders it into the prompt and returns the
//    model's answer together with sources, prompt and duration.
// 2. The prompt embeds both the retrieved documents and the question.
// 3. Retrieval failures surface instead of producing an empty answer.

func TestPipelineAsk(t *testing.T) {
	t.Parallel()

	_, store := buildTestIndex(t)
	model := NewMockModel("'greet' is a function in the demo package.")

	pipeline := NewPipeline(store, model, Options{
		Type: SearchSimilarity,
		TopK: 2,
	})

	response, err := pipeline.Ask(context.Background(), "'greet' is a Python function.")
	require.NoError(t, err)

	assert.Equal(t, "'greet' is a Python function.", response.Query)
	assert.Equal(t, "'greet' is a function in the demo package.", response.Answer)
	require.Len(t, response.SourceDocuments, 2)
	assert.Equal(t, "'greet' is a Python function.", response.SourceDocuments[0])

	assert.Contains(t, response.UsedPrompt, "You are a chat assistant")
	assert.Contains(t, response.UsedPrompt, "'greet' is a Python function.")
	assert.Contains(t, response.UsedPrompt, "Question")
	assert.GreaterOrEqual(t, response.Duration, time.Duration(0))
}

func TestPipelineAsk_RetrievalFailure(t *testing.T) {
	t.Parallel()

	_, store := buildTestIndex(t)
	pipeline := NewPipeline(store, NewMockModel("unused"), Options{Type: "hybrid", TopK: 2})

	_, err := pipeline.Ask(context.Background(), "anything")
	assert.Error(t, err)
}
