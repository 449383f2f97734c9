package retrieval

import (
	"context"
	"fmt"
	"math"

	"github.com/blevesearch/bleve/v2"
)

// SearchType selects the retrieval algorithm.
type SearchType string

const (
	// SearchSimilarity returns the nearest neighbors of the query.
	SearchSimilarity SearchType = "similarity"

	// SearchMMR re-ranks nearest neighbors by maximal marginal relevance,
	// trading relevance against diversity.
	SearchMMR SearchType = "mmr"

	// SearchKeyword matches query terms against document text.
	SearchKeyword SearchType = "keyword"
)

// Options tunes one search call.
type Options struct {
	Type   SearchType
	TopK   int     // documents returned
	FetchK int     // candidates fetched before mmr re-ranking
	Lambda float64 // mmr relevance weight: 1 is pure relevance, 0 pure diversity
}

// DefaultOptions mirrors the conventional retrieval settings: five documents
// from ten candidates at a balanced relevance/diversity trade-off.
func DefaultOptions() Options {
	return Options{
		Type:   SearchSimilarity,
		TopK:   5,
		FetchK: 10,
		Lambda: 0.5,
	}
}

// Result is one retrieved document.
type Result struct {
	ID      string
	Content string
	Score   float64
}

// Search retrieves the documents most relevant to the query using the
// configured algorithm.
func (s *VectorStore) Search(ctx context.Context, query string, opts Options) ([]Result, error) {
	if opts.TopK <= 0 {
		return nil, fmt.Errorf("top k must be positive, got %d", opts.TopK)
	}

	switch opts.Type {
	case SearchSimilarity:
		return s.similaritySearch(ctx, query, opts.TopK)
	case SearchMMR:
		return s.mmrSearch(ctx, query, opts)
	case SearchKeyword:
		return s.keywordSearch(query, opts.TopK)
	default:
		return nil, fmt.Errorf("unexpected search type %q", opts.Type)
	}
}

func (s *VectorStore) similaritySearch(ctx context.Context, query string, k int) ([]Result, error) {
	candidates, err := s.queryEmbedding(ctx, query, k)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, Result{
			ID:      c.ID,
			Content: c.Content,
			Score:   float64(c.Similarity),
		})
	}
	return results, nil
}

// mmrSearch fetches FetchK nearest neighbors and greedily re-ranks them:
// each round picks the candidate maximizing
// lambda*sim(query, d) - (1-lambda)*max(sim(d, selected)).
func (s *VectorStore) mmrSearch(ctx context.Context, query string, opts Options) ([]Result, error) {
	fetchK := opts.FetchK
	if fetchK < opts.TopK {
		fetchK = opts.TopK
	}

	candidates, err := s.queryEmbedding(ctx, query, fetchK)
	if err != nil {
		return nil, err
	}

	var (
		selected []Result
		picked   = make([]bool, len(candidates))
		vectors  = make([][]float32, len(candidates))
	)
	for i, c := range candidates {
		vectors[i] = c.Embedding
	}

	for len(selected) < opts.TopK && len(selected) < len(candidates) {
		best := -1
		bestScore := math.Inf(-1)

		for i, c := range candidates {
			if picked[i] {
				continue
			}

			redundancy := 0.0
			for j, taken := range picked {
				if !taken {
					continue
				}
				if sim := float64(cosineSimilarity(vectors[i], vectors[j])); sim > redundancy {
					redundancy = sim
				}
			}

			score := opts.Lambda*float64(c.Similarity) - (1-opts.Lambda)*redundancy
			if score > bestScore {
				bestScore = score
				best = i
			}
		}

		picked[best] = true
		selected = append(selected, Result{
			ID:      candidates[best].ID,
			Content: candidates[best].Content,
			Score:   bestScore,
		})
	}

	return selected, nil
}

func (s *VectorStore) keywordSearch(query string, k int) ([]Result, error) {
	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create keyword index: %w", err)
	}
	defer index.Close()

	contents := make(map[string]string, len(s.documents))
	for _, doc := range s.documents {
		contents[doc.ID] = doc.Content
		if err := index.Index(doc.ID, map[string]string{"content": doc.Content}); err != nil {
			return nil, fmt.Errorf("failed to index document %s: %w", doc.ID, err)
		}
	}

	request := bleve.NewSearchRequestOptions(bleve.NewMatchQuery(query), k, 0, false)
	response, err := index.Search(request)
	if err != nil {
		return nil, fmt.Errorf("keyword search failed: %w", err)
	}

	results := make([]Result, 0, len(response.Hits))
	for _, hit := range response.Hits {
		results = append(results, Result{
			ID:      hit.ID,
			Content: contents[hit.ID],
			Score:   hit.Score,
		})
	}
	return results, nil
}

// queryEmbedding embeds the query and fetches its nearest neighbors, capped
// at the collection size.
func (s *VectorStore) queryEmbedding(ctx context.Context, query string, n int) ([]chromemResult, error) {
	embeddings, err := s.provider.Embed(ctx, []string{query}, EmbedModeQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("no embedding returned for query")
	}

	if count := s.collection.Count(); n > count {
		n = count
	}
	if n == 0 {
		return nil, nil
	}

	docs, err := s.collection.QueryEmbedding(ctx, embeddings[0], n, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}

	results := make([]chromemResult, 0, len(docs))
	for _, doc := range docs {
		results = append(results, chromemResult{
			ID:         doc.ID,
			Content:    doc.Content,
			Embedding:  doc.Embedding,
			Similarity: doc.Similarity,
		})
	}
	return results, nil
}

// chromemResult narrows the vector database result to the fields searches use.
type chromemResult struct {
	ID         string
	Content    string
	Embedding  []float32
	Similarity float32
}

func cosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
