package index

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"rag-chat-be/pkg/embedding"
	"rag-chat-be/pkg/rag/chunker"
)

var (
	// ErrNoDocumentIndexed signals a query against an empty index.
	ErrNoDocumentIndexed = errors.New("no document indexed")

	// ErrInvalidTopK signals a non-positive k.
	ErrInvalidTopK = errors.New("top-k must be positive")
)

type entry struct {
	text         string
	sourceOffset int
	vector       []float32
}

// VectorIndex holds the (chunk, embedding) pairs of the single active
// document and answers exact nearest-neighbor queries by brute-force
// cosine similarity. At most one document is active at a time; Build
// replaces the whole index atomically.
type VectorIndex struct {
	mu      sync.RWMutex
	entries []entry
}

func New() *VectorIndex {
	return &VectorIndex{}
}

// Build embeds every chunk and swaps the result in as the active index.
// The new entry set is assembled fully off to the side with no lock held,
// so concurrent queries keep seeing the previous document until the swap.
// Any embedding failure leaves the previous index untouched.
func (x *VectorIndex) Build(chunks []chunker.Chunk, embedder embedding.EmbeddingProvider) (int, error) {
	fresh := make([]entry, 0, len(chunks))
	dimension := 0
	for _, c := range chunks {
		res, err := embedder.Generate(c.Text, embedding.TaskRetrievalDocument)
		if err != nil {
			return 0, fmt.Errorf("embed chunk at offset %d: %w", c.SourceOffset, err)
		}
		vec := res.Embedding.Values
		if len(vec) == 0 {
			return 0, fmt.Errorf("%w: empty vector for chunk at offset %d", embedding.ErrEmbeddingFailed, c.SourceOffset)
		}
		if dimension == 0 {
			dimension = len(vec)
		} else if len(vec) != dimension {
			return 0, fmt.Errorf("%w: dimension %d != %d for chunk at offset %d",
				embedding.ErrEmbeddingFailed, len(vec), dimension, c.SourceOffset)
		}
		fresh = append(fresh, entry{
			text:         c.Text,
			sourceOffset: c.SourceOffset,
			vector:       vec,
		})
	}

	x.mu.Lock()
	x.entries = fresh
	x.mu.Unlock()

	return len(fresh), nil
}

// Query embeds the query text and returns the texts of the top-k most
// similar chunks, ordered by descending cosine similarity. Ties keep the
// original chunk order.
func (x *VectorIndex) Query(queryText string, embedder embedding.EmbeddingProvider, k int) ([]string, error) {
	if k <= 0 {
		return nil, ErrInvalidTopK
	}
	if !x.HasDocument() {
		return nil, ErrNoDocumentIndexed
	}

	res, err := embedder.Generate(queryText, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	queryVec := res.Embedding.Values

	x.mu.RLock()
	defer x.mu.RUnlock()

	// Re-check under the lock: the index may have been cleared since.
	if len(x.entries) == 0 {
		return nil, ErrNoDocumentIndexed
	}

	// A query vector of a different dimension than the stored vectors
	// cannot be compared meaningfully; treat it like any other bad
	// embedding instead of silently truncating the dot product.
	if len(queryVec) != len(x.entries[0].vector) {
		return nil, fmt.Errorf("%w: query dimension %d != %d",
			embedding.ErrEmbeddingFailed, len(queryVec), len(x.entries[0].vector))
	}

	scores := make([]float64, len(x.entries))
	for i := range x.entries {
		scores[i] = cosineSimilarity(x.entries[i].vector, queryVec)
	}

	order := make([]int, len(x.entries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if k > len(order) {
		k = len(order)
	}
	results := make([]string, 0, k)
	for _, i := range order[:k] {
		results = append(results, x.entries[i].text)
	}
	return results, nil
}

// Clear discards the active index. Idempotent.
func (x *VectorIndex) Clear() {
	x.mu.Lock()
	x.entries = nil
	x.mu.Unlock()
}

// HasDocument reports whether an index is currently active.
func (x *VectorIndex) HasDocument() bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.entries) > 0
}

// Size returns the number of indexed chunks.
func (x *VectorIndex) Size() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.entries)
}

func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, magA, magB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
