package index

import (
	"errors"
	"testing"

	"rag-chat-be/pkg/embedding"
	"rag-chat-be/pkg/rag/chunker"

	"github.com/stretchr/testify/assert"
)

// fakeEmbedder maps known texts to fixed vectors.
type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (f *fakeEmbedder) Generate(text, taskType string) (*embedding.EmbeddingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	vec, ok := f.vectors[text]
	if !ok {
		return nil, errors.New("unexpected text: " + text)
	}
	res := &embedding.EmbeddingResponse{}
	res.Embedding.Values = vec
	return res, nil
}

func newTestIndex(t *testing.T) (*VectorIndex, *fakeEmbedder) {
	t.Helper()
	embedder := &fakeEmbedder{
		vectors: map[string][]float32{
			"north": {1, 0, 0},
			"east":  {0, 1, 0},
			"up":    {0, 0, 1},
			"query": {1, 0.1, 0},
		},
	}
	idx := New()
	chunks := []chunker.Chunk{
		{Text: "north", SourceOffset: 0},
		{Text: "east", SourceOffset: 10},
		{Text: "up", SourceOffset: 20},
	}
	count, err := idx.Build(chunks, embedder)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	return idx, embedder
}

func TestQueryOrdersByDescendingSimilarity(t *testing.T) {
	idx, embedder := newTestIndex(t)

	results, err := idx.Query("query", embedder, 3)

	assert.NoError(t, err)
	assert.Equal(t, []string{"north", "east", "up"}, results)
}

func TestQueryReturnsAtMostK(t *testing.T) {
	idx, embedder := newTestIndex(t)

	results, err := idx.Query("query", embedder, 2)
	assert.NoError(t, err)
	assert.Len(t, results, 2)

	// k larger than the index returns everything.
	results, err = idx.Query("query", embedder, 10)
	assert.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestQueryIdentityMatchFirst(t *testing.T) {
	idx, embedder := newTestIndex(t)
	embedder.vectors["exact"] = []float32{0, 1, 0}

	results, err := idx.Query("exact", embedder, 1)

	assert.NoError(t, err)
	assert.Equal(t, []string{"east"}, results)
}

func TestQueryTiesKeepChunkOrder(t *testing.T) {
	embedder := &fakeEmbedder{
		vectors: map[string][]float32{
			"first":  {1, 0},
			"second": {1, 0},
			"third":  {1, 0},
			"query":  {1, 0},
		},
	}
	idx := New()
	_, err := idx.Build([]chunker.Chunk{
		{Text: "first"},
		{Text: "second"},
		{Text: "third"},
	}, embedder)
	assert.NoError(t, err)

	results, err := idx.Query("query", embedder, 3)

	assert.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, results)
}

func TestQueryValidation(t *testing.T) {
	idx, embedder := newTestIndex(t)

	_, err := idx.Query("query", embedder, 0)
	assert.ErrorIs(t, err, ErrInvalidTopK)

	_, err = idx.Query("query", embedder, -1)
	assert.ErrorIs(t, err, ErrInvalidTopK)
}

func TestQueryEmptyIndex(t *testing.T) {
	idx := New()
	embedder := &fakeEmbedder{vectors: map[string][]float32{"query": {1}}}

	_, err := idx.Query("query", embedder, 4)

	assert.ErrorIs(t, err, ErrNoDocumentIndexed)
}

func TestClear(t *testing.T) {
	idx, embedder := newTestIndex(t)

	assert.True(t, idx.HasDocument())
	assert.Equal(t, 3, idx.Size())

	idx.Clear()
	idx.Clear() // idempotent

	assert.False(t, idx.HasDocument())
	assert.Equal(t, 0, idx.Size())

	_, err := idx.Query("query", embedder, 4)
	assert.ErrorIs(t, err, ErrNoDocumentIndexed)
}

func TestBuildReplacesPreviousDocument(t *testing.T) {
	idx, embedder := newTestIndex(t)
	embedder.vectors["west"] = []float32{-1, 0, 0}

	count, err := idx.Build([]chunker.Chunk{{Text: "west"}}, embedder)

	assert.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, idx.Size())

	results, err := idx.Query("query", embedder, 4)
	assert.NoError(t, err)
	assert.Equal(t, []string{"west"}, results)
}

func TestBuildFailureKeepsPreviousIndex(t *testing.T) {
	idx, embedder := newTestIndex(t)

	failing := &fakeEmbedder{err: embedding.ErrEmbeddingFailed}
	_, err := idx.Build([]chunker.Chunk{{Text: "anything"}}, failing)

	assert.Error(t, err)
	assert.Equal(t, 3, idx.Size())

	results, err := idx.Query("query", embedder, 1)
	assert.NoError(t, err)
	assert.Equal(t, []string{"north"}, results)
}

func TestQueryRejectsDimensionMismatch(t *testing.T) {
	idx, embedder := newTestIndex(t)
	embedder.vectors["short"] = []float32{1, 0}

	results, err := idx.Query("short", embedder, 4)

	assert.ErrorIs(t, err, embedding.ErrEmbeddingFailed)
	assert.Nil(t, results)
}

func TestBuildRejectsMixedDimensions(t *testing.T) {
	embedder := &fakeEmbedder{
		vectors: map[string][]float32{
			"a": {1, 0},
			"b": {1, 0, 0},
		},
	}
	idx := New()

	_, err := idx.Build([]chunker.Chunk{{Text: "a"}, {Text: "b"}}, embedder)

	assert.ErrorIs(t, err, embedding.ErrEmbeddingFailed)
	assert.False(t, idx.HasDocument())
}
