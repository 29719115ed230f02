package service

import (
	"context"
	"strings"
	"testing"

	"rag-chat-be/pkg/embedding"
	"rag-chat-be/pkg/events"
	"rag-chat-be/pkg/pdfx"
	"rag-chat-be/pkg/rag/index"

	"github.com/stretchr/testify/assert"
)

// fakeExtractor returns canned pages instead of parsing PDF bytes.
type fakeExtractor struct {
	pages []string
	err   error
}

func (f *fakeExtractor) ExtractPages(data []byte) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pages, nil
}

func TestIngestIndexesDocument(t *testing.T) {
	extractor := &fakeExtractor{
		pages: []string{
			strings.Repeat("first page sentence. ", 30),
			strings.Repeat("second page sentence. ", 30),
		},
	}
	vectorIndex := index.New()
	publisher := &fakePublisher{}
	svc := NewDocumentService(extractor, &constantEmbedder{}, vectorIndex, publisher, nopLogger{})

	count, err := svc.Ingest(context.Background(), []byte("irrelevant"), "manual.pdf")

	assert.NoError(t, err)
	assert.Greater(t, count, 0)
	assert.Equal(t, count, vectorIndex.Size())
	assert.True(t, svc.HasDocument())

	assert.Len(t, publisher.published, 1)
	assert.Equal(t, events.TypeDocumentIngested, publisher.published[0].EventType())
	assert.Equal(t, "manual.pdf", publisher.published[0].Payload()["filename"])
}

func TestIngestReplacesPreviousDocument(t *testing.T) {
	vectorIndex := index.New()
	svc := NewDocumentService(
		&fakeExtractor{pages: []string{"short document"}},
		&constantEmbedder{},
		vectorIndex,
		nil,
		nopLogger{},
	)

	first, err := svc.Ingest(context.Background(), nil, "a.pdf")
	assert.NoError(t, err)
	assert.Equal(t, 1, first)

	second, err := svc.Ingest(context.Background(), nil, "b.pdf")
	assert.NoError(t, err)
	assert.Equal(t, 1, second)
	assert.Equal(t, 1, vectorIndex.Size())
}

func TestIngestUnreadablePDF(t *testing.T) {
	vectorIndex := index.New()
	svc := NewDocumentService(
		&fakeExtractor{err: pdfx.ErrUnreadableDocument},
		&constantEmbedder{},
		vectorIndex,
		nil,
		nopLogger{},
	)

	_, err := svc.Ingest(context.Background(), []byte("junk"), "broken.pdf")

	assert.ErrorIs(t, err, pdfx.ErrUnreadableDocument)
	assert.False(t, svc.HasDocument())
}

func TestIngestEmbeddingFailureKeepsPreviousIndex(t *testing.T) {
	vectorIndex := index.New()
	extractor := &fakeExtractor{pages: []string{"stable document"}}
	svc := NewDocumentService(extractor, &constantEmbedder{}, vectorIndex, nil, nopLogger{})

	_, err := svc.Ingest(context.Background(), nil, "good.pdf")
	assert.NoError(t, err)

	failingSvc := NewDocumentService(
		&fakeExtractor{pages: []string{"new document"}},
		&constantEmbedder{err: embedding.ErrEmbeddingFailed},
		vectorIndex,
		nil,
		nopLogger{},
	)

	_, err = failingSvc.Ingest(context.Background(), nil, "bad.pdf")

	assert.ErrorIs(t, err, embedding.ErrEmbeddingFailed)
	assert.Equal(t, 1, vectorIndex.Size())
	assert.True(t, vectorIndex.HasDocument())
}

func TestClearDropsDocument(t *testing.T) {
	vectorIndex := index.New()
	svc := NewDocumentService(
		&fakeExtractor{pages: []string{"some text"}},
		&constantEmbedder{},
		vectorIndex,
		nil,
		nopLogger{},
	)

	_, err := svc.Ingest(context.Background(), nil, "a.pdf")
	assert.NoError(t, err)
	assert.True(t, svc.HasDocument())

	svc.Clear()

	assert.False(t, svc.HasDocument())
}
