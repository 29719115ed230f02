package service

import (
	"context"
	"strings"
	"time"

	"rag-chat-be/internal/constant"
	"rag-chat-be/internal/pkg/logger"
	"rag-chat-be/pkg/embedding"
	"rag-chat-be/pkg/events"
	"rag-chat-be/pkg/pdfx"
	"rag-chat-be/pkg/rag/chunker"
	"rag-chat-be/pkg/rag/index"
)

type IDocumentService interface {
	// Ingest extracts, chunks and embeds a PDF, replacing any previously
	// indexed document. It returns the number of chunks indexed.
	Ingest(ctx context.Context, pdfBytes []byte, filename string) (int, error)
	HasDocument() bool
	Clear()
}

type documentService struct {
	extractor         pdfx.Extractor
	embeddingProvider embedding.EmbeddingProvider
	vectorIndex       *index.VectorIndex
	eventPublisher    IPublisherService
	logger            logger.ILogger
}

func NewDocumentService(
	extractor pdfx.Extractor,
	embeddingProvider embedding.EmbeddingProvider,
	vectorIndex *index.VectorIndex,
	eventPublisher IPublisherService,
	log logger.ILogger,
) IDocumentService {
	return &documentService{
		extractor:         extractor,
		embeddingProvider: embeddingProvider,
		vectorIndex:       vectorIndex,
		eventPublisher:    eventPublisher,
		logger:            log,
	}
}

func (s *documentService) Ingest(ctx context.Context, pdfBytes []byte, filename string) (int, error) {
	pages, err := s.extractor.ExtractPages(pdfBytes)
	if err != nil {
		s.logger.Warn("document", "PDF extraction failed", map[string]interface{}{
			"filename": filename,
			"error":    err.Error(),
		})
		return 0, err
	}

	text := strings.Join(pages, "\n\n")

	chunks, err := chunker.Split(text, constant.ChunkSize, constant.ChunkOverlap)
	if err != nil {
		return 0, err
	}

	// Build embeds aside and swaps atomically, so a failure here leaves
	// the previously indexed document untouched.
	count, err := s.vectorIndex.Build(chunks, s.embeddingProvider)
	if err != nil {
		s.logger.Error("document", "Index build failed", map[string]interface{}{
			"filename": filename,
			"chunks":   len(chunks),
			"error":    err.Error(),
		})
		return 0, err
	}

	s.logger.Info("document", "Document indexed", map[string]interface{}{
		"filename": filename,
		"chunks":   count,
	})

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, events.BaseEvent{
			Type: events.TypeDocumentIngested,
			Data: map[string]interface{}{
				"filename": filename,
				"chunks":   count,
			},
			OccurredAt: time.Now(),
		})
	}

	return count, nil
}

func (s *documentService) HasDocument() bool {
	return s.vectorIndex.HasDocument()
}

func (s *documentService) Clear() {
	s.vectorIndex.Clear()
}
