package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"rag-chat-be/internal/constant"
	"rag-chat-be/internal/dto"
	"rag-chat-be/internal/entity"
	"rag-chat-be/internal/pkg/logger"
	"rag-chat-be/internal/repository/specification"
	"rag-chat-be/internal/repository/unitofwork"
	"rag-chat-be/pkg/embedding"
	"rag-chat-be/pkg/events"
	"rag-chat-be/pkg/llm"
	"rag-chat-be/pkg/rag/history"
	"rag-chat-be/pkg/rag/index"
	"rag-chat-be/pkg/rag/prompt"

	"github.com/google/uuid"
)

var (
	ErrEmptyMessage       = errors.New("message must not be empty")
	ErrNoDocumentUploaded = errors.New("no document uploaded yet")
)

type IChatService interface {
	SendChat(ctx context.Context, userId uuid.UUID, message string) (*dto.ChatResponse, error)
}

type chatService struct {
	uowFactory        unitofwork.RepositoryFactory
	historyLoader     *history.Loader
	vectorIndex       *index.VectorIndex
	embeddingProvider embedding.EmbeddingProvider
	llmProvider       llm.LLMProvider
	personaService    IPersonaService
	eventPublisher    IPublisherService
	logger            logger.ILogger

	// userSequences serializes persistence per user so interleaved
	// requests cannot stamp messages out of order.
	userSequences sync.Map
}

// userSequence guards one user's message stream. last is the newest stamp
// handed out, so timestamps stay strictly increasing even when exchanges
// complete faster than the clock resolution.
type userSequence struct {
	mu   sync.Mutex
	last time.Time
}

// nextStamp returns a timestamp strictly after every stamp this sequence
// has issued. Callers must hold mu.
func (q *userSequence) nextStamp() time.Time {
	stamp := time.Now()
	if !stamp.After(q.last) {
		stamp = q.last.Add(time.Microsecond)
	}
	q.last = stamp
	return stamp
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	historyLoader *history.Loader,
	vectorIndex *index.VectorIndex,
	embeddingProvider embedding.EmbeddingProvider,
	llmProvider llm.LLMProvider,
	personaService IPersonaService,
	eventPublisher IPublisherService,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:        uowFactory,
		historyLoader:     historyLoader,
		vectorIndex:       vectorIndex,
		embeddingProvider: embeddingProvider,
		llmProvider:       llmProvider,
		personaService:    personaService,
		eventPublisher:    eventPublisher,
		logger:            log,
	}
}

func (s *chatService) SendChat(ctx context.Context, userId uuid.UUID, message string) (*dto.ChatResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	if !s.vectorIndex.HasDocument() {
		return nil, ErrNoDocumentUploaded
	}

	// 1. Load the recent conversation window, oldest first.
	historyMessages, err := s.historyLoader.Recent(ctx, userId, constant.HistoryWindow)
	if err != nil {
		return nil, err
	}

	// 2. Retrieve the most similar chunks for the raw question.
	chunks, err := s.vectorIndex.Query(message, s.embeddingProvider, constant.RetrievalTopK)
	if err != nil {
		if errors.Is(err, index.ErrNoDocumentIndexed) {
			return nil, ErrNoDocumentUploaded
		}
		return nil, err
	}

	// 3. Compose the prompt and generate. Nothing is persisted until the
	// model has answered, so a failed generation leaves no trace.
	fullPrompt := prompt.Compose(s.personaService.Current(), historyMessages, chunks, message)

	answer, err := s.llmProvider.Generate(ctx, fullPrompt)
	if err != nil {
		s.logger.Error("chat", "Generation failed", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return nil, err
	}

	tokens := (len(message) + len(answer) + constant.CharsPerToken - 1) / constant.CharsPerToken

	user, err := s.persistExchange(ctx, userId, message, answer, int64(tokens))
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, events.BaseEvent{
			Type: events.TypeChatExchanged,
			Data: map[string]interface{}{
				"user_id": userId.String(),
				"tokens":  tokens,
				"sources": len(chunks),
			},
			OccurredAt: time.Now(),
		})
	}

	return &dto.ChatResponse{
		Answer:       answer,
		Sources:      len(chunks),
		HistoryCount: len(historyMessages),
		Usage: dto.UsageDTO{
			TokensUsed:  tokens,
			TotalTokens: user.TotalTokens,
			ChatCount:   user.ChatCount,
		},
	}, nil
}

// persistExchange stores both sides of the exchange and bumps the usage
// counters in one transaction. The assistant message is stamped strictly
// after the user message so history replays in conversation order.
func (s *chatService) persistExchange(ctx context.Context, userId uuid.UUID, message, answer string, tokens int64) (*entity.User, error) {
	seq := s.sequenceFor(userId)
	seq.mu.Lock()
	defer seq.mu.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	userMessage := &entity.ChatMessage{
		Id:        uuid.New(),
		UserId:    userId,
		Role:      constant.ChatMessageRoleUser,
		Content:   message,
		CreatedAt: seq.nextStamp(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMessage); err != nil {
		return nil, err
	}

	assistantMessage := &entity.ChatMessage{
		Id:        uuid.New(),
		UserId:    userId,
		Role:      constant.ChatMessageRoleAssistant,
		Content:   answer,
		CreatedAt: seq.nextStamp(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, assistantMessage); err != nil {
		return nil, err
	}

	if err := uow.UserRepository().IncrementUsage(ctx, userId, tokens); err != nil {
		return nil, err
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *chatService) sequenceFor(userId uuid.UUID) *userSequence {
	actual, _ := s.userSequences.LoadOrStore(userId, &userSequence{})
	return actual.(*userSequence)
}
