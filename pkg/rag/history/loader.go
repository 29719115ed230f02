package history

import (
	"context"

	"rag-chat-be/internal/constant"
	"rag-chat-be/internal/repository/specification"
	"rag-chat-be/internal/repository/unitofwork"
	"rag-chat-be/pkg/llm"

	"github.com/google/uuid"
)

// Loader retrieves the recent conversation window for prompt composition.
// It always returns chronological order, oldest first.
type Loader struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewLoader(uowFactory unitofwork.RepositoryFactory) *Loader {
	return &Loader{
		uowFactory: uowFactory,
	}
}

// Recent returns up to limit of the user's newest messages, oldest first.
// Messages of other users are never returned.
func (l *Loader) Recent(ctx context.Context, userId uuid.UUID, limit int) ([]llm.Message, error) {
	if limit <= 0 {
		return nil, nil
	}

	uow := l.uowFactory.NewUnitOfWork(ctx)

	recent, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.OrderBy{Field: "id", Desc: true},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, err
	}

	// The query fetched newest-first; flip into conversation order.
	messages := make([]llm.Message, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		role := constant.ChatMessageRoleUser
		if recent[i].Role == constant.ChatMessageRoleAssistant {
			role = constant.ChatMessageRoleAssistant
		}
		messages = append(messages, llm.Message{
			Role:    role,
			Content: recent[i].Content,
		})
	}

	return messages, nil
}
