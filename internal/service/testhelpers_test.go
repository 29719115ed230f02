package service

import (
	"context"
	"sort"

	"rag-chat-be/internal/entity"
	"rag-chat-be/internal/repository/contract"
	"rag-chat-be/internal/repository/specification"
	"rag-chat-be/internal/repository/unitofwork"
	"rag-chat-be/pkg/embedding"
	"rag-chat-be/pkg/events"
	"rag-chat-be/pkg/llm"

	"github.com/google/uuid"
)

// fakeUserRepo keeps users in memory and interprets the specifications the
// services actually use.
type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	copied := *user
	r.users[user.Id] = &copied
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, user := range r.users {
		if matchUser(user, specs) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, user := range r.users {
		if matchUser(user, specs) {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) IncrementUsage(ctx context.Context, userId uuid.UUID, tokens int64) error {
	user, ok := r.users[userId]
	if !ok {
		return nil
	}
	user.ChatCount++
	user.TotalTokens += tokens
	return nil
}

func matchUser(user *entity.User, specs []specification.Specification) bool {
	for _, s := range specs {
		switch spec := s.(type) {
		case specification.ByID:
			if user.Id != spec.ID {
				return false
			}
		case specification.ByUsername:
			if user.Username != spec.Username {
				return false
			}
		}
	}
	return true
}

// fakeChatRepo stores messages and supports the newest-first windowed query
// used by the history loader.
type fakeChatRepo struct {
	messages []*entity.ChatMessage
}

func (r *fakeChatRepo) Create(ctx context.Context, message *entity.ChatMessage) error {
	copied := *message
	r.messages = append(r.messages, &copied)
	return nil
}

func (r *fakeChatRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	var userId uuid.UUID
	limit := 0
	desc := false
	for _, s := range specs {
		switch spec := s.(type) {
		case specification.ByUserID:
			userId = spec.UserID
		case specification.Pagination:
			limit = spec.Limit
		case specification.OrderBy:
			if spec.Field == "created_at" {
				desc = spec.Desc
			}
		}
	}

	var filtered []*entity.ChatMessage
	for _, m := range r.messages {
		if m.UserId == userId {
			copied := *m
			filtered = append(filtered, &copied)
		}
	}

	sort.SliceStable(filtered, func(a, b int) bool {
		if desc {
			return filtered[a].CreatedAt.After(filtered[b].CreatedAt)
		}
		return filtered[a].CreatedAt.Before(filtered[b].CreatedAt)
	})

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

func (r *fakeChatRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	msgs, err := r.FindAll(ctx, specs...)
	return int64(len(msgs)), err
}

// fakeUnitOfWork shares repositories across instances so reads and writes
// observe the same state.
type fakeUnitOfWork struct {
	userRepo *fakeUserRepo
	chatRepo *fakeChatRepo

	begun      int
	committed  int
	rolledBack int
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error {
	u.begun++
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	u.committed++
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	u.rolledBack++
	return nil
}

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return u.userRepo
}

func (u *fakeUnitOfWork) ChatMessageRepository() contract.ChatMessageRepository {
	return u.chatRepo
}

type fakeRepositoryFactory struct {
	uow *fakeUnitOfWork
}

func newFakeRepositoryFactory() *fakeRepositoryFactory {
	return &fakeRepositoryFactory{
		uow: &fakeUnitOfWork{
			userRepo: newFakeUserRepo(),
			chatRepo: &fakeChatRepo{},
		},
	}
}

func (f *fakeRepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// fakeLLM records the last prompt and answers with a canned string.
type fakeLLM struct {
	answer     string
	err        error
	lastPrompt string
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

// constantEmbedder returns the same unit vector for every input.
type constantEmbedder struct {
	err error
}

func (e *constantEmbedder) Generate(text, taskType string) (*embedding.EmbeddingResponse, error) {
	if e.err != nil {
		return nil, e.err
	}
	res := &embedding.EmbeddingResponse{}
	res.Embedding.Values = []float32{1, 0}
	return res, nil
}

// fakePublisher collects published events.
type fakePublisher struct {
	published []events.Event
}

func (p *fakePublisher) Publish(ctx context.Context, event events.Event) error {
	p.published = append(p.published, event)
	return nil
}

// nopLogger satisfies the logger contract without output.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
