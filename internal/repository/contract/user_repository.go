package contract

import (
	"context"

	"rag-chat-be/internal/entity"
	"rag-chat-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// IncrementUsage adds one exchange and its token estimate to the user's
	// running counters. Counters only ever grow.
	IncrementUsage(ctx context.Context, userId uuid.UUID, tokens int64) error
}
