package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one conversational turn. Immutable once written; ordered
// per user by CreatedAt.
type ChatMessage struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Role      string
	Content   string
	CreatedAt time.Time
}
