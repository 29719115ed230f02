package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Username     string
	PasswordHash string

	// Usage counters. Monotonically non-decreasing; updated exactly once
	// per successful exchange, in the same transaction as the message writes.
	ChatCount   int
	TotalTokens int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
