package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByUserID filters chat messages by owning user
type ByUserID struct {
	UserID uuid.UUID
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}
