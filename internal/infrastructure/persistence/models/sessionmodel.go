package models

import (
	"time"

	"clubcms/internal/shared/constants"
)

// SessionModel represents one outstanding issued token. Only a one-way digest
// of the token is stored; deleting the row revokes the token immediately.
type SessionModel struct {
	ID        uint      `gorm:"primarykey"`
	UserID    uint      `gorm:"not null;index"`
	TokenHash string    `gorm:"not null;size:64;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return constants.TableSessions
}
