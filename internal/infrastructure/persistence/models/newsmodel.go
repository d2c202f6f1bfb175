package models

import (
	"time"

	"clubcms/internal/shared/constants"
)

// NewsModel represents the database persistence model for news posts.
type NewsModel struct {
	ID        uint      `gorm:"primarykey"`
	Title     string    `gorm:"not null;size:255"`
	Content   string    `gorm:"not null;type:text"`
	Date      time.Time `gorm:"not null;index"`
	Image     *string   `gorm:"size:500"`
	CreatedBy uint      `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (NewsModel) TableName() string {
	return constants.TableNews
}
