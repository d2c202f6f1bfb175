package models

import (
	"time"

	"clubcms/internal/shared/constants"
)

// CalendarEventModel represents the database persistence model for calendar events.
type CalendarEventModel struct {
	ID          uint      `gorm:"primarykey"`
	Title       string    `gorm:"not null;size:255"`
	Description string    `gorm:"not null;type:text"`
	Date        time.Time `gorm:"not null;index"`
	CreatedBy   uint      `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (CalendarEventModel) TableName() string {
	return constants.TableCalendarEvents
}
