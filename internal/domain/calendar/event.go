// Package calendar holds the calendar event entity and repository contract.
package calendar

import (
	"context"
	"time"
)

// Event is a dated entry in the club calendar.
type Event struct {
	ID          uint
	Title       string
	Description string
	Date        time.Time
	CreatedBy   uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Repository is the persistence contract for calendar events.
type Repository interface {
	Create(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, id uint) (*Event, error)
	// List returns all events ordered by date ascending.
	List(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, e *Event) error
	Delete(ctx context.Context, id uint) error
}
