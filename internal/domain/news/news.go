// Package news holds the news post entity and repository contract.
package news

import (
	"context"
	"time"
)

// News is a dated post on the club website.
type News struct {
	ID        uint
	Title     string
	Content   string
	Date      time.Time
	Image     *string
	CreatedBy uint
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository is the persistence contract for news posts.
type Repository interface {
	Create(ctx context.Context, n *News) error
	GetByID(ctx context.Context, id uint) (*News, error)
	// List returns all posts ordered by date descending.
	List(ctx context.Context) ([]*News, error)
	Update(ctx context.Context, n *News) error
	Delete(ctx context.Context, id uint) error
}
