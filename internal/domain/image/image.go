// Package image holds the uploaded image asset entity and repository contract.
package image

import (
	"context"
	"time"
)

// Image is the metadata row for one uploaded asset. Every row implies the
// original file exists on disk; a non-nil ThumbnailPath implies the thumbnail
// exists too. The upload pipeline maintains this invariant across partial
// failures.
type Image struct {
	ID            uint
	Filename      string
	OriginalName  string
	MimeType      string
	Size          int64
	Path          string
	ThumbnailPath *string
	AltText       string
	Category      string
	UploadedBy    uint
	CreatedAt     time.Time
}

// ListFilter selects and pages image listings.
type ListFilter struct {
	Category string
	Limit    int
	Offset   int
}

// Repository is the persistence contract for image metadata.
type Repository interface {
	Create(ctx context.Context, img *Image) error
	GetByID(ctx context.Context, id uint) (*Image, error)
	// List returns images ordered by creation time descending, plus the
	// total count matching the filter.
	List(ctx context.Context, filter ListFilter) ([]*Image, int64, error)
	UpdateMetadata(ctx context.Context, id uint, altText, category string) error
	Delete(ctx context.Context, id uint) error
}
