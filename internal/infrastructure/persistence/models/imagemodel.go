package models

import (
	"time"

	"clubcms/internal/shared/constants"
)

// ImageModel represents the metadata row for an uploaded image. The row is
// the authoritative existence record; the upload pipeline keeps it consistent
// with the original and thumbnail files on disk.
type ImageModel struct {
	ID            uint   `gorm:"primarykey"`
	Filename      string `gorm:"not null;size:255"`
	OriginalName  string `gorm:"not null;size:255"`
	MimeType      string `gorm:"not null;size:100"`
	Size          int64  `gorm:"not null"`
	Path          string `gorm:"not null;size:500"`
	ThumbnailPath *string `gorm:"size:500"`
	AltText       string `gorm:"size:500"`
	Category      string `gorm:"not null;default:general;size:100;index"`
	UploadedBy    uint   `gorm:"index"`
	CreatedAt     time.Time
}

// TableName specifies the table name for GORM
func (ImageModel) TableName() string {
	return constants.TableImages
}
