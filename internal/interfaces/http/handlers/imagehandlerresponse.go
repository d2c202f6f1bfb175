package handlers

import (
	"time"

	"clubcms/internal/domain/image"
)

type imageResponse struct {
	ID           uint      `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	AltText      string    `json:"alt_text"`
	Category     string    `json:"category"`
	UploadedBy   uint      `json:"uploaded_by"`
	CreatedAt    time.Time `json:"created_at"`
}

func toImageResponse(img *image.Image) imageResponse {
	return imageResponse{
		ID:           img.ID,
		Filename:     img.Filename,
		OriginalName: img.OriginalName,
		MimeType:     img.MimeType,
		Size:         img.Size,
		URL:          img.Path,
		ThumbnailURL: img.ThumbnailPath,
		AltText:      img.AltText,
		Category:     img.Category,
		UploadedBy:   img.UploadedBy,
		CreatedAt:    img.CreatedAt,
	}
}

func toImageResponses(images []*image.Image) []imageResponse {
	out := make([]imageResponse, 0, len(images))
	for _, img := range images {
		out = append(out, toImageResponse(img))
	}
	return out
}
