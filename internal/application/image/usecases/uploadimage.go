package usecases

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"clubcms/internal/domain/image"
	"clubcms/internal/infrastructure/storage"
	"clubcms/internal/infrastructure/thumbnail"
	"clubcms/internal/shared/errors"
	"clubcms/internal/shared/logger"
)

// sniffLen is how many leading bytes content detection needs.
const sniffLen = 3072

// defaultCategory is assigned when the upload names none, matching the
// column default so the row and the response agree.
const defaultCategory = "general"

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type UploadImageCommand struct {
	Reader           io.Reader
	OriginalName     string
	DeclaredMimeType string
	Size             int64
	AltText          string
	Category         string
	UploadedBy       uint
}

type UploadImageResult struct {
	Image        *image.Image
	URL          string
	ThumbnailURL string
}

// UploadImageUseCase runs the upload pipeline: validate, store the original,
// derive a thumbnail, then record metadata. Any later stage failing unwinds
// the earlier stages so no orphaned files or rows survive.
type UploadImageUseCase struct {
	imageRepo   image.Repository
	storage     Storage
	thumbnailer Thumbnailer
	maxFileSize int64
	logger      logger.Interface
}

func NewUploadImageUseCase(
	imageRepo image.Repository,
	storage Storage,
	thumbnailer Thumbnailer,
	maxFileSize int64,
	logger logger.Interface,
) *UploadImageUseCase {
	return &UploadImageUseCase{
		imageRepo:   imageRepo,
		storage:     storage,
		thumbnailer: thumbnailer,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

func (uc *UploadImageUseCase) Execute(ctx context.Context, cmd UploadImageCommand) (*UploadImageResult, error) {
	if cmd.Size > uc.maxFileSize {
		return nil, errors.NewTooLargeError(uc.maxFileSize)
	}

	ext := strings.ToLower(filepath.Ext(cmd.OriginalName))
	if !allowedExtensions[ext] {
		return nil, errors.NewUnsupportedTypeError(fmt.Sprintf("extension %q", ext))
	}

	declared := normalizeMimeType(cmd.DeclaredMimeType)
	if !allowedMimeTypes[declared] {
		return nil, errors.NewUnsupportedTypeError(fmt.Sprintf("declared type %q", cmd.DeclaredMimeType))
	}

	// The declared type is client-controlled; the leading bytes are not.
	// Both must agree the content is an allowed image format.
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(cmd.Reader, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]

	detected := mimetype.Detect(head)
	if !allowedMimeTypes[detected.String()] {
		return nil, errors.NewUnsupportedTypeError(fmt.Sprintf("content type %q", detected.String()))
	}

	filename := uc.storage.GenerateFilename(ext)

	originalPath, err := uc.storage.SaveOriginal(io.MultiReader(bytes.NewReader(head), cmd.Reader), filename)
	if err != nil {
		uc.logger.Errorw("failed to store uploaded image", "error", err, "filename", filename)
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	thumbName := thumbnail.ThumbnailName(storage.ThumbnailPrefix, filename)
	thumbPath, err := uc.storage.ThumbnailFilePath(thumbName)
	if err == nil {
		err = uc.thumbnailer.Derive(originalPath, thumbPath)
	}
	if err != nil {
		uc.logger.Errorw("failed to derive thumbnail", "error", err, "filename", filename)
		if rmErr := uc.storage.RemoveOriginal(filename); rmErr != nil {
			uc.logger.Warnw("failed to clean up original after thumbnail failure", "error", rmErr, "filename", filename)
		}
		return nil, fmt.Errorf("failed to process image: %w", err)
	}

	category := cmd.Category
	if category == "" {
		category = defaultCategory
	}

	thumbURL := uc.storage.PublicThumbnailPath(thumbName)
	img := &image.Image{
		Filename:      filename,
		OriginalName:  cmd.OriginalName,
		MimeType:      detected.String(),
		Size:          cmd.Size,
		Path:          uc.storage.PublicPath(filename),
		ThumbnailPath: &thumbURL,
		AltText:       cmd.AltText,
		Category:      category,
		UploadedBy:    cmd.UploadedBy,
	}

	if err := uc.imageRepo.Create(ctx, img); err != nil {
		uc.logger.Errorw("failed to record uploaded image", "error", err, "filename", filename)
		if rmErr := uc.storage.RemoveOriginal(filename); rmErr != nil {
			uc.logger.Warnw("failed to clean up original after insert failure", "error", rmErr, "filename", filename)
		}
		if rmErr := uc.storage.RemoveThumbnail(thumbName); rmErr != nil {
			uc.logger.Warnw("failed to clean up thumbnail after insert failure", "error", rmErr, "filename", thumbName)
		}
		return nil, fmt.Errorf("failed to record image: %w", err)
	}

	uc.logger.Infow("image uploaded", "image_id", img.ID, "filename", filename, "size", cmd.Size, "user_id", cmd.UploadedBy)

	return &UploadImageResult{
		Image:        img,
		URL:          img.Path,
		ThumbnailURL: thumbURL,
	}, nil
}

// normalizeMimeType strips parameters like "; charset=..." and lowercases.
func normalizeMimeType(mt string) string {
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}
	return strings.ToLower(strings.TrimSpace(mt))
}
