package usecases

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubcms/internal/shared/errors"
)

func newUploadUseCase(repo *mockImageRepo, store *fakeStorage, thumb *fakeThumbnailer) *UploadImageUseCase {
	return NewUploadImageUseCase(repo, store, thumb, 10<<20, noopLogger{})
}

func TestUploadImageUseCase_Success(t *testing.T) {
	repo := newMockImageRepo()
	store := newFakeStorage()
	thumb := &fakeThumbnailer{}
	uc := newUploadUseCase(repo, store, thumb)

	data := pngBytes(t)
	result, err := uc.Execute(context.Background(), pngUploadCommand(t, data))
	require.NoError(t, err)

	// original stored in full despite the sniffing read
	assert.Equal(t, data, store.saved["generated.png"])

	require.Len(t, thumb.derived, 1)
	assert.Equal(t, "/fake/generated.png", thumb.derived[0][0])
	assert.Equal(t, "/fake/thumbnails/thumb_generated.png", thumb.derived[0][1])

	img := result.Image
	assert.NotZero(t, img.ID)
	assert.Equal(t, "generated.png", img.Filename)
	assert.Equal(t, "photo.png", img.OriginalName)
	assert.Equal(t, "image/png", img.MimeType)
	assert.Equal(t, "/uploads/generated.png", img.Path)
	require.NotNil(t, img.ThumbnailPath)
	assert.Equal(t, "/uploads/thumbnails/thumb_generated.png", *img.ThumbnailPath)
	assert.Equal(t, uint(1), img.UploadedBy)
}

func TestUploadImageUseCase_TooLarge(t *testing.T) {
	uc := NewUploadImageUseCase(newMockImageRepo(), newFakeStorage(), &fakeThumbnailer{}, 16, noopLogger{})

	cmd := pngUploadCommand(t, pngBytes(t))
	_, err := uc.Execute(context.Background(), cmd)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeTooLarge, appErr.Type)
}

func TestUploadImageUseCase_BadExtension(t *testing.T) {
	store := newFakeStorage()
	uc := newUploadUseCase(newMockImageRepo(), store, &fakeThumbnailer{})

	cmd := pngUploadCommand(t, pngBytes(t))
	cmd.OriginalName = "script.exe"
	_, err := uc.Execute(context.Background(), cmd)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnsupportedType, appErr.Type)
	assert.Empty(t, store.saved, "nothing written for a rejected upload")
}

func TestUploadImageUseCase_BadDeclaredType(t *testing.T) {
	uc := newUploadUseCase(newMockImageRepo(), newFakeStorage(), &fakeThumbnailer{})

	cmd := pngUploadCommand(t, pngBytes(t))
	cmd.DeclaredMimeType = "application/octet-stream"
	_, err := uc.Execute(context.Background(), cmd)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnsupportedType, appErr.Type)
}

func TestUploadImageUseCase_ContentMismatch(t *testing.T) {
	store := newFakeStorage()
	uc := newUploadUseCase(newMockImageRepo(), store, &fakeThumbnailer{})

	// png name and declared type, but the bytes are not an image
	cmd := pngUploadCommand(t, pngBytes(t))
	cmd.Reader = bytes.NewReader([]byte("#!/bin/sh\nrm -rf /\n"))
	_, err := uc.Execute(context.Background(), cmd)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnsupportedType, appErr.Type)
	assert.Empty(t, store.saved)
}

func TestUploadImageUseCase_ThumbnailFailureRemovesOriginal(t *testing.T) {
	repo := newMockImageRepo()
	store := newFakeStorage()
	thumb := &fakeThumbnailer{err: fmt.Errorf("decode failed")}
	uc := newUploadUseCase(repo, store, thumb)

	_, err := uc.Execute(context.Background(), pngUploadCommand(t, pngBytes(t)))
	require.Error(t, err)

	assert.Contains(t, store.removedOriginals, "generated.png")
	assert.Empty(t, store.saved, "no orphaned original")
	assert.Empty(t, repo.images, "no row recorded")
}

func TestUploadImageUseCase_InsertFailureRemovesBothFiles(t *testing.T) {
	repo := newMockImageRepo()
	repo.createErr = fmt.Errorf("db down")
	store := newFakeStorage()
	uc := newUploadUseCase(repo, store, &fakeThumbnailer{})

	_, err := uc.Execute(context.Background(), pngUploadCommand(t, pngBytes(t)))
	require.Error(t, err)

	assert.Contains(t, store.removedOriginals, "generated.png")
	assert.Contains(t, store.removedThumbs, "thumb_generated.png")
	assert.Empty(t, store.saved)
}

func TestUploadImageUseCase_WebpThumbnailIsPNG(t *testing.T) {
	repo := newMockImageRepo()
	store := newFakeStorage()
	store.nextName = "generated.webp"
	thumb := &fakeThumbnailer{}
	uc := newUploadUseCase(repo, store, thumb)

	// real png bytes would fail a webp byte-signature test, so hand-roll the
	// RIFF....WEBP header that identifies the container
	webpHeader := append([]byte("RIFF"), 0x24, 0x00, 0x00, 0x00)
	webpHeader = append(webpHeader, []byte("WEBPVP8 ")...)
	webpHeader = append(webpHeader, make([]byte, 64)...)

	cmd := UploadImageCommand{
		Reader:           bytes.NewReader(webpHeader),
		OriginalName:     "photo.webp",
		DeclaredMimeType: "image/webp",
		Size:             int64(len(webpHeader)),
		UploadedBy:       1,
	}

	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	require.NotNil(t, result.Image.ThumbnailPath)
	assert.Equal(t, "/uploads/thumbnails/thumb_generated.png", *result.Image.ThumbnailPath)
}

func TestUploadImageUseCase_EmptyCategoryDefaults(t *testing.T) {
	repo := newMockImageRepo()
	uc := newUploadUseCase(repo, newFakeStorage(), &fakeThumbnailer{})

	cmd := pngUploadCommand(t, pngBytes(t))
	cmd.Category = ""
	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	// the row gets "general" from the column default; the returned entity
	// must say the same
	assert.Equal(t, "general", result.Image.Category)
	assert.Equal(t, "general", repo.images[result.Image.ID].Category)
}
