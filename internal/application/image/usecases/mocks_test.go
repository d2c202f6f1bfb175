package usecases

import (
	"bytes"
	"context"
	"image/png"
	"io"
	"testing"

	stdimage "image"

	"github.com/stretchr/testify/require"

	"clubcms/internal/domain/image"
	"clubcms/internal/shared/errors"
	"clubcms/internal/shared/logger"
)

type fakeStorage struct {
	nextName string
	saveErr  error

	saved            map[string][]byte
	removedOriginals []string
	removedThumbs    []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{nextName: "generated.png", saved: map[string][]byte{}}
}

func (f *fakeStorage) GenerateFilename(ext string) string { return f.nextName }

func (f *fakeStorage) SaveOriginal(r io.Reader, filename string) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.saved[filename] = data
	return "/fake/" + filename, nil
}

func (f *fakeStorage) ThumbnailFilePath(filename string) (string, error) {
	return "/fake/thumbnails/" + filename, nil
}

func (f *fakeStorage) RemoveOriginal(filename string) error {
	delete(f.saved, filename)
	f.removedOriginals = append(f.removedOriginals, filename)
	return nil
}

func (f *fakeStorage) RemoveThumbnail(filename string) error {
	f.removedThumbs = append(f.removedThumbs, filename)
	return nil
}

func (f *fakeStorage) PublicPath(filename string) string { return "/uploads/" + filename }

func (f *fakeStorage) PublicThumbnailPath(filename string) string {
	return "/uploads/thumbnails/" + filename
}

type fakeThumbnailer struct {
	err     error
	derived [][2]string
}

func (f *fakeThumbnailer) Derive(srcPath, dstPath string) error {
	if f.err != nil {
		return f.err
	}
	f.derived = append(f.derived, [2]string{srcPath, dstPath})
	return nil
}

type mockImageRepo struct {
	images    map[uint]*image.Image
	nextID    uint
	createErr error
	err       error

	updatedID uint
	deletedID uint
}

func newMockImageRepo() *mockImageRepo {
	return &mockImageRepo{images: map[uint]*image.Image{}, nextID: 1}
}

func (m *mockImageRepo) Create(ctx context.Context, img *image.Image) error {
	if m.createErr != nil {
		return m.createErr
	}
	img.ID = m.nextID
	m.nextID++
	m.images[img.ID] = img
	return nil
}

func (m *mockImageRepo) GetByID(ctx context.Context, id uint) (*image.Image, error) {
	if m.err != nil {
		return nil, m.err
	}
	img, ok := m.images[id]
	if !ok {
		return nil, errors.NewNotFoundError("image not found")
	}
	return img, nil
}

func (m *mockImageRepo) List(ctx context.Context, filter image.ListFilter) ([]*image.Image, int64, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	var out []*image.Image
	for _, img := range m.images {
		out = append(out, img)
	}
	return out, int64(len(m.images)), nil
}

func (m *mockImageRepo) UpdateMetadata(ctx context.Context, id uint, altText, category string) error {
	if m.err != nil {
		return m.err
	}
	m.updatedID = id
	if img, ok := m.images[id]; ok {
		img.AltText = altText
		img.Category = category
	}
	return nil
}

func (m *mockImageRepo) Delete(ctx context.Context, id uint) error {
	if m.err != nil {
		return m.err
	}
	m.deletedID = id
	delete(m.images, id)
	return nil
}

// pngBytes returns a minimal valid PNG, so content sniffing sees a real image.
func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, stdimage.NewRGBA(stdimage.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func pngUploadCommand(t *testing.T, data []byte) UploadImageCommand {
	t.Helper()
	return UploadImageCommand{
		Reader:           bytes.NewReader(data),
		OriginalName:     "photo.png",
		DeclaredMimeType: "image/png",
		Size:             int64(len(data)),
		AltText:          "a photo",
		Category:         "general",
		UploadedBy:       1,
	}
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
