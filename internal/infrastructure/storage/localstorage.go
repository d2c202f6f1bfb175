// Package storage persists uploaded originals and derived thumbnails under a
// public static-file root, so stored paths are directly browser-fetchable.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const thumbnailDirName = "thumbnails"

// ThumbnailPrefix is prepended to the original's filename to derive the
// linked thumbnail filename.
const ThumbnailPrefix = "thumb_"

// LocalStorage writes files beneath a single upload root with a thumbnails
// subdirectory, mirroring the public URL layout /uploads and
// /uploads/thumbnails.
type LocalStorage struct {
	root      string
	thumbRoot string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve upload directory: %w", err)
	}
	thumbRoot := filepath.Join(root, thumbnailDirName)

	if err := os.MkdirAll(thumbRoot, 0750); err != nil {
		return nil, fmt.Errorf("failed to create upload directories: %w", err)
	}

	return &LocalStorage{root: root, thumbRoot: thumbRoot}, nil
}

// GenerateFilename produces a collision-resistant filename carrying the given
// extension. The untrusted original name contributes nothing to it.
func (s *LocalStorage) GenerateFilename(ext string) string {
	return uuid.NewString() + strings.ToLower(ext)
}

// SaveOriginal streams the original bytes to durable storage under filename.
// Returns the absolute path of the written file.
func (s *LocalStorage) SaveOriginal(r io.Reader, filename string) (string, error) {
	dst, err := s.resolve(s.root, filename)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0640)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	return dst, nil
}

// OriginalPath returns the absolute on-disk path for an original filename.
func (s *LocalStorage) OriginalPath(filename string) (string, error) {
	return s.resolve(s.root, filename)
}

// ThumbnailFilePath returns the absolute on-disk path for a thumbnail filename.
func (s *LocalStorage) ThumbnailFilePath(filename string) (string, error) {
	return s.resolve(s.thumbRoot, filename)
}

// RemoveOriginal deletes an original file. A file that is already gone is
// treated as success.
func (s *LocalStorage) RemoveOriginal(filename string) error {
	return s.remove(s.root, filename)
}

// RemoveThumbnail deletes a thumbnail file. A file that is already gone is
// treated as success.
func (s *LocalStorage) RemoveThumbnail(filename string) error {
	return s.remove(s.thumbRoot, filename)
}

// PublicPath returns the browser-facing URL path for an original.
func (s *LocalStorage) PublicPath(filename string) string {
	return "/uploads/" + filename
}

// PublicThumbnailPath returns the browser-facing URL path for a thumbnail.
func (s *LocalStorage) PublicThumbnailPath(filename string) string {
	return "/uploads/" + thumbnailDirName + "/" + filename
}

// Root returns the absolute upload root, for static-file serving.
func (s *LocalStorage) Root() string {
	return s.root
}

func (s *LocalStorage) remove(base, filename string) error {
	path, err := s.resolve(base, filename)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

// resolve joins filename onto base and rejects anything that escapes it.
func (s *LocalStorage) resolve(base, filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) {
		return "", fmt.Errorf("invalid filename: %q", filename)
	}
	path := filepath.Join(base, filename)
	if !strings.HasPrefix(path, base+string(filepath.Separator)) {
		return "", fmt.Errorf("path escapes upload directory: %q", filename)
	}
	return path, nil
}
