package usecases

import "io"

// Storage abstracts the file store so the upload pipeline can be tested
// without touching a real directory tree.
type Storage interface {
	GenerateFilename(ext string) string
	SaveOriginal(r io.Reader, filename string) (string, error)
	ThumbnailFilePath(filename string) (string, error)
	RemoveOriginal(filename string) error
	RemoveThumbnail(filename string) error
	PublicPath(filename string) string
	PublicThumbnailPath(filename string) string
}

// Thumbnailer derives a bounded preview from a stored original.
type Thumbnailer interface {
	Derive(srcPath, dstPath string) error
}
