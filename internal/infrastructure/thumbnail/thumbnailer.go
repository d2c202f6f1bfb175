// Package thumbnail derives bounded-dimension previews from uploaded images.
package thumbnail

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	// webp originals are decodable but not encodable; their thumbnails are
	// written as png (see ThumbnailName).
	_ "golang.org/x/image/webp"
)

type Thumbnailer struct {
	maxWidth  int
	maxHeight int
}

func New(maxWidth, maxHeight int) *Thumbnailer {
	return &Thumbnailer{maxWidth: maxWidth, maxHeight: maxHeight}
}

// ThumbnailName derives the linked thumbnail filename for an original.
// The webp extension is swapped for png because no webp encoder is available.
func ThumbnailName(prefix, originalFilename string) string {
	name := prefix + originalFilename
	if strings.EqualFold(filepath.Ext(name), ".webp") {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".png"
	}
	return name
}

// Derive reads the original at srcPath, resizes it to fit within the bounding
// box preserving aspect ratio (never upscaling past the original dimensions),
// and writes the result to dstPath. The output format follows dstPath's
// extension.
func (t *Thumbnailer) Derive(srcPath, dstPath string) error {
	img, err := imaging.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	// Fit scales down only; images already inside the box pass through
	thumb := imaging.Fit(img, t.maxWidth, t.maxHeight, imaging.Lanczos)

	if err := imaging.Save(thumb, dstPath); err != nil {
		return fmt.Errorf("failed to write thumbnail: %w", err)
	}
	return nil
}
