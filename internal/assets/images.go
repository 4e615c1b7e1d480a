// Package assets handles the non-page files the build cares about:
// images whose dimensions templates can query, and versioned files
// following the <stem>.<N>.<ext> naming convention.
package assets

import (
	"image"
	"os"

	// Header decoders for dimension probing.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	serrors "github.com/JonHurst/ssg/internal/errors"
)

// Dimensions holds the pixel size of an image.
type Dimensions struct {
	Width  int
	Height int
}

// ProbeFunc reports an image's dimensions. Injectable for tests.
type ProbeFunc func(path string) (Dimensions, error)

var imageExts = map[string]struct{}{
	".jpeg": {},
	".jpg":  {},
	".webp": {},
	".png":  {},
	".gif":  {},
}

// IsImageExt reports whether ext names a probeable image format.
func IsImageExt(ext string) bool {
	_, ok := imageExts[ext]
	return ok
}

// Probe reads just enough of the file to determine its dimensions.
// A file that cannot be decoded yields zero dimensions rather than an
// error; only an unreadable file fails the build.
func Probe(path string) (Dimensions, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the content tree walk.
	if err != nil {
		return Dimensions{}, serrors.IO(path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return Dimensions{}, nil
	}
	return Dimensions{Width: cfg.Width, Height: cfg.Height}, nil
}
