package raster

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// Info contains metadata about an image file and its decoded raster.
type Info struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Channels is 1 for grayscale sources and 3 for everything else.
	Channels int `json:"channels"`

	// Format is derived from the extension: "png", "jpeg", "gif", "tiff",
	// "bmp", "webp" or "unknown".
	Format string `json:"format"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Load decodes the image at path.
//
// EXIF orientation is applied so the raster matches what viewers display.
// Any failure to open or decode the file wraps ErrIO.
func Load(path string) (*Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load image %s: %v", ErrIO, path, err)
	}
	return FromImage(img), nil
}

// Save encodes im to path, choosing the encoder from the file extension.
//
// Supported extensions are .png, .jpg/.jpeg, .gif, .tif/.tiff and .bmp.
// An unsupported extension or a write failure wraps ErrIO.
func Save(im *Image, path string) error {
	if im == nil {
		return fmt.Errorf("%w: nothing to save", ErrIO)
	}
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("%w: unsupported output format %q", ErrIO, filepath.Ext(path))
	}
	if err := imaging.Save(im.ToImage(), path); err != nil {
		return fmt.Errorf("%w: failed to save image %s: %v", ErrIO, path, err)
	}
	return nil
}

// Describe returns metadata for a raster that was loaded from path.
func Describe(im *Image, path string) (*Info, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to stat file: %v", ErrIO, err)
	}
	return &Info{
		Width:         im.Width,
		Height:        im.Height,
		Channels:      im.Channels,
		Format:        FormatName(path),
		FileSizeBytes: stat.Size(),
	}, nil
}

// FormatName maps a file extension to a format name.
func FormatName(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".tif", ".tiff":
		return "tiff"
	case ".bmp":
		return "bmp"
	case ".webp":
		return "webp"
	}
	return "unknown"
}
