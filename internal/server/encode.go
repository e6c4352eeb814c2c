package server

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-workbench-mcp/internal/raster"
	"github.com/ironsheep/image-workbench-mcp/internal/session"
)

// ImageResult carries a raster back to the client as a base64 PNG.
type ImageResult struct {
	// Slot is the session raster this image was taken from.
	Slot string `json:"slot"`

	// Width and Height are the dimensions of the encoded image, after zoom.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Channels is 1 for grayscale results and 3 for color.
	Channels int `json:"channels"`

	Zoom float64 `json:"zoom"`

	// ImageBase64 is the PNG encoding of the image.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`
}

func newImageResult(im *raster.Image, slot session.Slot, zoom float64) (*ImageResult, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, im.ToImage(), imaging.PNG); err != nil {
		return nil, fmt.Errorf("%w: failed to encode PNG: %v", raster.ErrIO, err)
	}
	return &ImageResult{
		Slot:        string(slot),
		Width:       im.Width,
		Height:      im.Height,
		Channels:    im.Channels,
		Zoom:        zoom,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
