// Package raster provides the image buffer model used by every transform.
//
// An Image is a plain 8-bit raster with either one (grayscale) or three
// (RGB) interleaved channels. Transforms treat Images as values: they read
// their input and allocate a new output, they never write through the
// input's Pix slice.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - Regions use an inclusive top-left (x1,y1) and exclusive bottom-right (x2,y2)
//
// # Codecs
//
// Decoding and encoding are delegated to github.com/disintegration/imaging.
// Load accepts PNG, JPEG, GIF, TIFF, BMP and WebP. Save picks the encoder from
// the file extension.
//
// # Error Handling
//
// All errors produced by the engine wrap one of three sentinels so callers
// can classify them with errors.Is:
//   - ErrIO: unreadable, unwritable or unsupported file
//   - ErrRange: parameter or coordinate outside its documented bounds
//   - ErrState: operation invoked with no image loaded
package raster
