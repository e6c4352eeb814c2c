// Package transform implements the stateless raster transforms of the
// workbench: arithmetic and boolean point operations, geometric operations,
// tonal enhancement and additive noise.
//
// Every function takes a source *raster.Image and returns a newly allocated
// result. Sources are never modified, so the same original can be fed to
// repeated previews without copying it first.
//
// # Sample Arithmetic
//
// Point operations accumulate in float64 and quantize once at the end with
// raster.Quantize (round to nearest, clamp to [0, 255]). Multi-channel images
// are processed sample by sample unless a function documents that it works on
// the luma reduction.
//
// # Errors
//
// Parameters outside their documented range produce an error wrapping
// raster.ErrRange. No function retries or falls back silently.
package transform
