// Package spatial provides convolution-based smoothing, sharpening and edge
// detection.
//
// # Boundary Policy
//
// Every neighborhood operation uses replicate padding: a coordinate outside
// the image reads the nearest edge pixel. Kernels are applied as
// correlation (not flipped) and are anchored at (width/2, height/2), which
// for the 2x2 Roberts kernels is the bottom-right tap.
//
// # Normalization
//
// Gradient and second-derivative detectors divide their magnitude by the
// largest magnitude observed in the same call and scale to [0, 255]. Two
// images with identical structure but different contrast therefore produce
// the same output. A magnitude field that is zero everywhere yields an
// all-black image. Canny is the exception: it emits a binary map.
//
// All accumulation happens in float64 and is quantized once at the end.
// Rows are processed in parallel with bild's parallel.Line.
package spatial
