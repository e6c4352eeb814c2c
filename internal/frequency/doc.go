// Package frequency implements the frequency-domain filter pipeline shared
// by the smoothing (low-pass) and sharpening (high-pass) filters, plus the
// magnitude spectrum view.
//
// The pipeline reduces the source to its luma, takes a 2-D DFT, shifts the
// zero frequency to (rows/2, cols/2), multiplies by a radial transfer
// function H, unshifts, inverse transforms and keeps the real part. Row and
// column transforms use gonum's complex FFT and run in parallel; each worker
// owns its own FFT plan because plans carry scratch space.
package frequency
