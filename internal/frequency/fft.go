package frequency

import (
	"github.com/anthonynsimon/bild/parallel"
	"gonum.org/v1/gonum/dsp/fourier"
)

// FFT2 returns the unshifted 2-D DFT of a row-major real field.
func FFT2(field []float64, rows, cols int) []complex128 {
	data := make([]complex128, len(field))
	for i, v := range field {
		data[i] = complex(v, 0)
	}
	transform2(data, rows, cols, false)
	return data
}

// IFFT2 inverts FFT2 in place and returns data, normalized by rows*cols.
func IFFT2(data []complex128, rows, cols int) []complex128 {
	transform2(data, rows, cols, true)
	n := complex(float64(rows*cols), 0)
	for i := range data {
		data[i] /= n
	}
	return data
}

func transform2(data []complex128, rows, cols int, inverse bool) {
	parallel.Line(rows, func(start, end int) {
		fft := fourier.NewCmplxFFT(cols)
		for r := start; r < end; r++ {
			row := data[r*cols : (r+1)*cols]
			if inverse {
				fft.Sequence(row, row)
			} else {
				fft.Coefficients(row, row)
			}
		}
	})

	parallel.Line(cols, func(start, end int) {
		fft := fourier.NewCmplxFFT(rows)
		col := make([]complex128, rows)
		for c := start; c < end; c++ {
			for r := 0; r < rows; r++ {
				col[r] = data[r*cols+c]
			}
			if inverse {
				fft.Sequence(col, col)
			} else {
				fft.Coefficients(col, col)
			}
			for r := 0; r < rows; r++ {
				data[r*cols+c] = col[r]
			}
		}
	})
}

// Shift moves the zero-frequency term from (0, 0) to (rows/2, cols/2).
func Shift(data []complex128, rows, cols int) []complex128 {
	out := make([]complex128, len(data))
	for r := 0; r < rows; r++ {
		sr := (r + rows/2) % rows
		for c := 0; c < cols; c++ {
			sc := (c + cols/2) % cols
			out[sr*cols+sc] = data[r*cols+c]
		}
	}
	return out
}

// Unshift is the inverse of Shift.
func Unshift(data []complex128, rows, cols int) []complex128 {
	out := make([]complex128, len(data))
	for r := 0; r < rows; r++ {
		sr := (r + rows/2) % rows
		for c := 0; c < cols; c++ {
			sc := (c + cols/2) % cols
			out[r*cols+c] = data[sr*cols+sc]
		}
	}
	return out
}
