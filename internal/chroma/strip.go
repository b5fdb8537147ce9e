package chroma

import (
	"image"
	"sync/atomic"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"
)

// Strip returns a copy of img with every background pixel replaced by
// Transparent.
//
// The result is always an *image.NRGBA anchored at (0,0) with the same width
// and height as img. Pixels are converted to 8-bit non-premultiplied RGBA
// first, so foreground pixels keep their original color and alpha exactly.
// Pixel order is preserved: (x, y) in the input maps to (x, y) relative to
// the input's bounds in the output.
//
// Rows are classified in parallel. Each worker writes a disjoint range of
// rows, so no synchronization is needed.
func Strip(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	width := dst.Bounds().Dx()
	height := dst.Bounds().Dy()

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			row := dst.Pix[y*dst.Stride : y*dst.Stride+width*4]
			for i := 0; i < len(row); i += 4 {
				p := Pixel{R: row[i], G: row[i+1], B: row[i+2], A: row[i+3]}
				if !IsBackground(p) {
					continue
				}
				row[i+0] = Transparent.R
				row[i+1] = Transparent.G
				row[i+2] = Transparent.B
				row[i+3] = Transparent.A
			}
		}
	})

	return dst
}

// CountBackground returns the number of pixels in img that Strip would
// replace.
func CountBackground(img image.Image) int {
	src := imaging.Clone(img)
	width := src.Bounds().Dx()
	height := src.Bounds().Dy()

	var total int64
	parallel.Line(height, func(start, end int) {
		var n int64
		for y := start; y < end; y++ {
			row := src.Pix[y*src.Stride : y*src.Stride+width*4]
			for i := 0; i < len(row); i += 4 {
				if IsBackground(Pixel{R: row[i], G: row[i+1], B: row[i+2], A: row[i+3]}) {
					n++
				}
			}
		}
		atomic.AddInt64(&total, n)
	})

	return int(total)
}
