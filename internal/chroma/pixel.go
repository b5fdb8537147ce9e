package chroma

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Pixel is an 8-bit, non-premultiplied RGBA value.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type Pixel struct {
	R uint8 // Red component (0-255)
	G uint8 // Green component (0-255)
	B uint8 // Blue component (0-255)
	A uint8 // Alpha/opacity component (0-255)
}

// Thresholds of the background box. The comparisons are exclusive.
const (
	MinGreen = 200
	MaxRed   = 100
	MaxBlue  = 100
)

var (
	// Transparent replaces every background pixel. The RGB channels are
	// invisible but fixed so output is byte-for-byte reproducible.
	Transparent = Pixel{R: 255, G: 255, B: 255, A: 0}

	// ReferenceGreen is the pure key color.
	ReferenceGreen = Pixel{R: 0, G: 255, B: 0, A: 255}
)

// IsBackground reports whether p falls inside the bright-green key box.
func IsBackground(p Pixel) bool {
	return p.G > MinGreen && p.R < MaxRed && p.B < MaxBlue
}

// StripPixel returns Transparent for background pixels and p otherwise.
func StripPixel(p Pixel) Pixel {
	if IsBackground(p) {
		return Transparent
	}
	return p
}

// ColorDistance returns the Euclidean distance between the RGB triples of a
// and b, in 8-bit channel units (0 to ~441.67). Alpha is ignored.
func ColorDistance(a, b Pixel) float64 {
	return toColorful(a).DistanceRgb(toColorful(b)) * 255
}

func toColorful(p Pixel) colorful.Color {
	return colorful.Color{
		R: float64(p.R) / 255.0,
		G: float64(p.G) / 255.0,
		B: float64(p.B) / 255.0,
	}
}
