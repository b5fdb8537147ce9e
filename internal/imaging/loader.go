package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // Register PNG format decoder
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/segmentio/ksuid"
)

var (
	// ErrDecode marks failures to read or parse an input image.
	ErrDecode = errors.New("decode error")

	// ErrEncode marks failures to encode or write an output image.
	ErrEncode = errors.New("encode error")
)

// Open decodes the PNG file at path into an 8-bit non-premultiplied RGBA
// grid.
//
// Parameters:
//   - path: Absolute or relative file path to the image.
//
// Returns:
//   - *image.NRGBA: The decoded pixels, anchored at (0,0).
//   - error: Non-nil if the file cannot be opened, is not valid image data,
//     or decodes as a format other than PNG. Always wraps ErrDecode.
func Open(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open image: %w", ErrDecode, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %w", ErrDecode, path, err)
	}
	if format != "png" {
		return nil, fmt.Errorf("%w: %s is %s, not png", ErrDecode, path, format)
	}

	return imaging.Clone(img), nil
}

// Save encodes img as PNG and writes it to path.
//
// The data is first written to a hidden temporary file in the same directory
// and then renamed over path, so readers never observe a truncated file and
// a failure leaves no output behind. An existing file at path is replaced.
//
// Returns a non-nil error wrapping ErrEncode if the temporary file cannot be
// created, encoding fails, or the rename fails.
func Save(img image.Image, path string) error {
	dir, name := filepath.Split(path)
	tmp := filepath.Join(dir, "."+name+"."+ksuid.New().String()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("%w: failed to create %s: %w", ErrEncode, path, err)
	}

	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: failed to encode %s: %w", ErrEncode, path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: failed to write %s: %w", ErrEncode, path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: failed to replace %s: %w", ErrEncode, path, err)
	}

	return nil
}

// ImageInfo summarizes a decoded image for logging.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// HasAlpha is true if any pixel is not fully opaque.
	HasAlpha bool `json:"has_alpha"`
}

// Info returns the dimensions of img and whether it carries transparency.
func Info(img *image.NRGBA) ImageInfo {
	bounds := img.Bounds()
	return ImageInfo{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		HasAlpha: !img.Opaque(),
	}
}
