// Package imaging reads and writes the PNG files that the chroma-key batch
// operates on.
//
// Decoded images are normalized to *image.NRGBA: 8 bits per channel,
// non-premultiplied, anchored at (0,0). Sources without an alpha channel
// (RGB, grayscale, paletted PNGs) get a fully opaque alpha. 16-bit sources
// are reduced to 8 bits per channel.
//
// # Error Handling
//
// Failures are wrapped around one of two sentinel errors so callers can
// classify them with errors.Is:
//   - ErrDecode: the input could not be opened, is corrupt, or is not a PNG
//   - ErrEncode: the output could not be encoded or written
//
// The underlying cause stays in the chain, so errors.Is(err, fs.ErrNotExist)
// and errors.Is(err, fs.ErrPermission) also work.
//
// # Atomic Writes
//
// Save encodes into a temporary file next to the destination and renames it
// into place. A failed save never leaves a partial output file behind.
package imaging
