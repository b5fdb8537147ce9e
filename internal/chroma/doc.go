// Package chroma strips a bright green chroma-key background from sprite
// images.
//
// Classification is pointwise: every pixel is tested on its own against a
// fixed bounding box in RGB space and either passes through untouched or is
// replaced by the transparent sentinel (255,255,255,0).
//
// # Background Predicate
//
// A pixel is background if and only if:
//
//	G > 200 && R < 100 && B < 100
//
// All three comparisons are strict. Alpha is not consulted.
//
// # Color Distance
//
// ColorDistance computes the Euclidean RGB distance between two pixels. It is
// kept next to the predicate for callers that want to inspect how far a pixel
// sits from the reference green, but the predicate does not use it. Switching
// to a distance threshold would change output bytes near the box edges.
//
// # Thread Safety
//
// All functions are pure. Strip never mutates its input and may be called
// concurrently on different images.
package chroma
