// Package imagemath converts between discrete pixel coordinates on one axis
// of an image and angular offsets from the camera's optical axis.
//
// Two independent families are provided: a rectilinear (pinhole) model driven
// by the camera's field of view, and a linear model driven by a precomputed
// angular-resolution constant (tangent change per pixel). All conversions are
// pure functions over value types; they hold no state and are safe to call
// from any goroutine.
//
// Degenerate inputs (zero-width extent, field of view outside (0, π), zero
// resolution constant, or a computed pixel position that would be negative)
// are rejected with a typed error instead of propagating non-finite values or
// wrapping around on unsigned conversion.
package imagemath

// ImageSize is the pixel extent of an image frame.
type ImageSize struct {
	Width  uint64
	Height uint64
}

// HalfWidth returns half the frame width as a real value (not truncated).
func (s ImageSize) HalfWidth() float64 {
	return float64(s.Width) / 2.0
}

// HalfHeight returns half the frame height as a real value (not truncated).
func (s ImageSize) HalfHeight() float64 {
	return float64(s.Height) / 2.0
}

// PixelIndex is a discrete position along one axis of an image.
type PixelIndex struct {
	Value uint64
}

// Normalized maps the pixel into [-1, 1]: pixel 0 maps to -1, the center
// pixel to 0, and pixel = width to +1. Positions outside [0, width]
// extrapolate linearly without clamping.
func (p PixelIndex) Normalized(size ImageSize) float64 {
	return float64(p.Value)/size.HalfWidth() - 1.0
}
