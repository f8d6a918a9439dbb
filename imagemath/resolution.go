package imagemath

import (
	"fmt"
	"math"

	"github.com/PavelGuzenfeld/image-to-body-math/angle"
)

// The linear family below replaces the trigonometric FOV model with a single
// calibration constant tanPerPixel: the change in tangent-space offset per
// pixel. It assumes a locally linear angular pitch and is unbounded away from
// the center (no saturation).

// TanFromPixel returns the tangent-space offset of a pixel from the optical
// axis under the linear model: (pixel - width/2) * tanPerPixel. The result is
// exactly zero at the center pixel.
func TanFromPixel(pixel PixelIndex, size ImageSize, tanPerPixel float64) (float64, error) {
	if size.Width == 0 {
		return 0, fmt.Errorf("%w: width must be > 0", ErrDegenerateExtent)
	}
	return (float64(pixel.Value) - size.HalfWidth()) * tanPerPixel, nil
}

// PixelFromAngleTan maps an angular offset back to a pixel under the linear
// model, rounding to the nearest pixel.
//
// The angle's raw stored value is consumed directly as a tangent-space
// offset; its tangent is never taken and its unit tag is ignored. Callers
// that hold a true angle must pass angle.FromRadians(a.Tan()) themselves.
// This matches the original calibration pipeline, where the angle slot
// carries an already-computed tangent.
func PixelFromAngleTan(angleTan angle.Angle, size ImageSize, tanPerPixel float64) (PixelIndex, error) {
	if size.Width == 0 {
		return PixelIndex{}, fmt.Errorf("%w: width must be > 0", ErrDegenerateExtent)
	}
	if tanPerPixel == 0 {
		return PixelIndex{}, fmt.Errorf("%w: tanPerPixel must be non-zero", ErrDegenerateResolution)
	}
	return pixelFromPosition(math.Round(angleTan.Value()/tanPerPixel + size.HalfWidth()))
}

// TanFromPixelClipped is TanFromPixel with a symmetric dead-zone around the
// center: pixels closer than clipThreshold * (width/2) to the axis yield
// exactly zero. Used as a control-loop deadband to suppress jitter near the
// optical axis; clipThreshold is a fraction of the half-width (0.05 = 5%).
func TanFromPixelClipped(pixel PixelIndex, size ImageSize, tanPerPixel, clipThreshold float64) (float64, error) {
	if size.Width == 0 {
		return 0, fmt.Errorf("%w: width must be > 0", ErrDegenerateExtent)
	}
	diff := math.Abs(float64(pixel.Value) - size.HalfWidth())
	if diff < clipThreshold*size.HalfWidth() {
		return 0.0, nil
	}
	return (float64(pixel.Value) - size.HalfWidth()) * tanPerPixel, nil
}

// PixelFromTan inverts the linear model: pixel = tan/tanPerPixel + width/2.
// Like PixelFromAngleTan, the input's raw stored value is treated as a
// tangent-space offset regardless of its unit tag.
//
// roundToNearest selects the rounding policy: true rounds to the nearest
// pixel (ties away from zero), false truncates toward zero. Both policies are
// part of the contract; the two results never differ by a full pixel.
func PixelFromTan(tan angle.Angle, size ImageSize, tanPerPixel float64, roundToNearest bool) (PixelIndex, error) {
	if size.Width == 0 {
		return PixelIndex{}, fmt.Errorf("%w: width must be > 0", ErrDegenerateExtent)
	}
	if tanPerPixel == 0 {
		return PixelIndex{}, fmt.Errorf("%w: tanPerPixel must be non-zero", ErrDegenerateResolution)
	}
	pos := tan.Value()/tanPerPixel + size.HalfWidth()
	if roundToNearest {
		pos = math.Round(pos)
	} else {
		pos = math.Trunc(pos)
	}
	return pixelFromPosition(pos)
}
