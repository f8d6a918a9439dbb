package imagemath

import (
	"fmt"
	"math"

	"github.com/PavelGuzenfeld/image-to-body-math/angle"
)

// halfFOVTan validates the field of view and returns tan(fov/2).
func halfFOVTan(fov angle.Angle) (float64, error) {
	fovRad := fov.Radians()
	if fovRad <= 0 || fovRad >= math.Pi {
		return 0, fmt.Errorf("%w: fov must be in (0, pi) rad, got %v", ErrDegenerateFOV, fovRad)
	}
	return math.Tan(fovRad / 2.0), nil
}

// pixelFromPosition converts a continuous pixel position to a PixelIndex.
// Negative and non-finite positions are rejected; the conversion never wraps.
func pixelFromPosition(pos float64) (PixelIndex, error) {
	if math.IsNaN(pos) || math.IsInf(pos, 0) {
		return PixelIndex{}, fmt.Errorf("%w: computed position is not finite", ErrPixelOutOfRange)
	}
	if pos < 0 {
		return PixelIndex{}, fmt.Errorf("%w: computed position %v is negative", ErrPixelOutOfRange, pos)
	}
	return PixelIndex{Value: uint64(pos)}, nil
}

// AngleFromPixelByFOV maps a pixel coordinate to the angle subtending it,
// given the camera's full field of view along the same axis.
//
// The projection is rectilinear (pinhole): the result is exactly zero at the
// center pixel, strictly increasing in pixel, and saturates toward ±fov/2 as
// the pixel approaches the frame edges. Pixels outside [0, width] extrapolate
// beyond ±fov/2. The returned angle is in radians.
func AngleFromPixelByFOV(pixel PixelIndex, size ImageSize, fov angle.Angle) (angle.Angle, error) {
	if size.Width == 0 {
		return angle.Angle{}, fmt.Errorf("%w: width must be > 0", ErrDegenerateExtent)
	}
	halfTan, err := halfFOVTan(fov)
	if err != nil {
		return angle.Angle{}, err
	}
	norm := pixel.Normalized(size)
	return angle.FromRadians(math.Atan(norm * halfTan)), nil
}

// PixelFromTanByFOV is the inverse of AngleFromPixelByFOV. It takes a raw
// tangent value: pass tan(a), never the angle a itself. The result is rounded
// to the nearest pixel, ties away from zero. A tangent that would land left
// of pixel 0 yields ErrPixelOutOfRange.
func PixelFromTanByFOV(pixelTan float64, size ImageSize, fov angle.Angle) (PixelIndex, error) {
	if size.Width == 0 {
		return PixelIndex{}, fmt.Errorf("%w: width must be > 0", ErrDegenerateExtent)
	}
	halfTan, err := halfFOVTan(fov)
	if err != nil {
		return PixelIndex{}, err
	}
	norm := pixelTan / halfTan
	return pixelFromPosition(math.Round(norm*size.HalfWidth() + size.HalfWidth()))
}
