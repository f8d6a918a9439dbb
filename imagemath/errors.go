package imagemath

import "errors"

// Conversion errors. All report caller-input violations, never transient
// failures; retrying with the same arguments cannot succeed.
var (
	// ErrDegenerateExtent reports an image extent with zero width, which
	// would make the normalization divisor zero.
	ErrDegenerateExtent = errors.New("degenerate image extent")

	// ErrDegenerateFOV reports a field of view outside (0, π), for which
	// tan(fov/2) is zero, infinite, or undefined.
	ErrDegenerateFOV = errors.New("degenerate field of view")

	// ErrDegenerateResolution reports a zero angular-resolution constant,
	// which would make the inverse linear model divide by zero.
	ErrDegenerateResolution = errors.New("degenerate angular resolution")

	// ErrPixelOutOfRange reports a computed pixel position that is negative
	// or non-finite and cannot be represented as a pixel index.
	ErrPixelOutOfRange = errors.New("pixel position out of range")
)
