// Package calib loads camera calibration profiles and derives the
// angular-resolution constant consumed by the linear conversion model.
package calib

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/PavelGuzenfeld/image-to-body-math/angle"
	"github.com/PavelGuzenfeld/image-to-body-math/imagemath"
)

// Axis selects which image axis a conversion operates on.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// String returns "horizontal" or "vertical".
func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// LensConfig describes the mounted lens.
type LensConfig struct {
	Name          string  `yaml:"name"`            // e.g., "Nikkor 35mm f/1.8"
	FocalLengthMm float64 `yaml:"focal_length_mm"` // focal length in use
}

// SensorConfig is the physical sensor size in mm.
type SensorConfig struct {
	WidthMm  float64 `yaml:"width_mm"`  // e.g., 23.6 for Nikon APS-C
	HeightMm float64 `yaml:"height_mm"` // e.g., 15.8
}

// ResolutionConfig is the image resolution in pixels.
type ResolutionConfig struct {
	WidthPx  uint64 `yaml:"width_px"`  // e.g., 640
	HeightPx uint64 `yaml:"height_px"` // e.g., 480
}

// FOVConfig pins the field of view directly, overriding the lens/sensor
// derivation. Both axes must be set when the block is present.
type FOVConfig struct {
	HorizontalDeg float64 `yaml:"horizontal_deg"`
	VerticalDeg   float64 `yaml:"vertical_deg"`
}

// Profile aggregates the calibration of one camera.
type Profile struct {
	Name       string           `yaml:"name"`
	Resolution ResolutionConfig `yaml:"resolution"`
	Lens       *LensConfig      `yaml:"lens,omitempty"`   // optional when fov is explicit
	Sensor     *SensorConfig    `yaml:"sensor,omitempty"` // optional when fov is explicit
	FOV        *FOVConfig       `yaml:"fov,omitempty"`    // optional when lens+sensor are set

	// TanPerPixel is the angular-resolution constant for the linear model.
	// Zero means "not calibrated"; fit one from measurements in that case.
	TanPerPixel float64 `yaml:"tan_per_pixel"`

	// ClipThreshold is the dead-zone fraction of the half-width used by the
	// clipped linear conversion (0.05 = 5%).
	ClipThreshold float64 `yaml:"clip_threshold"`
}

// Load reads a YAML file and returns the validated calibration profile.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile file: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	// Basic validation
	if p.Resolution.WidthPx == 0 || p.Resolution.HeightPx == 0 {
		return nil, fmt.Errorf("resolution.width_px and resolution.height_px are required")
	}
	if p.FOV == nil && (p.Lens == nil || p.Sensor == nil) {
		return nil, fmt.Errorf("either fov or both lens and sensor are required")
	}
	if p.Lens != nil && p.Lens.FocalLengthMm <= 0 {
		return nil, fmt.Errorf("lens.focal_length_mm must be > 0, got %.2f", p.Lens.FocalLengthMm)
	}
	if p.Sensor != nil && (p.Sensor.WidthMm <= 0 || p.Sensor.HeightMm <= 0) {
		return nil, fmt.Errorf("sensor dimensions must be > 0")
	}
	if p.FOV != nil {
		if p.FOV.HorizontalDeg <= 0 || p.FOV.HorizontalDeg >= 180 {
			return nil, fmt.Errorf("fov.horizontal_deg must be in (0, 180), got %.2f", p.FOV.HorizontalDeg)
		}
		if p.FOV.VerticalDeg <= 0 || p.FOV.VerticalDeg >= 180 {
			return nil, fmt.Errorf("fov.vertical_deg must be in (0, 180), got %.2f", p.FOV.VerticalDeg)
		}
	}
	if p.ClipThreshold < 0 || p.ClipThreshold >= 1 {
		return nil, fmt.Errorf("clip_threshold must be in [0, 1), got %.2f", p.ClipThreshold)
	}

	logger().Info("profile loaded",
		"name", p.Name,
		"width_px", p.Resolution.WidthPx,
		"height_px", p.Resolution.HeightPx,
		"tan_per_pixel", p.TanPerPixel)
	return &p, nil
}

// HorizontalFOV returns the horizontal field of view. An explicit fov block
// wins; otherwise it is derived from the sensor and lens:
// FOV = 2 × arctan(sensor_width / (2 × focal_length)).
func (p *Profile) HorizontalFOV() angle.Angle {
	if p.FOV != nil {
		return angle.FromDegrees(p.FOV.HorizontalDeg)
	}
	return angle.FromRadians(2.0 * math.Atan(p.Sensor.WidthMm/(2.0*p.Lens.FocalLengthMm)))
}

// VerticalFOV returns the vertical field of view, derived like HorizontalFOV.
func (p *Profile) VerticalFOV() angle.Angle {
	if p.FOV != nil {
		return angle.FromDegrees(p.FOV.VerticalDeg)
	}
	return angle.FromRadians(2.0 * math.Atan(p.Sensor.HeightMm/(2.0*p.Lens.FocalLengthMm)))
}

// FOVFor returns the field of view along the given axis.
func (p *Profile) FOVFor(axis Axis) angle.Angle {
	if axis == Vertical {
		return p.VerticalFOV()
	}
	return p.HorizontalFOV()
}

// Extent returns the one-axis image extent the conversion core expects, with
// the requested axis length in the Width slot.
func (p *Profile) Extent(axis Axis) imagemath.ImageSize {
	if axis == Vertical {
		return imagemath.ImageSize{Width: p.Resolution.HeightPx, Height: p.Resolution.WidthPx}
	}
	return imagemath.ImageSize{Width: p.Resolution.WidthPx, Height: p.Resolution.HeightPx}
}
