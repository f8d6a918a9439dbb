package calib

import (
	"fmt"
	"math"
	"os"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"

	"github.com/PavelGuzenfeld/image-to-body-math/angle"
	"github.com/PavelGuzenfeld/image-to-body-math/imagemath"
)

// Measurement is one calibration sample: the pixel at which a target of
// known angular offset from the optical axis was detected.
type Measurement struct {
	Pixel    uint64  `csv:"pixel"`
	AngleDeg float64 `csv:"angle_deg"`
}

// LoadMeasurements reads calibration samples from a CSV file with a
// "pixel,angle_deg" header.
func LoadMeasurements(path string) ([]Measurement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open measurements file: %w", err)
	}
	defer f.Close()

	var ms []Measurement
	if err := gocsv.UnmarshalFile(f, &ms); err != nil {
		return nil, fmt.Errorf("unmarshal csv: %w", err)
	}
	logger().Debug("measurements loaded", "path", path, "count", len(ms))
	return ms, nil
}

// FitTanPerPixel derives the angular-resolution constant from calibration
// samples by regressing tan(angle) against the pixel offset from the frame
// center, with the intercept forced through the origin (the tangent is zero
// at the center pixel by construction).
//
// At least two samples are required, and not all of them may sit on the
// center pixel.
func FitTanPerPixel(ms []Measurement, size imagemath.ImageSize) (float64, error) {
	if size.Width == 0 {
		return 0, fmt.Errorf("fit: %w: width must be > 0", imagemath.ErrDegenerateExtent)
	}
	if len(ms) < 2 {
		return 0, fmt.Errorf("fit: need at least 2 measurements, got %d", len(ms))
	}

	half := size.HalfWidth()
	xs := make([]float64, len(ms))
	ys := make([]float64, len(ms))
	for i, m := range ms {
		xs[i] = float64(m.Pixel) - half
		ys[i] = angle.FromDegrees(m.AngleDeg).Tan()
	}

	_, k := stat.LinearRegression(xs, ys, nil, true)
	if math.IsNaN(k) || math.IsInf(k, 0) || k == 0 {
		return 0, fmt.Errorf("fit: measurements do not constrain the slope")
	}

	logger().Info("fitted angular resolution", "samples", len(ms), "tan_per_pixel", k)
	return k, nil
}
