// Command img2body converts between pixel coordinates and pointing angles
// using a camera calibration profile. It is a diagnostic front end for the
// imagemath conversion core.
//
// Examples:
//
//	img2body -config configs/default.yaml -pixel 412
//	img2body -axis v -tan 0.13
//	img2body -angle-deg 2.5
//	img2body -fit measurements.csv
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/PavelGuzenfeld/image-to-body-math/angle"
	"github.com/PavelGuzenfeld/image-to-body-math/calib"
	"github.com/PavelGuzenfeld/image-to-body-math/imagemath"
)

func main() {
	cfgPath := flag.String("config", filepath.Join("configs", "default.yaml"), "path to calibration profile")
	axisFlag := flag.String("axis", "h", "image axis: h (horizontal) or v (vertical)")
	pixelFlag := flag.Int64("pixel", -1, "pixel coordinate to convert to an angle")
	tanFlag := flag.Float64("tan", math.NaN(), "raw tangent value to convert to a pixel (FOV model)")
	angleDegFlag := flag.Float64("angle-deg", math.NaN(), "angular offset in degrees to convert to a pixel (linear model)")
	fitPath := flag.String("fit", "", "CSV of pixel,angle_deg measurements to fit tan_per_pixel from")
	verbose := flag.Bool("v", false, "verbose logging to stderr")
	flag.Parse()

	if *verbose {
		calib.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	axis, err := parseAxis(*axisFlag)
	if err != nil {
		log.Fatalf("invalid axis: %v", err)
	}

	profile, err := calib.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load profile failed: %v", err)
	}
	extent := profile.Extent(axis)
	fov := profile.FOVFor(axis)

	switch {
	case *fitPath != "":
		ms, err := calib.LoadMeasurements(*fitPath)
		if err != nil {
			log.Fatalf("load measurements failed: %v", err)
		}
		k, err := calib.FitTanPerPixel(ms, extent)
		if err != nil {
			log.Fatalf("fit failed: %v", err)
		}
		fmt.Printf("tan_per_pixel: %.9g (%d samples, %s axis)\n", k, len(ms), axis)

	case *pixelFlag >= 0:
		px := imagemath.PixelIndex{Value: uint64(*pixelFlag)}
		a, err := imagemath.AngleFromPixelByFOV(px, extent, fov)
		if err != nil {
			log.Fatalf("conversion failed: %v", err)
		}
		fmt.Printf("pixel %d on %s axis (fov %.2f deg):\n", px.Value, axis, fov.Degrees())
		fmt.Printf("  angle:   %.6f deg (%.6f rad)\n", a.Degrees(), a.Radians())
		fmt.Printf("  tangent: %.9f\n", a.Tan())
		if profile.TanPerPixel != 0 {
			tan, err := imagemath.TanFromPixelClipped(px, extent, profile.TanPerPixel, profile.ClipThreshold)
			if err != nil {
				log.Fatalf("linear model failed: %v", err)
			}
			fmt.Printf("  linear model tangent (clip %.2f): %.9f\n", profile.ClipThreshold, tan)
		}

	case !math.IsNaN(*tanFlag):
		px, err := imagemath.PixelFromTanByFOV(*tanFlag, extent, fov)
		if err != nil {
			log.Fatalf("conversion failed: %v", err)
		}
		fmt.Printf("tangent %.9f -> pixel %d on %s axis\n", *tanFlag, px.Value, axis)

	case !math.IsNaN(*angleDegFlag):
		if profile.TanPerPixel == 0 {
			log.Fatalf("profile has no tan_per_pixel; fit one first with -fit")
		}
		// The linear inverse expects a tangent offset, so take the tangent
		// of the requested angle before handing it over.
		tan := angle.FromDegrees(*angleDegFlag).Tan()
		px, err := imagemath.PixelFromTan(angle.FromRadians(tan), extent, profile.TanPerPixel, true)
		if err != nil {
			log.Fatalf("conversion failed: %v", err)
		}
		fmt.Printf("angle %.4f deg -> pixel %d on %s axis\n", *angleDegFlag, px.Value, axis)

	default:
		flag.Usage()
		os.Exit(2)
	}
}

// parseAxis maps the -axis flag value to a calib.Axis.
func parseAxis(s string) (calib.Axis, error) {
	switch s {
	case "h", "horizontal":
		return calib.Horizontal, nil
	case "v", "vertical":
		return calib.Vertical, nil
	default:
		return calib.Horizontal, fmt.Errorf("must be h or v, got %q", s)
	}
}
