package imagemath

import (
	"errors"
	"math"
	"testing"

	"github.com/PavelGuzenfeld/image-to-body-math/angle"
)

func TestTanFromPixel_LinearModel(t *testing.T) {
	size := ImageSize{Width: 640, Height: 480}
	const k = 0.0025
	cases := []struct {
		name  string
		pixel uint64
		want  float64
	}{
		{"center_is_zero", 320, 0.0},
		{"right_of_center", 360, 0.1},
		{"left_of_center", 280, -0.1},
		{"left_edge", 0, -0.8},
		{"right_edge", 640, 0.8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := TanFromPixel(PixelIndex{Value: tc.pixel}, size, k)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tc.want) > epsilon {
				t.Errorf("TanFromPixel(%d) = %v, want %v", tc.pixel, got, tc.want)
			}
		})
	}
}

func TestTanFromPixel_ZeroAtCenterForAnyK(t *testing.T) {
	size := ImageSize{Width: 640}
	for _, k := range []float64{0.0001, 0.0025, 1.0, -0.5} {
		got, err := TanFromPixel(PixelIndex{Value: 320}, size, k)
		if err != nil {
			t.Fatalf("k=%v: unexpected error: %v", k, err)
		}
		if got != 0 {
			t.Errorf("k=%v: TanFromPixel(center) = %v, want 0", k, got)
		}
	}
}

func TestTanFromPixel_ZeroWidth(t *testing.T) {
	if _, err := TanFromPixel(PixelIndex{Value: 10}, ImageSize{}, 0.0025); !errors.Is(err, ErrDegenerateExtent) {
		t.Errorf("err = %v, want ErrDegenerateExtent", err)
	}
}

func TestTanFromPixelClipped_DeadZone(t *testing.T) {
	size := ImageSize{Width: 640, Height: 480}
	const k = 0.0025
	const threshold = 0.05 // dead-zone is 16 pixels either side of center
	cases := []struct {
		name  string
		pixel uint64
		want  float64
	}{
		{"center", 320, 0.0},
		{"inside_dead_zone_right", 330, 0.0},
		{"inside_dead_zone_left", 310, 0.0},
		{"just_inside", 335, 0.0},
		{"boundary_is_not_clipped", 336, 0.04},
		{"boundary_left_is_not_clipped", 304, -0.04},
		{"outside_dead_zone", 360, 0.1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := TanFromPixelClipped(PixelIndex{Value: tc.pixel}, size, k, threshold)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tc.want) > epsilon {
				t.Errorf("TanFromPixelClipped(%d) = %v, want %v", tc.pixel, got, tc.want)
			}
		})
	}
}

func TestTanFromPixelClipped_MatchesUnclippedOutsideZone(t *testing.T) {
	size := ImageSize{Width: 640}
	const k = 0.0025
	const threshold = 0.05
	for px := uint64(0); px <= 640; px += 8 {
		clipped, err := TanFromPixelClipped(PixelIndex{Value: px}, size, k, threshold)
		if err != nil {
			t.Fatalf("pixel %d: unexpected error: %v", px, err)
		}
		plain, err := TanFromPixel(PixelIndex{Value: px}, size, k)
		if err != nil {
			t.Fatalf("pixel %d: unexpected error: %v", px, err)
		}
		inZone := math.Abs(float64(px)-320) < threshold*320
		if inZone && clipped != 0 {
			t.Errorf("pixel %d: in dead-zone, got %v, want 0", px, clipped)
		}
		if !inZone && clipped != plain {
			t.Errorf("pixel %d: outside dead-zone, got %v, want %v", px, clipped, plain)
		}
	}
}

func TestTanFromPixelClipped_ZeroThresholdNeverClips(t *testing.T) {
	size := ImageSize{Width: 640}
	got, err := TanFromPixelClipped(PixelIndex{Value: 320}, size, 0.0025, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// diff 0 is not < 0, so even the center pixel takes the linear branch.
	if got != 0 {
		t.Errorf("center with zero threshold = %v, want 0", got)
	}
}

func TestPixelFromAngleTan_KnownValues(t *testing.T) {
	size := ImageSize{Width: 640, Height: 480}
	const k = 0.0025
	cases := []struct {
		name string
		tan  float64
		want uint64
	}{
		{"zero_is_center", 0.0, 320},
		{"positive_offset", 0.1, 360},
		{"negative_offset", -0.1, 280},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PixelFromAngleTan(angle.FromRadians(tc.tan), size, k)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Value != tc.want {
				t.Errorf("PixelFromAngleTan(%v) = %d, want %d", tc.tan, got.Value, tc.want)
			}
		})
	}
}

// The input's raw payload is consumed as a tangent offset regardless of its
// unit tag; a degree-tagged angle with the same payload maps identically.
func TestPixelFromAngleTan_RawValueContract(t *testing.T) {
	size := ImageSize{Width: 640}
	const k = 0.0025
	asRadians, err := PixelFromAngleTan(angle.FromRadians(0.1), size, k)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	asDegrees, err := PixelFromAngleTan(angle.FromDegrees(0.1), size, k)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asRadians.Value != asDegrees.Value {
		t.Errorf("unit tag leaked into conversion: %d (rad) vs %d (deg)", asRadians.Value, asDegrees.Value)
	}
}

func TestPixelFromAngleTan_DegenerateInputs(t *testing.T) {
	if _, err := PixelFromAngleTan(angle.FromRadians(0.1), ImageSize{}, 0.0025); !errors.Is(err, ErrDegenerateExtent) {
		t.Errorf("zero width: err = %v, want ErrDegenerateExtent", err)
	}
	if _, err := PixelFromAngleTan(angle.FromRadians(0.1), ImageSize{Width: 640}, 0); !errors.Is(err, ErrDegenerateResolution) {
		t.Errorf("zero k: err = %v, want ErrDegenerateResolution", err)
	}
	if _, err := PixelFromAngleTan(angle.FromRadians(-1), ImageSize{Width: 640}, 0.0025); !errors.Is(err, ErrPixelOutOfRange) {
		t.Errorf("negative position: err = %v, want ErrPixelOutOfRange", err)
	}
}

func TestPixelFromTan_RoundingPolicies(t *testing.T) {
	size := ImageSize{Width: 640, Height: 480}
	const k = 0.0025
	cases := []struct {
		name      string
		tan       float64
		wantRound uint64
		wantTrunc uint64
	}{
		{"exact", 0.1, 360, 360},
		{"fraction_below_half", 0.1005, 360, 360}, // position 360.2
		{"fraction_above_half", 0.1015, 361, 360}, // position 360.6
		{"half_rounds_away", 0.10125, 361, 360},   // position 360.5
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rounded, err := PixelFromTan(angle.FromRadians(tc.tan), size, k, true)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			truncated, err := PixelFromTan(angle.FromRadians(tc.tan), size, k, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rounded.Value != tc.wantRound {
				t.Errorf("round policy = %d, want %d", rounded.Value, tc.wantRound)
			}
			if truncated.Value != tc.wantTrunc {
				t.Errorf("truncate policy = %d, want %d", truncated.Value, tc.wantTrunc)
			}
		})
	}
}

func TestPixelFromTan_PoliciesDifferByLessThanOne(t *testing.T) {
	size := ImageSize{Width: 640}
	const k = 0.0025
	for tan := -0.75; tan <= 0.75; tan += 0.0137 {
		rounded, err := PixelFromTan(angle.FromRadians(tan), size, k, true)
		if err != nil {
			t.Fatalf("tan %v: %v", tan, err)
		}
		truncated, err := PixelFromTan(angle.FromRadians(tan), size, k, false)
		if err != nil {
			t.Fatalf("tan %v: %v", tan, err)
		}
		diff := math.Abs(float64(rounded.Value) - float64(truncated.Value))
		if diff >= 1.0+1e-9 {
			t.Errorf("tan %v: policies differ by %v pixels", tan, diff)
		}
	}
}

func TestPixelFromTan_DegenerateInputs(t *testing.T) {
	if _, err := PixelFromTan(angle.FromRadians(0.1), ImageSize{}, 0.0025, true); !errors.Is(err, ErrDegenerateExtent) {
		t.Errorf("zero width: err = %v, want ErrDegenerateExtent", err)
	}
	if _, err := PixelFromTan(angle.FromRadians(0.1), ImageSize{Width: 640}, 0, true); !errors.Is(err, ErrDegenerateResolution) {
		t.Errorf("zero k: err = %v, want ErrDegenerateResolution", err)
	}
	if _, err := PixelFromTan(angle.FromRadians(-2), ImageSize{Width: 640}, 0.0025, true); !errors.Is(err, ErrPixelOutOfRange) {
		t.Errorf("negative position: err = %v, want ErrPixelOutOfRange", err)
	}
}

func BenchmarkTanFromPixel(b *testing.B) {
	size := ImageSize{Width: 640, Height: 480}
	px := PixelIndex{Value: 412}
	for i := 0; i < b.N; i++ {
		if _, err := TanFromPixel(px, size, 0.0025); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTanFromPixelClipped(b *testing.B) {
	size := ImageSize{Width: 640, Height: 480}
	px := PixelIndex{Value: 412}
	for i := 0; i < b.N; i++ {
		if _, err := TanFromPixelClipped(px, size, 0.0025, 0.05); err != nil {
			b.Fatal(err)
		}
	}
}
