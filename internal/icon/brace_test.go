package icon

import (
	"image/color"
	"math"
	"testing"

	"unfold-icons/internal/config"
	"unfold-icons/pkg/geom"
)

func braceAt(cx float64, f Facing) BraceSpec {
	return BraceSpec{
		Center: geom.Point{X: cx, Y: 512},
		Height: 563.2,
		Stroke: 46.08,
		Color:  color.NRGBA{255, 255, 255, 230},
		Facing: f,
	}
}

func TestHalvesShareTip(t *testing.T) {
	for _, f := range []Facing{FacingLeft, FacingRight} {
		top, bottom := braceAt(327.68, f).Halves()
		if got := top.At(1); got != bottom.At(0) {
			t.Errorf("facing %v: top ends at %v, bottom starts at %v", f, got, bottom.At(0))
		}
	}
}

func TestFacingMirrorSymmetry(t *testing.T) {
	const cx = 512.0
	left := braceAt(cx, FacingLeft).SamplePoints()
	right := braceAt(cx, FacingRight).SamplePoints()

	if len(left) != len(right) {
		t.Fatalf("len(left) = %d, len(right) = %d", len(left), len(right))
	}
	for i := range left {
		if left[i].Y != right[i].Y {
			t.Fatalf("sample %d: Y %v vs %v", i, left[i].Y, right[i].Y)
		}
		// Mirroring about the shared center negates the x offset.
		if d := (right[i].X - cx) - (cx - left[i].X); math.Abs(d) > 1e-9 {
			t.Fatalf("sample %d: mirror deviation %v", i, d)
		}
	}
}

func TestSamplePointsCount(t *testing.T) {
	pts := braceAt(100, FacingLeft).SamplePoints()
	want := 2 * (config.CurveSteps + 1)
	if len(pts) != want {
		t.Fatalf("len(SamplePoints()) = %d, want %d", len(pts), want)
	}
}

func TestStemsNearVertical(t *testing.T) {
	// Top and bottom endpoints sit on the same x, opposite the tip.
	br := braceAt(200, FacingLeft)
	top, bottom := br.Halves()
	if top.P0.X != bottom.P3.X {
		t.Errorf("stem x: top %v, bottom %v", top.P0.X, bottom.P3.X)
	}
	tipX := top.P3.X
	if !(tipX < br.Center.X) {
		t.Errorf("left-facing tip at x=%v, want left of center %v", tipX, br.Center.X)
	}
}
