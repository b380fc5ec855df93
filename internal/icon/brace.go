// internal/icon/brace.go
package icon

import (
	"image"
	"image/color"

	"unfold-icons/internal/config"
	"unfold-icons/pkg/geom"
)

// Facing selects which horizontal direction a brace's tip points.
type Facing int

const (
	FacingLeft  Facing = iota // tip points left, an opening {
	FacingRight               // tip points right, a closing }
)

// sign flips every horizontal control-point offset, so the same formula
// yields mirror-image glyphs.
func (f Facing) sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// BraceSpec describes one curly-brace glyph. It is consumed once to produce
// sampled curve points and has no life beyond the rendering pass.
type BraceSpec struct {
	Center geom.Point
	Height float64
	Stroke float64
	Color  color.NRGBA
	Facing Facing
}

// Halves derives the glyph's two cubic Bézier curves. The stems at top and
// bottom sit on the side opposite the tip, offset by a small fraction of the
// height so they stay nearly vertical; the tip protrudes by a larger
// fraction. Both halves end resp. start at the same tip point, so the glyph
// is continuous with no seam.
func (s BraceSpec) Halves() (top, bottom geom.CubicBezier) {
	h := s.Height / 2
	stem := s.Height * config.StemOffset
	tip := s.Height * config.TipExtend
	d := s.Facing.sign()
	cx, cy := s.Center.X, s.Center.Y

	tipPoint := geom.Point{X: cx + d*tip, Y: cy}
	top = geom.CubicBezier{
		P0: geom.Point{X: cx - d*stem, Y: cy - h},
		P1: geom.Point{X: cx - d*stem, Y: cy - h*0.35},
		P2: geom.Point{X: cx + d*tip, Y: cy - h*0.15},
		P3: tipPoint,
	}
	bottom = geom.CubicBezier{
		P0: tipPoint,
		P1: geom.Point{X: cx + d*tip, Y: cy + h*0.15},
		P2: geom.Point{X: cx - d*stem, Y: cy + h*0.35},
		P3: geom.Point{X: cx - d*stem, Y: cy + h},
	}
	return top, bottom
}

// SamplePoints evaluates both halves at uniformly spaced parameters,
// top half first.
func (s BraceSpec) SamplePoints() []geom.Point {
	top, bottom := s.Halves()
	pts := top.Sample(config.CurveSteps)
	return append(pts, bottom.Sample(config.CurveSteps)...)
}

// Draw rasterizes the glyph by stamping a disc of radius Stroke/2 at every
// sampled curve point, approximating a stroked curve.
func (s BraceSpec) Draw(dst *image.NRGBA) {
	r := s.Stroke / 2
	for _, p := range s.SamplePoints() {
		fillDisc(dst, p, r, s.Color)
	}
}
