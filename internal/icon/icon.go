// internal/icon/icon.go
package icon

import (
	"image"

	"unfold-icons/internal/config"
	"unfold-icons/pkg/geom"
)

// Render produces the complete icon at the given size: the rounded gradient
// base, two solid inner braces, three dots below them, and two faded outer
// braces drawn last. The outer pair deliberately overlaps the inner pair's
// extremities; the layering is the design.
func Render(size int) *image.NRGBA {
	gradient := Gradient(size, config.GradientTop, config.GradientBottom)
	mask := RoundedMask(size, int(float64(size)*config.CornerRadius))
	img := ApplyMask(gradient, mask)

	s := float64(size)
	center := geom.Point{X: s / 2, Y: s / 2}
	height := s * config.BraceHeight
	stroke := s * config.StrokeWidth

	inner := s * config.InnerOffset
	BraceSpec{
		Center: geom.Point{X: center.X - inner, Y: center.Y},
		Height: height,
		Stroke: stroke,
		Color:  config.BraceSolid,
		Facing: FacingLeft,
	}.Draw(img)
	BraceSpec{
		Center: geom.Point{X: center.X + inner, Y: center.Y},
		Height: height,
		Stroke: stroke,
		Color:  config.BraceSolid,
		Facing: FacingRight,
	}.Draw(img)

	dotY := center.Y + height*config.DotDrop
	for i := -1; i <= 1; i++ {
		p := geom.Point{X: center.X + float64(i)*s*config.DotSpacing, Y: dotY}
		fillDisc(img, p, s*config.DotRadius, config.BraceSolid)
	}

	outer := s * config.OuterOffset
	BraceSpec{
		Center: geom.Point{X: center.X - outer, Y: center.Y},
		Height: height,
		Stroke: stroke,
		Color:  config.BraceFaded,
		Facing: FacingLeft,
	}.Draw(img)
	BraceSpec{
		Center: geom.Point{X: center.X + outer, Y: center.Y},
		Height: height,
		Stroke: stroke,
		Color:  config.BraceFaded,
		Facing: FacingRight,
	}.Draw(img)

	return img
}
