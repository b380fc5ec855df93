// internal/icon/draw.go
package icon

import (
	"image"
	"image/color"
	"math"

	"unfold-icons/pkg/geom"
)

// fillDisc stamps a filled disc of the given radius centered on p,
// compositing src-over so translucent strokes tint what is beneath them.
// A pixel belongs to the disc when its center lies within the radius.
func fillDisc(dst *image.NRGBA, p geom.Point, radius float64, c color.NRGBA) {
	x0 := int(math.Floor(p.X - radius))
	x1 := int(math.Ceil(p.X + radius))
	y0 := int(math.Floor(p.Y - radius))
	y1 := int(math.Ceil(p.Y + radius))
	rr := radius * radius
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - p.X
			dy := float64(y) + 0.5 - p.Y
			if dx*dx+dy*dy <= rr {
				blendPixel(dst, x, y, c)
			}
		}
	}
}

// blendPixel composites c over the pixel at (x, y) in non-premultiplied
// space. Out-of-bounds coordinates are ignored.
func blendPixel(dst *image.NRGBA, x, y int, c color.NRGBA) {
	if !(image.Point{x, y}.In(dst.Rect)) || c.A == 0 {
		return
	}
	i := dst.PixOffset(x, y)
	sa := uint32(c.A)
	da := uint32(dst.Pix[i+3])
	if sa == 0xff || da == 0 {
		dst.Pix[i] = c.R
		dst.Pix[i+1] = c.G
		dst.Pix[i+2] = c.B
		dst.Pix[i+3] = c.A
		return
	}
	// outA and the channel numerators carry an extra factor of 255.
	outA := sa*0xff + da*(0xff-sa)
	dst.Pix[i] = uint8((uint32(c.R)*sa*0xff + uint32(dst.Pix[i])*da*(0xff-sa)) / outA)
	dst.Pix[i+1] = uint8((uint32(c.G)*sa*0xff + uint32(dst.Pix[i+1])*da*(0xff-sa)) / outA)
	dst.Pix[i+2] = uint8((uint32(c.B)*sa*0xff + uint32(dst.Pix[i+2])*da*(0xff-sa)) / outA)
	dst.Pix[i+3] = uint8(outA / 0xff)
}
