// internal/icon/gradient.go
package icon

import (
	"image"
	"image/color"

	"unfold-icons/pkg/geom"
)

// Gradient fills a size×size canvas with a diagonal linear gradient from
// top (upper-left) to bottom (lower-right). The blend ratio for a pixel is
// (x+y)/(2·size), so the upper-left corner is exactly the first stop.
// Every pixel is fully opaque; transparency comes later from the mask.
func Gradient(size int, top, bottom color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+size*4]
		for x := 0; x < size; x++ {
			ratio := float64(x+y) / float64(2*size)
			i := x * 4
			row[i] = uint8(geom.Lerp(float64(top.R), float64(bottom.R), ratio))
			row[i+1] = uint8(geom.Lerp(float64(top.G), float64(bottom.G), ratio))
			row[i+2] = uint8(geom.Lerp(float64(top.B), float64(bottom.B), ratio))
			row[i+3] = 0xff
		}
	}
	return img
}
