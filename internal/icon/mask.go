// internal/icon/mask.go
package icon

import "image"

// RoundedMask builds a size×size alpha mask of a rounded rectangle with the
// given corner radius: two overlapping full-bleed rectangles, each inset by
// the radius on one axis, plus four quarter-disc corner fills. The overlap
// keeps the boundary between straight edges and corner arcs seamless.
func RoundedMask(size, radius int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, size, size))
	fillRect(m, radius, 0, size-1-radius, size-1)
	fillRect(m, 0, radius, size-1, size-1-radius)
	quarterDisc(m, radius, radius, radius, -1, -1)
	quarterDisc(m, size-1-radius, radius, radius, 1, -1)
	quarterDisc(m, radius, size-1-radius, radius, -1, 1)
	quarterDisc(m, size-1-radius, size-1-radius, radius, 1, 1)
	return m
}

// fillRect marks the inclusive rectangle [x0,x1]×[y0,y1] opaque.
func fillRect(m *image.Alpha, x0, y0, x1, y1 int) {
	for y := y0; y <= y1; y++ {
		row := m.Pix[y*m.Stride:]
		for x := x0; x <= x1; x++ {
			row[x] = 0xff
		}
	}
}

// quarterDisc marks the quarter of a disc of the given radius around
// (cx, cy) opaque, in the quadrant selected by xDir and yDir (±1).
func quarterDisc(m *image.Alpha, cx, cy, radius, xDir, yDir int) {
	for j := 0; j <= radius; j++ {
		for i := 0; i <= radius; i++ {
			if i*i+j*j > radius*radius {
				continue
			}
			x := cx + xDir*i
			y := cy + yDir*j
			m.Pix[y*m.Stride+x] = 0xff
		}
	}
}

// ApplyMask clips an opaque canvas through an alpha mask onto a transparent
// background. Pixels outside the mask stay fully transparent black.
func ApplyMask(src *image.NRGBA, mask *image.Alpha) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := mask.Pix[y*mask.Stride+x]
			if a == 0 {
				continue
			}
			i := out.PixOffset(x, y)
			copy(out.Pix[i:i+3], src.Pix[src.PixOffset(x, y):])
			out.Pix[i+3] = a
		}
	}
	return out
}
