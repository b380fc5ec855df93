package icon

import (
	"bytes"
	"testing"
)

func TestRenderDimensions(t *testing.T) {
	for _, size := range []int{16, 64, 128} {
		img := Render(size)
		b := img.Bounds()
		if b.Dx() != size || b.Dy() != size {
			t.Errorf("Render(%d) bounds = %dx%d, want %dx%d", size, b.Dx(), b.Dy(), size, size)
		}
	}
}

func TestRenderAlphaChannel(t *testing.T) {
	const size = 64
	img := Render(size)

	if a := img.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner A = %d, want 0", a)
	}
	if a := img.NRGBAAt(size/2, size/2).A; a != 255 {
		t.Errorf("center A = %d, want 255", a)
	}
}

func TestRenderDeterministic(t *testing.T) {
	a := Render(64)
	b := Render(64)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("two renders with identical parameters differ")
	}
}

func TestRenderBraceInk(t *testing.T) {
	// The solid inner braces put near-white ink on the canvas; the bare
	// gradient never exceeds 200 on the red channel.
	const size = 256
	img := Render(size)

	white := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 220 && img.Pix[i+3] == 255 {
			white++
		}
	}
	if white == 0 {
		t.Fatal("no brace ink found on rendered icon")
	}
}
