// cmd/preview/main.go
package main

import (
	"log"

	"unfold-icons/internal/config"
	"unfold-icons/internal/icon"

	"github.com/hajimehoshi/ebiten/v2"
)

// margin keeps a band of background visible around the icon.
const margin = 0.9

type previewApp struct {
	icon *ebiten.Image
}

func (a *previewApp) Update() error {
	return nil
}

func (a *previewApp) Draw(screen *ebiten.Image) {
	screen.Fill(config.PreviewBackground)

	scale := margin * float64(config.PreviewWindowSize) / float64(a.icon.Bounds().Dx())
	offset := (float64(config.PreviewWindowSize) - scale*float64(a.icon.Bounds().Dx())) / 2

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offset, offset)
	screen.DrawImage(a.icon, op)
}

func (a *previewApp) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.PreviewWindowSize, config.PreviewWindowSize
}

func main() {
	app := &previewApp{
		icon: ebiten.NewImageFromImage(icon.Render(config.MasterSize)),
	}
	ebiten.SetWindowSize(config.PreviewWindowSize, config.PreviewWindowSize)
	ebiten.SetWindowTitle("Unfold Icon Preview")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
