// internal/export/export.go
package export

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"unfold-icons/internal/config"

	"golang.org/x/image/draw"
)

// Exporter writes the rendered icon to disk at every requested size.
// Outputs are independent and idempotently overwritable; a failure aborts
// without cleaning up files already written.
type Exporter struct {
	OutDir string
}

// ExportPNGs writes one icon-<size>.png per requested size. The master is
// written as-is at its own size; every other size is downsampled from the
// master, never re-rendered, so all outputs stay visually consistent.
// It returns each rendition keyed by size for further packaging.
func (e *Exporter) ExportPNGs(master *image.NRGBA, sizes []int) (map[int]image.Image, error) {
	if err := os.MkdirAll(e.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", e.OutDir, err)
	}

	renditions := make(map[int]image.Image, len(sizes))
	for _, size := range sizes {
		var img image.Image = master
		if size != master.Bounds().Dx() {
			img = Resize(master, size)
		}
		renditions[size] = img

		path := filepath.Join(e.OutDir, fmt.Sprintf(config.FileNameFormat, size))
		if err := writePNG(path, img); err != nil {
			return nil, err
		}
		log.Printf("wrote %s", path)
	}
	return renditions, nil
}

// Resize downsamples src to a size×size canvas with Catmull-Rom resampling.
func Resize(src image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), draw.Over, nil)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
