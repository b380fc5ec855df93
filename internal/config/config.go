// internal/config/config.go
package config

import "image/color"

const (
	MasterSize   = 1024 // render size; smaller outputs are downsampled from this
	CornerRadius = 0.22 // rounded-corner radius, fraction of canvas size

	BraceHeight = 0.55  // glyph height, fraction of canvas size
	StrokeWidth = 0.045 // glyph stroke width, fraction of canvas size
	StemOffset  = 0.01  // fraction of glyph height; smaller = straighter stems
	TipExtend   = 0.22  // fraction of glyph height; larger = curlier tip
	CurveSteps  = 200   // samples per Bézier half

	InnerOffset = 0.18 // solid brace distance from center, fraction of canvas size
	OuterOffset = 0.28 // faded brace distance from center, fraction of canvas size

	DotRadius  = 0.025 // fraction of canvas size
	DotSpacing = 0.07  // horizontal gap between dots, fraction of canvas size
	DotDrop    = 0.48  // dot row offset below center, fraction of glyph height

	FileNameFormat = "icon-%d.png"
	ICOFileName    = "icon.ico"
	DefaultOutDir  = "assets"

	PreviewWindowSize = 512
)

var (
	GradientTop    = color.NRGBA{64, 192, 180, 255} // teal, upper-left stop
	GradientBottom = color.NRGBA{80, 140, 200, 255} // blue, lower-right stop

	BraceSolid = color.NRGBA{255, 255, 255, 230}
	BraceFaded = color.NRGBA{255, 255, 255, 80}

	PreviewBackground = color.NRGBA{20, 20, 30, 255}

	// ExportSizes lists every output size; MasterSize is written as rendered,
	// the rest are downsampled from it.
	ExportSizes = []int{1024, 512, 256, 128, 64, 32, 16}

	// ICOSizes are the renditions bundled into the .ico container.
	ICOSizes = []int{256, 128, 64, 32, 16}
)
