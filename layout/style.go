package layout

// Page geometry and bubble styling. A4 portrait, all values in mm.
const (
	pageWidth  = 210.0
	pageHeight = 297.0

	bubbleWidthRatio = 0.82
	bubblePadX       = 3.5
	bubblePadY       = 2.5
	bubbleRadius     = 2.5
	bubbleSpacing    = 4.0
	blockGap         = 1.6

	chipHeight    = 6.0
	chipSpacing   = 2.0
	chipPadX      = 2.5
	authorChipGap = 1.2

	bulletIndent = 4.5
	bulletRadius = 0.7

	sectionGap = 6.0

	bodyFontSize = 10.5 * PtToMm
	chipFontSize = 8.0 * PtToMm

	lineHeightFactor = 1.45
)

var defaultMargin = Margin{Top: 15, Right: 15, Bottom: 15, Left: 15}

var (
	inkColor           = Color{R: 30, G: 30, B: 30}
	userBubbleFill     = Color{R: 214, G: 236, B: 255}
	fallbackBubbleFill = Color{R: 240, G: 240, B: 243}
	chipFill           = Color{R: 229, G: 231, B: 235}
	chipInk            = Color{R: 55, G: 65, B: 81}
)

// headingFontSize maps heading depth to a font size; depths beyond the
// deepest distinct size fall back to the body size.
func headingFontSize(depth int) float64 {
	switch depth {
	case 1:
		return 17.0 * PtToMm
	case 2:
		return 15.0 * PtToMm
	case 3:
		return 13.0 * PtToMm
	case 4:
		return 11.5 * PtToMm
	default:
		return bodyFontSize
	}
}
