package pdf

// A4 portrait, millimetre units. Coordinates mirror the layout the
// printed invoice has always used.
const (
	pageMarginX      = 10.0
	pageMarginTop    = 10.0
	pageMarginBottom = 10.0
	contentWidth     = 190.0

	headerBannerX = 10.0
	headerBannerY = 10.0
	headerBannerW = 190.0
	headerBannerH = 40.0

	metaX        = 14.0
	metaY        = 60.0
	metaLineStep = 10.0

	commentLineH = 6.0

	tableHeaderH = 10.0
	rowMinHeight = 25.0
	rowLineH     = 5.0
	cellPadding  = 2.0

	colNoW   = 12.0
	colPicW  = 30.0
	colDescW = 80.0
	colQtyW  = 25.0
	colAmtW  = 43.0

	totalBoxW   = 50.0
	totalBoxH   = 14.0
	totalBoxGap = 10.0

	footerBannerW   = 190.0
	footerBannerH   = 50.0
	footerBannerGap = 6.0

	bodyFontSize  = 12.0
	tableFontSize = 10.0

	// Decoded pixel dimensions map to paper at 96 dpi.
	mmPerPixel = 25.4 / 96.0
)

// fitBox scales an image box to fit inside a cell box with one uniform
// factor, never scaling up.
func fitBox(imgW, imgH, boxW, boxH float64) (float64, float64) {
	if imgW <= 0 || imgH <= 0 {
		return 0, 0
	}
	scale := boxW / imgW
	if s := boxH / imgH; s < scale {
		scale = s
	}
	if scale > 1 {
		scale = 1
	}
	return imgW * scale, imgH * scale
}
