package internal

// referenceWidth is the display width the layout constants were tuned on.
const referenceWidth int32 = 1024

func scaleFactorFor(screenWidth int32) float32 {
	scaleFactor := float32(screenWidth) / float32(referenceWidth)

	// Damp growth on larger screens to reduce scaling growth
	if screenWidth > referenceWidth {
		scaleFactor = 1.0 + (scaleFactor-1.0)*0.75 // 75% of the growth above 1x
	}

	return scaleFactor
}

// GetScaleFactor returns the scale factor for the current window width.
// Before a window exists the factor is 1, so pure geometry code stays
// usable without SDL.
func GetScaleFactor() float32 {
	win := GetWindow()
	if win == nil {
		return 1.0
	}
	return scaleFactorFor(win.GetWidth())
}

// DpToPx converts a density-independent dimension to device pixels using
// the current scale factor.
func DpToPx(dp float32) float32 {
	return dp * GetScaleFactor()
}
