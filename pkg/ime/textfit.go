package ime

// maxFitSize bounds the growth stage so a measurer that never reports a
// larger extent (no font loaded) cannot spin the search forever.
const maxFitSize = 10000

// FitFontSize searches for the largest integer point size at which
// sample fits strictly inside the box on both axes. The search is a
// two-stage walk, not a binary search: grow in +10 steps from zero
// until the sample no longer fits, then shrink in -1 steps until it
// fits again. Legacy renderers sized text exactly this way, and the
// coarse-then-fine walk has to be matched step for step for visual
// parity, strict inequality included.
//
// Measurers must report a zero extent for sizes <= 0. A zero or
// negative box yields size 0.
func FitFontSize(measurer GlyphMeasurer, sample string, boxW, boxH float32) int {
	if boxW <= 0 || boxH <= 0 {
		return 0
	}

	size := 0
	for {
		size += 10
		if size > maxFitSize {
			return 0
		}
		w, h := measurer.MeasureGlyphs(sample, size)
		if !(float32(w) < boxW && float32(h) < boxH) {
			break
		}
	}

	for size > 0 {
		size--
		w, h := measurer.MeasureGlyphs(sample, size)
		if float32(w) < boxW && float32(h) < boxH {
			break
		}
	}
	return size
}
