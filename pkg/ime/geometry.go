package ime

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Hayleia/florisboard/pkg/ime/internal"
	"github.com/Hayleia/florisboard/pkg/ime/keyboard"
)

// Smartbar keys keep fixed margins; normal keys take theirs from the
// user preferences.
const (
	smartbarKeyMarginHDp = 6.0
	smartbarKeyMarginVDp = 4.0
)

type geometryParams struct {
	ViewWidth  float32
	ViewHeight float32
	RowCount   int
	Smartbar   bool
	ExtraSpace bool
	MarginH    float32
	MarginV    float32
}

// computeDesiredKey builds the shared key template every real key is
// positioned from. The touch column is a fixed fraction of the view
// width (a sixth for the smartbar, a tenth otherwise) regardless of how
// many keys a row actually holds; per-key widths are the keyboard
// model's business. With the additional-space flag set the row height
// divisor is capped at 5.0 so short keyboards gain breathing room
// without starving tall ones.
func computeDesiredKey(p geometryParams) keyboard.DesiredKey {
	rowCount := p.RowCount
	if rowCount < 1 {
		rowCount = 1
	}

	var touch sdl.FRect
	if p.Smartbar {
		touch.W = p.ViewWidth / 6.0
		touch.H = p.ViewHeight
	} else {
		touch.W = p.ViewWidth / 10.0
		if p.ExtraSpace {
			touch.H = p.ViewHeight / min(float32(rowCount)+0.5, 5.0)
		} else {
			touch.H = p.ViewHeight / float32(rowCount)
		}
	}

	marginV := p.MarginV
	if p.Smartbar {
		marginV *= 0.75
	}

	visible := sdl.FRect{
		X: touch.X + p.MarginH,
		Y: touch.Y + marginV,
		W: touch.W - 2*p.MarginH,
		H: touch.H - 2*marginV,
	}

	return keyboard.NewDesiredKey(touch, visible)
}

// keyMargins returns the key margins in pixels for the given view kind.
func keyMargins(smartbar bool, prefs *Preferences) (marginH, marginV float32) {
	if smartbar {
		return internal.DpToPx(smartbarKeyMarginHDp), internal.DpToPx(smartbarKeyMarginVDp)
	}
	return internal.DpToPx(prefs.Keyboard.KeyMarginH), internal.DpToPx(prefs.Keyboard.KeyMarginV)
}
