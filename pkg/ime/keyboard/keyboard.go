package keyboard

import (
	"unicode/utf8"

	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Keyboard holds the key rows of one mode plane.
type Keyboard struct {
	Mode Mode
	Rows [][]*Key
}

func (kbd *Keyboard) RowCount() int {
	return len(kbd.Rows)
}

// Layout positions every key from the stencil. Row Y advances by the
// stencil touch height; key X accumulates scaled touch widths. Rows whose
// total width stays under the view width are centered.
func (kbd *Keyboard) Layout(desired DesiredKey, viewWidth float32) {
	insetX := desired.Visible.X - desired.Touch.X
	insetY := desired.Visible.Y - desired.Touch.Y

	y := desired.Touch.Y
	for _, row := range kbd.Rows {
		rowWidth := float32(0)
		for _, key := range row {
			rowWidth += desired.Touch.W * key.WidthFactor
		}

		x := (viewWidth - rowWidth) / 2.0
		if x < 0 {
			x = 0
		}

		for _, key := range row {
			touch := sdl.FRect{
				X: x,
				Y: y,
				W: desired.Touch.W * key.WidthFactor,
				H: desired.Touch.H,
			}
			visible := sdl.FRect{
				X: touch.X + insetX,
				Y: touch.Y + insetY,
				W: touch.W - 2.0*insetX,
				H: touch.H - 2.0*insetY,
			}

			stencil := NewDesiredKey(touch, visible)
			key.TouchBounds = stencil.Touch
			key.VisibleBounds = stencil.Visible
			key.LabelBounds = stencil.Label
			key.IconBounds = stencil.Icon

			x += touch.W
		}

		y += desired.Touch.H
	}
}

// RecomputeKeys rebuilds every key's computed data for the given state.
// Each pass starts from the template payload, so recomputation never
// compounds; case folding is locale aware.
func (kbd *Keyboard) RecomputeKeys(state State, locale language.Tag) {
	upper := cases.Upper(locale)

	for _, row := range kbd.Rows {
		for _, key := range row {
			data := key.Data
			if alt, ok := key.Alternates[state.Variation]; ok {
				data = alt
			}

			if state.Uppercased() && data.Type == KeyTypeCharacter && data.Code > CodeSpace {
				data.Label = upper.String(data.Label)
				if r, size := utf8.DecodeRuneInString(data.Label); size == len(data.Label) {
					data.Code = int32(r)
				}
			}

			key.Computed = data
		}
	}
}

// KeyAt returns the key whose touch bounds contain the point, or nil.
func (kbd *Keyboard) KeyAt(x, y float32) *Key {
	for _, row := range kbd.Rows {
		for _, key := range row {
			if pointInFRect(x, y, key.TouchBounds) {
				return key
			}
		}
	}
	return nil
}
