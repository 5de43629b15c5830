package keyboard

import (
	"unicode/utf8"

	"github.com/veandco/go-sdl2/sdl"
)

// Key is one concrete key of a keyboard. Data is the template payload;
// Computed is what the current caps/variation state turned it into.
type Key struct {
	Data       KeyData
	Alternates map[KeyVariation]KeyData
	NumberHint KeyData
	SymbolHint KeyData

	Computed KeyData

	// WidthFactor scales the stencil touch width; 1 is a plain grid cell.
	WidthFactor float32

	Pressed bool
	Enabled bool

	TouchBounds   sdl.FRect
	VisibleBounds sdl.FRect
	LabelBounds   sdl.FRect
	IconBounds    sdl.FRect
}

func NewKey(data KeyData) *Key {
	return &Key{
		Data:        data,
		Computed:    data,
		WidthFactor: 1.0,
		Enabled:     true,
	}
}

// CharKey builds a printable character key. The code is the label's first
// code point.
func CharKey(label string) *Key {
	r, _ := utf8.DecodeRuneInString(label)
	return NewKey(KeyData{Type: KeyTypeCharacter, Code: int32(r), Label: label})
}

// NumKey builds a digit key.
func NumKey(label string) *Key {
	r, _ := utf8.DecodeRuneInString(label)
	return NewKey(KeyData{Type: KeyTypeNumeric, Code: int32(r), Label: label})
}

// FuncKey builds a command key. The label scopes theme lookups; what the
// key shows comes from the view's code-to-asset table.
func FuncKey(keyType KeyType, code int32, label string, widthFactor float32) *Key {
	key := NewKey(KeyData{Type: keyType, Code: code, Label: label})
	key.WidthFactor = widthFactor
	return key
}

// WithNumberHint attaches a number-row popup hint.
func (key *Key) WithNumberHint(label string) *Key {
	r, _ := utf8.DecodeRuneInString(label)
	key.NumberHint = KeyData{Type: KeyTypeNumeric, Code: int32(r), Label: label}
	return key
}

// WithSymbolHint attaches a symbol popup hint.
func (key *Key) WithSymbolHint(label string) *Key {
	r, _ := utf8.DecodeRuneInString(label)
	key.SymbolHint = KeyData{Type: KeyTypeCharacter, Code: int32(r), Label: label}
	return key
}

// WithAlternate attaches a variation-specific payload, e.g. "@" on the
// comma key for email fields.
func (key *Key) WithAlternate(variation KeyVariation, label string) *Key {
	if key.Alternates == nil {
		key.Alternates = make(map[KeyVariation]KeyData)
	}
	r, _ := utf8.DecodeRuneInString(label)
	key.Alternates[variation] = KeyData{Type: key.Data.Type, Code: int32(r), Label: label}
	return key
}

// WithWidth overrides the stencil width factor.
func (key *Key) WithWidth(factor float32) *Key {
	key.WidthFactor = factor
	return key
}

func pointInFRect(x, y float32, r sdl.FRect) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
