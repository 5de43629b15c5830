package internal

import (
	"os"

	"github.com/veandco/go-sdl2/ttf"
)

// FontBook opens TTF faces on demand and caches them per point size. The
// text-fit sizer probes many sizes during a layout pass, so faces must be
// reused across frames rather than reopened.
type FontBook struct {
	path       string
	symbolPath string
	faces      map[faceKey]*ttf.Font
}

type faceKey struct {
	symbol bool
	size   int
}

var Book *FontBook

func initFonts(fontPath, symbolFontPath string) {
	if fontPath == "" {
		fontPath = os.Getenv("FALLBACK_FONT")
	}
	if symbolFontPath == "" {
		// Nerd-font glyphs ship in the main face on most devices.
		symbolFontPath = fontPath
	}

	Book = &FontBook{
		path:       fontPath,
		symbolPath: symbolFontPath,
		faces:      make(map[faceKey]*ttf.Font),
	}

	// Fail fast on a bad path rather than on the first draw.
	if Book.Face(16) == nil {
		GetInternalLogger().Error("Failed to load font", "path", fontPath)
		os.Exit(1)
	}
}

// Face returns the main face at the given point size, or nil when the size
// is non-positive or the font cannot be opened.
func (b *FontBook) Face(size int) *ttf.Font {
	return b.face(faceKey{symbol: false, size: size})
}

// SymbolFace returns the icon-glyph face at the given point size.
func (b *FontBook) SymbolFace(size int) *ttf.Font {
	return b.face(faceKey{symbol: true, size: size})
}

func (b *FontBook) face(key faceKey) *ttf.Font {
	if key.size <= 0 {
		return nil
	}

	if font, ok := b.faces[key]; ok {
		return font
	}

	path := b.path
	if key.symbol {
		path = b.symbolPath
	}

	font, err := ttf.OpenFont(path, key.size)
	if err != nil {
		GetInternalLogger().Debug("Failed to open font face", "path", path, "size", key.size, "error", err)
		return nil
	}

	b.faces[key] = font
	return font
}

func (b *FontBook) Close() {
	for _, font := range b.faces {
		font.Close()
	}
	b.faces = make(map[faceKey]*ttf.Font)
}

func closeFonts() {
	if Book != nil {
		Book.Close()
		Book = nil
	}
}
