package ime

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/Hayleia/florisboard/pkg/ime/internal"
)

// GlyphMeasurer reports the rendered extent of text at a font size.
// LabelPaint implements it with the loaded font faces; tests substitute
// arithmetic fakes.
type GlyphMeasurer interface {
	MeasureGlyphs(text string, size int) (w, h int)
}

// LabelPaint draws key captions with the UI font, or the symbol font
// for icon glyphs, at a mutable point size.
type LabelPaint struct {
	symbol bool
	size   int
}

func NewLabelPaint() *LabelPaint {
	return &LabelPaint{}
}

func NewSymbolPaint() *LabelPaint {
	return &LabelPaint{symbol: true}
}

func (p *LabelPaint) MeasureGlyphs(text string, size int) (int, int) {
	if size <= 0 || text == "" || internal.Book == nil {
		return 0, 0
	}

	var font *ttf.Font
	if p.symbol {
		font = internal.Book.SymbolFace(size)
	} else {
		font = internal.Book.Face(size)
	}
	if font == nil {
		return 0, 0
	}

	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return 0, 0
	}
	return w, h
}

// FitTo resizes the paint so sample fills box, then applies multiplier.
// The multiplier scales the fitted size after the search, so a reduced
// space-bar label never changes what "fits" means for everyone else.
func (p *LabelPaint) FitTo(boxW, boxH float32, sample string, multiplier float32) {
	size := FitFontSize(p, sample, boxW, boxH)
	p.size = int(float32(size) * multiplier)
}

func (p *LabelPaint) SetSize(size int) {
	p.size = size
}

func (p *LabelPaint) Size() int {
	return p.size
}

// DrawCentered renders text centered inside bounds. Render failures
// (zero-width text, missing face) skip the draw.
func (p *LabelPaint) DrawCentered(renderer *sdl.Renderer, text string, bounds sdl.FRect, color sdl.Color) {
	if renderer == nil || text == "" || p.size <= 0 || internal.Book == nil {
		return
	}

	var font *ttf.Font
	if p.symbol {
		font = internal.Book.SymbolFace(p.size)
	} else {
		font = internal.Book.Face(p.size)
	}
	if font == nil {
		return
	}

	textSurface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return
	}
	defer textSurface.Free()

	textTexture, err := renderer.CreateTextureFromSurface(textSurface)
	if err != nil {
		return
	}
	defer textTexture.Destroy()

	textRect := sdl.FRect{
		X: bounds.X + (bounds.W-float32(textSurface.W))/2,
		Y: bounds.Y + (bounds.H-float32(textSurface.H))/2,
		W: float32(textSurface.W),
		H: float32(textSurface.H),
	}
	renderer.CopyF(textTexture, nil, &textRect)
}
