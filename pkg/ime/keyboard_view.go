package ime

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
	"golang.org/x/text/language"

	"github.com/Hayleia/florisboard/pkg/ime/internal"
	"github.com/Hayleia/florisboard/pkg/ime/keyboard"
	"github.com/Hayleia/florisboard/pkg/ime/theme"
)

const (
	// keyboardHeightBaseRatio sizes a normal keyboard against the
	// display's shorter edge before the user height factor applies.
	keyboardHeightBaseRatio = 0.40

	// previewHeightRatio shrinks preview views relative to the height
	// the host hands them.
	previewHeightRatio = 0.90

	// spaceLabelMultiplier keeps long locale names from dominating the
	// space bar.
	spaceLabelMultiplier = 0.90

	keyCornerRadiusDp = 6.0
)

// KeyboardViewOptions configures a KeyboardView at construction. The
// view kind flags are immutable afterwards.
type KeyboardViewOptions struct {
	Theme       ThemeResolver
	Preferences *Preferences
	Icons       *IconSet
	Locale      language.Tag

	Smartbar    bool
	Preview     bool
	Placeholder bool

	// GiveAdditionalSpace relaxes the row-height divisor so short
	// keyboards get taller keys.
	GiveAdditionalSpace bool
}

// KeyboardView lays out and paints one keyboard. Caps and variation
// state arrive via notification calls, possibly from other goroutines
// (a hardware key watcher), and are folded in on the next Layout;
// everything else runs on the render goroutine.
type KeyboardView struct {
	theme       ThemeResolver
	prefs       *Preferences
	icons       *IconSet
	smartbar    bool
	preview     bool
	placeholder bool
	extraSpace  bool

	kbd     *keyboard.Keyboard
	desired keyboard.DesiredKey

	caps      atomic.Bool
	capsLock  atomic.Bool
	variation atomic.Int32
	recompute atomic.Bool

	editor EditorInfo
	locale language.Tag

	labelPaint  *LabelPaint
	hintPaint   *LabelPaint
	symbolPaint *LabelPaint
}

func NewKeyboardView(opts KeyboardViewOptions) *KeyboardView {
	if opts.Theme == nil {
		opts.Theme = theme.FlorisNight()
	}
	if opts.Preferences == nil {
		opts.Preferences = DefaultPreferences()
	}

	return &KeyboardView{
		theme:       opts.Theme,
		prefs:       opts.Preferences,
		icons:       opts.Icons,
		smartbar:    opts.Smartbar,
		preview:     opts.Preview,
		placeholder: opts.Placeholder,
		extraSpace:  opts.GiveAdditionalSpace,
		locale:      opts.Locale,
		labelPaint:  NewLabelPaint(),
		hintPaint:   NewLabelPaint(),
		symbolPaint: NewSymbolPaint(),
	}
}

// SetKeyboard attaches the keyboard model and requests a key
// recompute for the next layout pass.
func (v *KeyboardView) SetKeyboard(kbd *keyboard.Keyboard) {
	v.kbd = kbd
	v.recompute.Store(true)
}

// SetKeyboardForState attaches a keyboard model together with the
// interaction state it should be computed against.
func (v *KeyboardView) SetKeyboardForState(kbd *keyboard.Keyboard, state keyboard.State) {
	v.kbd = kbd
	v.storeState(state)
}

func (v *KeyboardView) Keyboard() *keyboard.Keyboard {
	return v.kbd
}

// NotifyStateChanged records a new interaction state and requests a
// recompute. Safe to call from any goroutine.
func (v *KeyboardView) NotifyStateChanged(state keyboard.State) {
	v.storeState(state)
}

func (v *KeyboardView) storeState(state keyboard.State) {
	v.caps.Store(state.Caps)
	v.capsLock.Store(state.CapsLock)
	v.variation.Store(int32(state.Variation))
	v.recompute.Store(true)
}

// SetKeyVariation records the active input field class (email, URI,
// password) and requests a recompute. Safe to call from any goroutine.
func (v *KeyboardView) SetKeyVariation(variation keyboard.KeyVariation) {
	v.variation.Store(int32(variation))
	v.recompute.Store(true)
}

// State snapshots the interaction state the next recompute will use.
func (v *KeyboardView) State() keyboard.State {
	return keyboard.State{
		Caps:      v.caps.Load(),
		CapsLock:  v.capsLock.Load(),
		Variation: keyboard.KeyVariation(v.variation.Load()),
	}
}

func (v *KeyboardView) SetEditorInfo(editor EditorInfo) {
	v.editor = editor
}

func (v *KeyboardView) SetInputLocale(locale language.Tag) {
	v.locale = locale
}

// KeyAt hit-tests the laid-out keyboard, returning nil when no key
// covers the point or no keyboard is attached.
func (v *KeyboardView) KeyAt(x, y float32) *keyboard.Key {
	if v.kbd == nil {
		return nil
	}
	return v.kbd.KeyAt(x, y)
}

// Measure answers the size the view wants inside the available box.
// Smartbar and preview views take the height the host offers (preview
// shrunk by a fixed ratio); normal views derive theirs from the
// display's shorter edge and the height-factor preference.
func (v *KeyboardView) Measure(availW, availH float32) (float32, float32) {
	h := availH
	if !v.smartbar && !v.preview {
		edge := float32(0)
		if win := internal.GetWindow(); win != nil {
			edge = min(float32(win.GetWidth()), float32(win.GetHeight()))
		}
		if edge <= 0 {
			edge = availH
		}
		h = edge * keyboardHeightBaseRatio * v.prefs.Keyboard.HeightFactor
		if availH > 0 && h > availH {
			h = availH
		}
	}
	if v.preview {
		h *= previewHeightRatio
	}
	return availW, h
}

// Layout recomputes the shared key template for the given view size and
// has the keyboard model position every key from it. A recompute
// request raised since the last pass is consumed exactly once, after
// the keys have their new bounds.
func (v *KeyboardView) Layout(width, height float32) {
	if v.kbd == nil {
		internal.GetInternalLogger().Debug("Keyboard view layout skipped, no keyboard attached")
		return
	}

	marginH, marginV := keyMargins(v.smartbar, v.prefs)
	v.desired = computeDesiredKey(geometryParams{
		ViewWidth:  width,
		ViewHeight: height,
		RowCount:   v.kbd.RowCount(),
		Smartbar:   v.smartbar,
		ExtraSpace: v.extraSpace,
		MarginH:    marginH,
		MarginV:    marginV,
	})
	v.kbd.Layout(v.desired, width)

	if v.recompute.CompareAndSwap(true, false) {
		v.kbd.RecomputeKeys(v.State(), v.locale)
	}
}

// Draw paints every key. The three paints are fitted once per frame
// against the shared template boxes, then reused for all keys.
func (v *KeyboardView) Draw(renderer *sdl.Renderer) {
	if renderer == nil {
		internal.GetInternalLogger().Debug("Keyboard view draw skipped, no renderer")
		return
	}
	if v.kbd == nil {
		internal.GetInternalLogger().Debug("Keyboard view draw skipped, no keyboard attached")
		return
	}

	v.labelPaint.FitTo(v.desired.Label.W, v.desired.Label.H, "X", 1.0)
	v.hintPaint.FitTo(v.desired.Label.W/2, v.desired.Label.H/2, "?", 1.0)
	v.symbolPaint.FitTo(v.desired.Icon.W, v.desired.Icon.H, iconReturn.Glyph, 1.0)

	state := v.State()
	for _, row := range v.kbd.Rows {
		for _, key := range row {
			v.drawKey(renderer, key, state)
		}
	}
}

func (v *KeyboardView) drawKey(renderer *sdl.Renderer, key *keyboard.Key, state keyboard.State) {
	rs := v.resolveKeyVisuals(key, state)
	rs.KeyContent = resolveKeyContent(key, v.kbd.Mode, state, v.prefs, v.editor, v.locale)

	rect := toRect(key.VisibleBounds)
	radius := int32(internal.DpToPx(keyCornerRadiusDp))
	if radius > rect.H/2 {
		radius = rect.H / 2
	}

	if rs.Background.A > 0 {
		internal.DrawRoundedRect(renderer, &rect, radius, rs.Background)
	}
	if rs.ShowBorder {
		internal.DrawRoundedRectOutline(renderer, &rect, radius, rs.Foreground)
	}

	if !rs.Icon.IsZero() {
		if texture := v.icons.Texture(rs.Icon.Name); texture != nil {
			texture.SetColorMod(rs.Foreground.R, rs.Foreground.G, rs.Foreground.B)
			texture.SetAlphaMod(rs.Foreground.A)
			renderer.CopyF(texture, nil, &key.IconBounds)
		} else {
			v.symbolPaint.DrawCentered(renderer, rs.Icon.Glyph, key.IconBounds, rs.Foreground)
		}
	}

	if rs.Label != "" {
		size := v.labelPaint.Size()
		if key.Computed.Code == keyboard.CodeSpace {
			v.labelPaint.SetSize(int(float32(size) * spaceLabelMultiplier))
		}
		v.labelPaint.DrawCentered(renderer, rs.Label, key.LabelBounds, rs.Foreground)
		v.labelPaint.SetSize(size)
	}

	if rs.Hint != "" {
		hintBox := sdl.FRect{
			X: key.LabelBounds.X + key.LabelBounds.W/2,
			Y: key.LabelBounds.Y,
			W: key.LabelBounds.W / 2,
			H: key.LabelBounds.H / 2,
		}
		v.hintPaint.DrawCentered(renderer, rs.Hint, hintBox, rs.Foreground)
	}
}

func toRect(f sdl.FRect) sdl.Rect {
	return sdl.Rect{X: int32(f.X), Y: int32(f.Y), W: int32(f.W), H: int32(f.H)}
}
