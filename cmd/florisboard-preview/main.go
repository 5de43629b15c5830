package main

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/text/language"

	"github.com/Hayleia/florisboard/pkg/ime"
	"github.com/Hayleia/florisboard/pkg/ime/keyboard"
	"github.com/Hayleia/florisboard/pkg/ime/theme"
)

// smartbarHeight is the bar height offered to smartbar layouts.
const smartbarHeight = 72

func main() {
	Execute()
}

func keyboardFor(name string) (*keyboard.Keyboard, error) {
	switch name {
	case "characters":
		return keyboard.DefaultCharacters(), nil
	case "numeric":
		return keyboard.DefaultNumeric(), nil
	case "phone":
		return keyboard.DefaultPhone(), nil
	case "smartbar":
		return keyboard.DefaultSmartbarActions(), nil
	default:
		return nil, fmt.Errorf("unknown keyboard %q (want characters, numeric, phone or smartbar)", name)
	}
}

// keyboardForCode swaps layouts when a view-switch key is tapped.
func keyboardForCode(code int32) *keyboard.Keyboard {
	switch code {
	case keyboard.CodeViewCharacters:
		return keyboard.DefaultCharacters()
	case keyboard.CodeViewNumeric, keyboard.CodeViewNumericAdvanced:
		return keyboard.DefaultNumeric()
	case keyboard.CodeViewPhone:
		return keyboard.DefaultPhone()
	default:
		return nil
	}
}

func run() error {
	kbd, err := keyboardFor(keyboardName)
	if err != nil {
		return err
	}

	prefs, err := ime.LoadPreferences(prefsFile)
	if err != nil {
		return err
	}

	th, err := ime.LoadTheme(themeFile)
	if err != nil {
		return err
	}

	locale, err := language.Parse(localeCode)
	if err != nil {
		return fmt.Errorf("failed to parse locale %q: %w", localeCode, err)
	}

	ime.Init(ime.Options{
		WindowTitle:    "FlorisBoard Preview",
		FontPath:       fontPath,
		SymbolFontPath: symbolFont,
		Locale:         localeCode,
		LogFilename:    "florisboard-preview.log",
	})
	defer ime.Close()

	var icons *ime.IconSet
	if iconPackDir != "" {
		icons, err = ime.LoadIconPack(ime.GetWindow().Renderer, iconPackDir)
		if err != nil {
			return err
		}
		defer icons.Destroy()
	}

	view := ime.NewKeyboardView(ime.KeyboardViewOptions{
		Theme:       th,
		Preferences: prefs,
		Icons:       icons,
		Locale:      locale,
		Smartbar:    keyboardName == "smartbar",
	})
	view.SetKeyboard(kbd)

	if hardKeysDev != "" {
		watcher, err := ime.WatchHardKeys(hardKeysDev, view)
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	window := ime.GetWindow()
	renderer := window.Renderer

	backgroundAttr := theme.KeyboardBackground
	if keyboardName == "smartbar" {
		backgroundAttr = theme.SmartbarBackground
	}
	background := th.Resolve(backgroundAttr, "", "").ToColor()

	for running := true; running; {
		winW := float32(window.GetWidth())
		winH := float32(window.GetHeight())

		availH := winH
		if keyboardName == "smartbar" {
			availH = smartbarHeight
		}
		_, kbdH := view.Measure(winW, availH)
		viewport := sdl.Rect{X: 0, Y: int32(winH - kbdH), W: int32(winW), H: int32(kbdH)}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					running = false
				}
			case *sdl.MouseButtonEvent:
				handlePointer(view, e, viewport)
			}
		}

		view.Layout(winW, kbdH)

		renderer.SetDrawColor(background.R, background.G, background.B, background.A)
		renderer.Clear()
		window.RenderBackground()

		renderer.SetViewport(&viewport)
		view.Draw(renderer)
		renderer.SetViewport(nil)

		renderer.Present()
		sdl.Delay(16)
	}

	return nil
}

// handlePointer hit-tests against the previous frame's layout, which is
// current by the time events arrive.
func handlePointer(view *ime.KeyboardView, e *sdl.MouseButtonEvent, viewport sdl.Rect) {
	x := float32(e.X - viewport.X)
	y := float32(e.Y - viewport.Y)

	key := view.KeyAt(x, y)
	if key == nil {
		return
	}

	switch e.Type {
	case sdl.MOUSEBUTTONDOWN:
		key.Pressed = true
	case sdl.MOUSEBUTTONUP:
		key.Pressed = false
		tapKey(view, key)
	}
}

func tapKey(view *ime.KeyboardView, key *keyboard.Key) {
	switch key.Computed.Code {
	case keyboard.CodeShift:
		state := view.State()
		state.Caps = !state.Caps
		view.NotifyStateChanged(state)
	case keyboard.CodeShiftLock:
		state := view.State()
		state.CapsLock = !state.CapsLock
		view.NotifyStateChanged(state)
	default:
		if next := keyboardForCode(key.Computed.Code); next != nil {
			view.SetKeyboard(next)
		}
	}
}
