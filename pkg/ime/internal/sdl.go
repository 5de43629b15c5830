package internal

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Init brings up SDL, the window and the font book. Must be called on the
// main thread before any view exists.
func Init(title string, displayBackground bool, backgroundPath, fontPath, symbolFontPath string) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		panic(err)
	}

	if err := ttf.Init(); err != nil {
		panic(err)
	}

	if !IsDevMode() {
		sdl.ShowCursor(sdl.DISABLE)
	}

	window = initWindow(title, displayBackground, backgroundPath)

	initFonts(fontPath, symbolFontPath)
}

func SDLCleanup() {
	closeFonts()

	if window != nil {
		window.closeWindow()
		window = nil
	}

	ttf.Quit()
	sdl.Quit()

	CloseLogger()
}
