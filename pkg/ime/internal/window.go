package internal

import (
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

var window *Window

type Window struct {
	Window            *sdl.Window
	Renderer          *sdl.Renderer
	Title             string
	Background        *sdl.Texture
	DisplayBackground bool
	backgroundPath    string
}

func initWindow(title string, displayBackground bool, backgroundPath string) *Window {
	displayIndex := 0
	displayMode, err := sdl.GetCurrentDisplayMode(displayIndex)

	if err != nil {
		GetInternalLogger().Error("Failed to Get display mode!", "error", err)
	}

	return initWindowWithSize(title, displayMode.W, displayMode.H, displayBackground, backgroundPath)
}

func initWindowWithSize(title string, width, height int32, displayBackground bool, backgroundPath string) *Window {
	x, y := int32(0), int32(0)

	if IsDevMode() {
		x, y = int32(50), int32(50)
		if v := os.Getenv("WINDOW_WIDTH"); v != "" {
			if n, err := strconv.ParseInt(v, 10, 32); err == nil {
				width = int32(n)
			} else {
				GetInternalLogger().Warn("Invalid WINDOW_WIDTH; using default", "value", v, "error", err)
				width = 1024
			}
		} else {
			width = 1024
		}

		if v := os.Getenv("WINDOW_HEIGHT"); v != "" {
			if n, err := strconv.ParseInt(v, 10, 32); err == nil {
				height = int32(n)
			} else {
				GetInternalLogger().Warn("Invalid WINDOW_HEIGHT; using default", "value", v, "error", err)
				height = 768
			}
		} else {
			height = 768
		}
	}

	var windowFlags uint32
	windowFlags = sdl.WINDOW_SHOWN

	if IsDevMode() {
		windowFlags = windowFlags | sdl.WINDOW_BORDERLESS
	}

	GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	win, err := sdl.CreateWindow(title, x, y, width, height, windowFlags)
	if err != nil {
		panic(err)
	}

	renderer, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		GetInternalLogger().Error("Failed to create any renderer!", "final_error", err)
		os.Exit(1)
	}

	renderer.SetLogicalSize(width, height)

	w := &Window{
		Window:            win,
		Renderer:          renderer,
		Title:             title,
		DisplayBackground: displayBackground,
		backgroundPath:    backgroundPath,
	}

	w.loadBackground()

	return w
}

func (window *Window) loadBackground() {
	if !window.DisplayBackground || window.backgroundPath == "" {
		window.Background = nil
		return
	}

	img.Init(img.INIT_PNG | img.INIT_JPG)

	bgTexture, err := img.LoadTexture(window.Renderer, window.backgroundPath)
	if err == nil {
		window.Background = bgTexture
	} else {
		GetInternalLogger().Debug("No usable wallpaper", "path", window.backgroundPath, "error", err)
		window.Background = nil
	}
}

func (window *Window) closeWindow() {
	if window.Background != nil {
		window.Background.Destroy()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()

	img.Quit()
}

func GetWindow() *Window {
	return window
}

func (window *Window) GetWidth() int32 {
	w, _ := window.Window.GetSize()
	return w
}

func (window *Window) GetHeight() int32 {
	_, h := window.Window.GetSize()
	return h
}

func (window *Window) RenderBackground() {
	if window.Background != nil {
		window.Renderer.Copy(window.Background, nil, &sdl.Rect{X: 0, Y: 0, W: window.GetWidth(), H: window.GetHeight()})
	}
}
