package theme

import "github.com/veandco/go-sdl2/sdl"

func hex(value uint32) Value {
	return ColorValue(sdl.Color{
		R: uint8((value >> 16) & 0xFF),
		G: uint8((value >> 8) & 0xFF),
		B: uint8(value & 0xFF),
		A: 255,
	})
}

// FlorisNight is the built-in dark theme and the fallback when no theme
// file is configured.
func FlorisNight() *Theme {
	return New("floris_night", map[string]map[string]Value{
		"window": {
			"colorPrimary": hex(0x4CAF50),
		},
		"keyboard": {
			"background": hex(0x21252B),
		},
		"key": {
			"background":        hex(0x3C4043),
			"backgroundPressed": hex(0x575B5F),
			"foreground":        hex(0xFFFFFF),
			"foregroundPressed": hex(0xFFFFFF),
			"showBorder":        OnOff(false),
		},
		"key:enter": {
			"background":        Reference("window", "colorPrimary"),
			"backgroundPressed": hex(0x66BB6A),
		},
		"key:shift:capslock": {
			"foreground": Reference("window", "colorPrimary"),
		},
		"smartbar": {
			"background": Reference("keyboard", "background"),
		},
		"smartbarButton": {
			"background":    hex(0x2F3338),
			"foreground":    hex(0xE8EAED),
			"foregroundAlt": hex(0x73777B),
		},
	})
}

// FlorisDay is the built-in light theme.
func FlorisDay() *Theme {
	return New("floris_day", map[string]map[string]Value{
		"window": {
			"colorPrimary": hex(0x388E3C),
		},
		"keyboard": {
			"background": hex(0xE8EAED),
		},
		"key": {
			"background":        hex(0xFFFFFF),
			"backgroundPressed": hex(0xD2D5D9),
			"foreground":        hex(0x202124),
			"foregroundPressed": hex(0x202124),
			"showBorder":        OnOff(false),
		},
		"key:enter": {
			"background":        Reference("window", "colorPrimary"),
			"backgroundPressed": hex(0x66BB6A),
			"foreground":        hex(0xFFFFFF),
			"foregroundPressed": hex(0xFFFFFF),
		},
		"key:shift:capslock": {
			"foreground": Reference("window", "colorPrimary"),
		},
		"smartbar": {
			"background": Reference("keyboard", "background"),
		},
		"smartbarButton": {
			"background":    hex(0xDADCE0),
			"foreground":    hex(0x202124),
			"foregroundAlt": hex(0x8A8F94),
		},
	})
}

// Named returns a built-in theme by name, defaulting to night.
func Named(name string) *Theme {
	switch name {
	case "floris_day", "day", "light":
		return FlorisDay()
	default:
		return FlorisNight()
	}
}
