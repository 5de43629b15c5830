package ime

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Hayleia/florisboard/pkg/ime/keyboard"
	"github.com/Hayleia/florisboard/pkg/ime/theme"
)

// ThemeResolver resolves a themed attribute for a key label and state
// qualifier. *theme.Theme satisfies it; tests substitute recording
// fakes.
type ThemeResolver interface {
	Resolve(attr theme.Attr, label, qualifier string) theme.Value
}

// RenderState is everything needed to paint one key. Built fresh per
// key on every draw pass, never persisted.
type RenderState struct {
	Background sdl.Color
	Foreground sdl.Color
	ShowBorder bool
	KeyContent
}

// resolveKeyVisuals picks the background, foreground and border flag
// for one key. The three view kinds are mutually exclusive branches;
// theme lookups always use the key's base label, so selectors like
// "key:a" keep matching when caps rewrites the computed label to "A".
func (v *KeyboardView) resolveKeyVisuals(key *keyboard.Key, state keyboard.State) RenderState {
	label := key.Data.Label
	pressed := key.Pressed && key.Enabled

	var rs RenderState
	switch {
	case v.placeholder:
		rs.ShowBorder = v.theme.Resolve(theme.KeyShowBorder, label, "").IsOn()
		if pressed {
			rs.Background = v.theme.Resolve(theme.KeyBackgroundPressed, label, "").ToColor()
			rs.Foreground = v.theme.Resolve(theme.KeyForegroundPressed, label, "").ToColor()
		} else {
			if rs.ShowBorder {
				rs.Background = v.theme.Resolve(theme.KeyBackground, label, "").ToColor()
			} else {
				rs.Background = v.theme.Resolve(theme.SmartbarButtonBackground, label, "").ToColor()
			}
			rs.Foreground = v.theme.Resolve(theme.KeyForeground, label, "").ToColor()
		}

	case v.smartbar:
		rs.ShowBorder = false
		if pressed {
			rs.Background = v.theme.Resolve(theme.KeyBackgroundPressed, label, "").ToColor()
			rs.Foreground = v.theme.Resolve(theme.KeyForegroundPressed, label, "").ToColor()
		} else {
			rs.Background = v.theme.Resolve(theme.SmartbarButtonBackground, label, "").ToColor()
			if key.Enabled {
				rs.Foreground = v.theme.Resolve(theme.SmartbarButtonForeground, label, "").ToColor()
			} else {
				rs.Foreground = v.theme.Resolve(theme.SmartbarButtonForegroundAlt, label, "").ToColor()
			}
		}

	default:
		qualifier := ""
		if state.CapsLock {
			qualifier = "capslock"
		} else if state.Caps {
			qualifier = "caps"
		}
		rs.ShowBorder = v.theme.Resolve(theme.KeyShowBorder, label, qualifier).IsOn()
		if pressed {
			rs.Background = v.theme.Resolve(theme.KeyBackgroundPressed, label, qualifier).ToColor()
			rs.Foreground = v.theme.Resolve(theme.KeyForegroundPressed, label, qualifier).ToColor()
		} else {
			rs.Background = v.theme.Resolve(theme.KeyBackground, label, qualifier).ToColor()
			rs.Foreground = v.theme.Resolve(theme.KeyForeground, label, qualifier).ToColor()
		}
	}

	return rs
}
