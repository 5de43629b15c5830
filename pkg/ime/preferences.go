package ime

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// HintMode controls whether a hint class is shown on character keys.
type HintMode string

const (
	HintDisabled       HintMode = "disabled"
	HintHintPriority   HintMode = "hint_priority"
	HintAccentPriority HintMode = "accent_priority"
	HintSmartPriority  HintMode = "smart_priority"
)

// Enabled reports whether hints of this class should be drawn. Unknown
// values read from a preferences file count as disabled.
func (m HintMode) Enabled() bool {
	switch m {
	case HintHintPriority, HintAccentPriority, HintSmartPriority:
		return true
	default:
		return false
	}
}

// OneHandedMode anchors a narrowed keyboard to one edge of the screen.
type OneHandedMode string

const (
	OneHandedOff   OneHandedMode = "off"
	OneHandedStart OneHandedMode = "start"
	OneHandedEnd   OneHandedMode = "end"
)

type KeyboardPreferences struct {
	// Key margins in dp, converted to pixels at layout time.
	KeyMarginH float32 `toml:"key_margin_h"`
	KeyMarginV float32 `toml:"key_margin_v"`

	// HeightFactor scales the derived keyboard height.
	HeightFactor float32 `toml:"height_factor"`

	NumberRowHints HintMode `toml:"number_row_hints"`
	SymbolHints    HintMode `toml:"symbol_hints"`

	OneHandedMode OneHandedMode `toml:"one_handed_mode"`
}

type Preferences struct {
	Keyboard KeyboardPreferences `toml:"keyboard"`
}

func DefaultPreferences() *Preferences {
	return &Preferences{
		Keyboard: KeyboardPreferences{
			KeyMarginH:     2.0,
			KeyMarginV:     5.0,
			HeightFactor:   1.0,
			NumberRowHints: HintAccentPriority,
			SymbolHints:    HintAccentPriority,
			OneHandedMode:  OneHandedOff,
		},
	}
}

// LoadPreferences reads a TOML preferences file layered over the
// defaults. A missing file is not an error; you just get the defaults.
func LoadPreferences(path string) (*Preferences, error) {
	prefs := DefaultPreferences()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return prefs, nil
	}

	if _, err := toml.DecodeFile(path, prefs); err != nil {
		return nil, fmt.Errorf("failed to load preferences from %s: %w", path, err)
	}

	if prefs.Keyboard.HeightFactor <= 0 {
		prefs.Keyboard.HeightFactor = 1.0
	}

	return prefs, nil
}
