package ime

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/Hayleia/florisboard/pkg/ime/i18n"
	"github.com/Hayleia/florisboard/pkg/ime/keyboard"
)

// KeyContent is what gets drawn on a key face: a label, an optional
// secondary hint, or an icon. At most one of label/icon is ever set.
type KeyContent struct {
	Label string
	Hint  string
	Icon  Icon
}

// keyIcons maps command key codes straight to their icons.
var keyIcons = map[int32]Icon{
	keyboard.CodeDelete:               iconBackspace,
	keyboard.CodeDeleteWord:           iconBackspaceWord,
	keyboard.CodeArrowDown:            iconArrowDown,
	keyboard.CodeArrowLeft:            iconArrowLeft,
	keyboard.CodeArrowRight:           iconArrowRight,
	keyboard.CodeArrowUp:              iconArrowUp,
	keyboard.CodeClipboardCopy:        iconContentCopy,
	keyboard.CodeClipboardCut:         iconContentCut,
	keyboard.CodeClipboardPaste:       iconContentPaste,
	keyboard.CodeClipboardSelect:      iconSelect,
	keyboard.CodeClipboardSelectAll:   iconSelectAll,
	keyboard.CodeSwitchToMediaContext: iconEmoticon,
	keyboard.CodeSwitchToTextContext:  iconKeyboard,
	keyboard.CodeLanguageSwitch:       iconTranslate,
}

// keyMessages maps view-switch and phone command codes to localized
// caption messages.
var keyMessages = map[int32]*i18n.Message{
	keyboard.CodeViewCharacters:      {ID: "key_view_characters", Other: "ABC"},
	keyboard.CodeViewNumeric:         {ID: "key_view_numeric", Other: "123"},
	keyboard.CodeViewNumericAdvanced: {ID: "key_view_numeric_advanced", Other: "123"},
	keyboard.CodeViewPhone:           {ID: "key_view_phone", Other: "123"},
	keyboard.CodeViewPhone2:          {ID: "key_view_phone2", Other: "*#"},
	keyboard.CodeViewSymbols:         {ID: "key_view_symbols", Other: "?123"},
	keyboard.CodeViewSymbols2:        {ID: "key_view_symbols2", Other: "=\\<"},
	keyboard.CodePhonePause:          {ID: "key_phone_pause", Other: "Pause"},
	keyboard.CodePhoneWait:           {ID: "key_phone_wait", Other: "Wait"},
}

// enterActionIcons maps advertised editor actions to enter-key icons.
// None and unspecified fall through to the generic return icon.
var enterActionIcons = map[EditorAction]Icon{
	EditorActionDone:     iconCheck,
	EditorActionGo:       iconArrowRight,
	EditorActionNext:     iconChevronRight,
	EditorActionPrevious: iconChevronLeft,
	EditorActionSearch:   iconMagnify,
	EditorActionSend:     iconSend,
}

// resolveKeyContent decides what one key shows for the current mode,
// preferences, editor context and input locale.
func resolveKeyContent(key *keyboard.Key, mode keyboard.Mode, state keyboard.State, prefs *Preferences, editor EditorInfo, locale language.Tag) KeyContent {
	var content KeyContent
	data := key.Computed

	switch data.Code {
	case keyboard.CodeEnter:
		// A suppressed action always collapses to the plain return
		// icon, no matter what the editor advertises.
		if editor.SuppressAction {
			content.Icon = iconReturn
			return content
		}
		if icon, ok := enterActionIcons[editor.Action]; ok {
			content.Icon = icon
		} else {
			content.Icon = iconReturn
		}
		return content

	case keyboard.CodeShift, keyboard.CodeShiftLock:
		if state.CapsLock {
			content.Icon = iconCapsLock
		} else {
			content.Icon = iconShift
		}
		return content

	case keyboard.CodeSpace:
		switch mode {
		case keyboard.ModeNumeric, keyboard.ModeNumericAdvanced, keyboard.ModePhone, keyboard.ModePhone2:
			content.Icon = iconSpaceBar
		case keyboard.ModeCharacters:
			if locale != language.Und {
				content.Label = display.Self.Name(locale)
			}
		}
		return content

	case keyboard.CodeKeshida, keyboard.CodeHalfSpace, keyboard.CodeCJKSpace:
		// Invisible characters stay visually blank.
		return content

	case keyboard.CodePhonePause, keyboard.CodePhoneWait:
		// Pause and wait share the comma and semicolon code points.
		// Only the phone pads caption them; elsewhere the key is the
		// plain printable character.
		if mode == keyboard.ModePhone || mode == keyboard.ModePhone2 {
			content.Label = i18n.Localize(keyMessages[data.Code])
			return content
		}

	case keyboard.CodeToggleCompactLayout:
		if prefs.Keyboard.OneHandedMode == OneHandedOff {
			content.Icon = iconCompactLayout
		} else {
			content.Icon = iconExpandedLayout
		}
		return content
	}

	if (data.Type == keyboard.KeyTypeCharacter || data.Type == keyboard.KeyTypeNumeric) && data.Code > keyboard.CodeSpace {
		content.Label = data.Label
		content.Hint = hintFor(key, prefs)
		return content
	}

	if icon, ok := keyIcons[data.Code]; ok {
		content.Icon = icon
		return content
	}
	if msg, ok := keyMessages[data.Code]; ok {
		content.Label = i18n.Localize(msg)
		return content
	}
	return content
}

// hintFor picks the popup hint to surface on the key face. Number-row
// hints win over symbol hints when both are present and enabled.
func hintFor(key *keyboard.Key, prefs *Preferences) string {
	if prefs.Keyboard.NumberRowHints.Enabled() && key.NumberHint.Code != keyboard.CodeUnspecified {
		return key.NumberHint.Label
	}
	if prefs.Keyboard.SymbolHints.Enabled() && key.SymbolHint.Code != keyboard.CodeUnspecified {
		return key.SymbolHint.Label
	}
	return ""
}
