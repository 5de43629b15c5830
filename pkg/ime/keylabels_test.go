package ime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/Hayleia/florisboard/pkg/ime/keyboard"
)

func resolveContent(key *keyboard.Key, mode keyboard.Mode) KeyContent {
	return resolveKeyContent(key, mode, keyboard.State{}, DefaultPreferences(), EditorInfo{}, language.English)
}

func TestCharacterKeyLabel(t *testing.T) {
	content := resolveContent(keyboard.CharKey("q"), keyboard.ModeCharacters)
	assert.Equal(t, "q", content.Label)
	assert.True(t, content.Icon.IsZero())
}

func TestCharacterKeyHints(t *testing.T) {
	key := keyboard.CharKey("q").WithNumberHint("1")

	content := resolveContent(key, keyboard.ModeCharacters)
	assert.Equal(t, "1", content.Hint)

	prefs := DefaultPreferences()
	prefs.Keyboard.NumberRowHints = HintDisabled
	content = resolveKeyContent(key, keyboard.ModeCharacters, keyboard.State{}, prefs, EditorInfo{}, language.English)
	assert.Empty(t, content.Hint)
}

func TestHintClassesToggleIndependently(t *testing.T) {
	key := keyboard.CharKey("a").WithNumberHint("1").WithSymbolHint("@")

	prefs := DefaultPreferences()
	content := resolveKeyContent(key, keyboard.ModeCharacters, keyboard.State{}, prefs, EditorInfo{}, language.English)
	assert.Equal(t, "1", content.Hint, "number hints win when both classes are enabled")

	prefs.Keyboard.NumberRowHints = HintDisabled
	content = resolveKeyContent(key, keyboard.ModeCharacters, keyboard.State{}, prefs, EditorInfo{}, language.English)
	assert.Equal(t, "@", content.Hint)

	prefs.Keyboard.SymbolHints = HintDisabled
	content = resolveKeyContent(key, keyboard.ModeCharacters, keyboard.State{}, prefs, EditorInfo{}, language.English)
	assert.Empty(t, content.Hint)
}

func TestSpaceKeyPerMode(t *testing.T) {
	space := keyboard.FuncKey(keyboard.KeyTypeCharacter, keyboard.CodeSpace, "space", 4.0)

	content := resolveContent(space, keyboard.ModeCharacters)
	assert.Equal(t, "English", content.Label, "alphabetic mode shows the input locale")
	assert.True(t, content.Icon.IsZero())

	for _, mode := range []keyboard.Mode{keyboard.ModeNumeric, keyboard.ModeNumericAdvanced, keyboard.ModePhone, keyboard.ModePhone2} {
		content = resolveContent(space, mode)
		assert.Equal(t, iconSpaceBar, content.Icon, "mode=%v", mode)
		assert.Empty(t, content.Label)
	}

	content = resolveContent(space, keyboard.ModeSymbols)
	assert.Empty(t, content.Label)
	assert.True(t, content.Icon.IsZero())
}

func TestSpaceKeyUnknownLocaleStaysBlank(t *testing.T) {
	space := keyboard.FuncKey(keyboard.KeyTypeCharacter, keyboard.CodeSpace, "space", 4.0)
	content := resolveKeyContent(space, keyboard.ModeCharacters, keyboard.State{}, DefaultPreferences(), EditorInfo{}, language.Und)
	assert.Empty(t, content.Label)
}

func TestEnterKeyActions(t *testing.T) {
	enter := keyboard.FuncKey(keyboard.KeyTypeEnterEditing, keyboard.CodeEnter, "enter", 1.5)
	actions := []EditorAction{
		EditorActionDone, EditorActionGo, EditorActionNext,
		EditorActionPrevious, EditorActionSearch, EditorActionSend,
	}

	seen := make(map[string]bool)
	for _, action := range actions {
		content := resolveKeyContent(enter, keyboard.ModeCharacters, keyboard.State{}, DefaultPreferences(), EditorInfo{Action: action}, language.English)
		assert.False(t, content.Icon.IsZero(), "action=%v", action)
		assert.NotEqual(t, iconReturn, content.Icon, "action=%v", action)
		seen[content.Icon.Name] = true
	}
	assert.Len(t, seen, len(actions), "every action maps to a distinct icon")

	for _, action := range []EditorAction{EditorActionUnspecified, EditorActionNone} {
		content := resolveKeyContent(enter, keyboard.ModeCharacters, keyboard.State{}, DefaultPreferences(), EditorInfo{Action: action}, language.English)
		assert.Equal(t, iconReturn, content.Icon, "action=%v", action)
	}
}

func TestEnterKeySuppressionCollapsesActions(t *testing.T) {
	enter := keyboard.FuncKey(keyboard.KeyTypeEnterEditing, keyboard.CodeEnter, "enter", 1.5)

	seen := make(map[string]bool)
	for action := EditorActionUnspecified; action <= EditorActionSend; action++ {
		editor := EditorInfo{Action: action, SuppressAction: true}
		content := resolveKeyContent(enter, keyboard.ModeCharacters, keyboard.State{}, DefaultPreferences(), editor, language.English)
		seen[content.Icon.Name] = true
	}

	assert.Len(t, seen, 1)
	assert.True(t, seen[iconReturn.Name], "suppression always yields the plain return icon")
}

func TestShiftKeyTracksCapsLock(t *testing.T) {
	shift := keyboard.FuncKey(keyboard.KeyTypeModifier, keyboard.CodeShift, "shift", 1.5)

	content := resolveKeyContent(shift, keyboard.ModeCharacters, keyboard.State{}, DefaultPreferences(), EditorInfo{}, language.English)
	assert.Equal(t, iconShift, content.Icon)

	content = resolveKeyContent(shift, keyboard.ModeCharacters, keyboard.State{Caps: true}, DefaultPreferences(), EditorInfo{}, language.English)
	assert.Equal(t, iconShift, content.Icon, "caps alone keeps the plain arrow")

	content = resolveKeyContent(shift, keyboard.ModeCharacters, keyboard.State{CapsLock: true}, DefaultPreferences(), EditorInfo{}, language.English)
	assert.Equal(t, iconCapsLock, content.Icon)
}

func TestCommandKeyIcons(t *testing.T) {
	cases := []struct {
		code int32
		want Icon
	}{
		{keyboard.CodeDelete, iconBackspace},
		{keyboard.CodeArrowLeft, iconArrowLeft},
		{keyboard.CodeClipboardCopy, iconContentCopy},
		{keyboard.CodeClipboardSelectAll, iconSelectAll},
		{keyboard.CodeSwitchToMediaContext, iconEmoticon},
		{keyboard.CodeSwitchToTextContext, iconKeyboard},
		{keyboard.CodeLanguageSwitch, iconTranslate},
	}

	for _, tc := range cases {
		key := keyboard.FuncKey(keyboard.KeyTypeFunction, tc.code, "x", 1.0)
		content := resolveContent(key, keyboard.ModeCharacters)
		assert.Equal(t, tc.want, content.Icon, "code=%d", tc.code)
		assert.Empty(t, content.Label)
	}
}

func TestViewSwitchKeysUseCaptions(t *testing.T) {
	cases := []struct {
		code int32
		want string
	}{
		{keyboard.CodeViewCharacters, "ABC"},
		{keyboard.CodeViewSymbols, "?123"},
		{keyboard.CodeViewSymbols2, "=\\<"},
		{keyboard.CodeViewNumeric, "123"},
	}

	for _, tc := range cases {
		key := keyboard.FuncKey(keyboard.KeyTypeSystem, tc.code, "x", 1.0)
		content := resolveContent(key, keyboard.ModeCharacters)
		assert.Equal(t, tc.want, content.Label, "code=%d", tc.code)
		assert.True(t, content.Icon.IsZero())
	}
}

func TestPhonePauseWaitOnlyCaptionInPhoneModes(t *testing.T) {
	pause := keyboard.FuncKey(keyboard.KeyTypeCharacter, keyboard.CodePhonePause, "pause", 1.0)
	content := resolveContent(pause, keyboard.ModePhone)
	assert.Equal(t, "Pause", content.Label)

	wait := keyboard.FuncKey(keyboard.KeyTypeCharacter, keyboard.CodePhoneWait, "wait", 1.0)
	content = resolveContent(wait, keyboard.ModePhone2)
	assert.Equal(t, "Wait", content.Label)

	// The comma and semicolon keys share those code points and must
	// keep their printable labels outside the phone pads.
	comma := keyboard.CharKey(",")
	content = resolveContent(comma, keyboard.ModeCharacters)
	assert.Equal(t, ",", content.Label)

	semicolon := keyboard.CharKey(";")
	content = resolveContent(semicolon, keyboard.ModeSymbols)
	assert.Equal(t, ";", content.Label)
}

func TestInvisibleCharactersStayBlank(t *testing.T) {
	for _, code := range []int32{keyboard.CodeKeshida, keyboard.CodeHalfSpace, keyboard.CodeCJKSpace} {
		key := keyboard.FuncKey(keyboard.KeyTypeCharacter, code, "x", 1.0)
		content := resolveContent(key, keyboard.ModeCharacters)
		assert.Empty(t, content.Label, "code=%d", code)
		assert.True(t, content.Icon.IsZero(), "code=%d", code)
	}
}

func TestCompactLayoutToggleIcon(t *testing.T) {
	key := keyboard.FuncKey(keyboard.KeyTypeFunction, keyboard.CodeToggleCompactLayout, "compact", 1.0)

	content := resolveContent(key, keyboard.ModeCharacters)
	assert.Equal(t, iconCompactLayout, content.Icon)

	prefs := DefaultPreferences()
	prefs.Keyboard.OneHandedMode = OneHandedStart
	content = resolveKeyContent(key, keyboard.ModeCharacters, keyboard.State{}, prefs, EditorInfo{}, language.English)
	assert.Equal(t, iconExpandedLayout, content.Icon)
}
