package ime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hayleia/florisboard/pkg/ime/keyboard"
)

func TestLayoutConsumesRecomputeOnce(t *testing.T) {
	v := NewKeyboardView(KeyboardViewOptions{})
	kbd := keyboard.DefaultCharacters()
	v.SetKeyboard(kbd)

	v.Layout(600, 400)
	qKey := kbd.Rows[0][0]
	require.Equal(t, "q", qKey.Computed.Label)

	v.NotifyStateChanged(keyboard.State{Caps: true})
	v.Layout(600, 400)
	assert.Equal(t, "Q", qKey.Computed.Label)

	// Without a new notification the next layout leaves computed data
	// alone; this mutation surviving proves no second recompute ran.
	qKey.Computed.Label = "zz"
	v.Layout(600, 400)
	assert.Equal(t, "zz", qKey.Computed.Label)

	v.NotifyStateChanged(keyboard.State{})
	v.Layout(600, 400)
	assert.Equal(t, "q", qKey.Computed.Label)
}

func TestSetKeyboardForState(t *testing.T) {
	v := NewKeyboardView(KeyboardViewOptions{})
	kbd := keyboard.DefaultCharacters()

	v.SetKeyboardForState(kbd, keyboard.State{CapsLock: true, Variation: keyboard.VariationEmail})
	v.Layout(600, 400)

	assert.Equal(t, "Q", kbd.Rows[0][0].Computed.Label)
	assert.Equal(t, "@", kbd.Rows[3][1].Computed.Label)
	assert.True(t, v.State().CapsLock)
}

func TestKeyVariationSwapsAlternates(t *testing.T) {
	v := NewKeyboardView(KeyboardViewOptions{})
	kbd := keyboard.DefaultCharacters()
	v.SetKeyboard(kbd)
	v.Layout(600, 400)

	commaKey := kbd.Rows[3][1]
	require.Equal(t, ",", commaKey.Computed.Label)

	v.SetKeyVariation(keyboard.VariationEmail)
	v.Layout(600, 400)
	assert.Equal(t, "@", commaKey.Computed.Label)

	v.SetKeyVariation(keyboard.VariationNormal)
	v.Layout(600, 400)
	assert.Equal(t, ",", commaKey.Computed.Label)
}

func TestLayoutWithoutKeyboardIsNoop(t *testing.T) {
	v := NewKeyboardView(KeyboardViewOptions{})

	assert.NotPanics(t, func() {
		v.Layout(600, 400)
	})
}

func TestDrawGuards(t *testing.T) {
	v := NewKeyboardView(KeyboardViewOptions{})

	assert.NotPanics(t, func() {
		v.Draw(nil)
	})

	v.SetKeyboard(keyboard.DefaultCharacters())
	assert.NotPanics(t, func() {
		v.Draw(nil)
	})
}

func TestLayoutAssignsBounds(t *testing.T) {
	v := NewKeyboardView(KeyboardViewOptions{})
	kbd := keyboard.DefaultCharacters()
	v.SetKeyboard(kbd)

	v.Layout(600, 400)

	assert.InDelta(t, 60.0, v.desired.Touch.W, 0.001)
	assert.InDelta(t, 100.0, v.desired.Touch.H, 0.001)

	for _, row := range kbd.Rows {
		for _, key := range row {
			assert.Greater(t, key.TouchBounds.W, float32(0))
			assert.Greater(t, key.TouchBounds.H, float32(0))
		}
	}
}

func TestKeyAtAfterLayout(t *testing.T) {
	v := NewKeyboardView(KeyboardViewOptions{})
	kbd := keyboard.DefaultCharacters()
	v.SetKeyboard(kbd)
	v.Layout(600, 400)

	key := v.KeyAt(300, 50)
	require.NotNil(t, key)

	assert.Nil(t, v.KeyAt(-10, -10))

	empty := NewKeyboardView(KeyboardViewOptions{})
	assert.Nil(t, empty.KeyAt(300, 50))
}

func TestMeasureSmartbarTakesHostHeight(t *testing.T) {
	v := NewKeyboardView(KeyboardViewOptions{Smartbar: true})
	w, h := v.Measure(600, 80)
	assert.InDelta(t, 600.0, w, 0.001)
	assert.InDelta(t, 80.0, h, 0.001)
}

func TestMeasurePreviewShrinksHostHeight(t *testing.T) {
	v := NewKeyboardView(KeyboardViewOptions{Preview: true})
	_, h := v.Measure(600, 100)
	assert.InDelta(t, 90.0, h, 0.001)
}

func TestMeasureNormalDerivesFromHeightFactor(t *testing.T) {
	// Headless runs have no display, so the available height stands in
	// for the shorter edge.
	v := NewKeyboardView(KeyboardViewOptions{})
	_, h := v.Measure(600, 400)
	assert.InDelta(t, 160.0, h, 0.001)

	prefs := DefaultPreferences()
	prefs.Keyboard.HeightFactor = 1.5
	v = NewKeyboardView(KeyboardViewOptions{Preferences: prefs})
	_, h = v.Measure(600, 400)
	assert.InDelta(t, 240.0, h, 0.001)

	prefs = DefaultPreferences()
	prefs.Keyboard.HeightFactor = 10
	v = NewKeyboardView(KeyboardViewOptions{Preferences: prefs})
	_, h = v.Measure(600, 400)
	assert.InDelta(t, 400.0, h, 0.001, "derived height clamps to the available height")
}
