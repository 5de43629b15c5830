package ime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDesiredKeyHeightDividesView(t *testing.T) {
	d := computeDesiredKey(geometryParams{ViewWidth: 600, ViewHeight: 1000, RowCount: 10})
	assert.InDelta(t, 100.0, d.Touch.H, 0.001)
	assert.InDelta(t, 60.0, d.Touch.W, 0.001)

	d = computeDesiredKey(geometryParams{ViewWidth: 600, ViewHeight: 500, RowCount: 10})
	assert.InDelta(t, 50.0, d.Touch.H, 0.001)
}

func TestDesiredKeyRowHeightCoversView(t *testing.T) {
	for rowCount := 1; rowCount <= 12; rowCount++ {
		d := computeDesiredKey(geometryParams{ViewWidth: 600, ViewHeight: 720, RowCount: rowCount})
		assert.InDelta(t, 720.0, d.Touch.H*float32(rowCount), 0.01, "rowCount=%d", rowCount)
	}
}

func TestDesiredKeyAdditionalSpace(t *testing.T) {
	// Four rows with the flag: divisor is rowCount + 0.5.
	d := computeDesiredKey(geometryParams{ViewWidth: 600, ViewHeight: 900, RowCount: 4, ExtraSpace: true})
	assert.InDelta(t, 200.0, d.Touch.H, 0.001)

	// Divisor caps at 5.0 for taller keyboards.
	d = computeDesiredKey(geometryParams{ViewWidth: 600, ViewHeight: 900, RowCount: 6, ExtraSpace: true})
	assert.InDelta(t, 180.0, d.Touch.H, 0.001)
}

func TestDesiredKeySmartbar(t *testing.T) {
	d := computeDesiredKey(geometryParams{
		ViewWidth:  600,
		ViewHeight: 80,
		RowCount:   1,
		Smartbar:   true,
		MarginH:    6,
		MarginV:    4,
	})

	assert.InDelta(t, 100.0, d.Touch.W, 0.001)
	assert.InDelta(t, 80.0, d.Touch.H, 0.001)

	// Horizontal margin applies in full, vertical at three quarters.
	assert.InDelta(t, 6.0, d.Visible.X, 0.001)
	assert.InDelta(t, 3.0, d.Visible.Y, 0.001)
	assert.InDelta(t, 88.0, d.Visible.W, 0.001)
	assert.InDelta(t, 74.0, d.Visible.H, 0.001)
}

func TestDesiredKeyZeroMarginsKeepBoxesEqual(t *testing.T) {
	d := computeDesiredKey(geometryParams{ViewWidth: 500, ViewHeight: 400, RowCount: 4})
	assert.Equal(t, d.Touch, d.Visible)
}

func TestDesiredKeyMarginsInsetStrictly(t *testing.T) {
	d := computeDesiredKey(geometryParams{
		ViewWidth:  500,
		ViewHeight: 400,
		RowCount:   4,
		MarginH:    2,
		MarginV:    5,
	})

	assert.Greater(t, d.Visible.X, d.Touch.X)
	assert.Greater(t, d.Visible.Y, d.Touch.Y)
	assert.Less(t, d.Visible.X+d.Visible.W, d.Touch.X+d.Touch.W)
	assert.Less(t, d.Visible.Y+d.Visible.H, d.Touch.Y+d.Touch.H)

	// Label and icon boxes nest inside the visible box.
	assert.GreaterOrEqual(t, d.Label.X, d.Visible.X)
	assert.GreaterOrEqual(t, d.Icon.Y, d.Visible.Y)
	assert.LessOrEqual(t, d.Label.X+d.Label.W, d.Visible.X+d.Visible.W)
	assert.LessOrEqual(t, d.Icon.Y+d.Icon.H, d.Visible.Y+d.Visible.H)
}

func TestDesiredKeyRowCountGuard(t *testing.T) {
	d := computeDesiredKey(geometryParams{ViewWidth: 600, ViewHeight: 100, RowCount: 0})
	assert.InDelta(t, 100.0, d.Touch.H, 0.001)
}

func TestKeyMargins(t *testing.T) {
	prefs := DefaultPreferences()
	prefs.Keyboard.KeyMarginH = 3.0
	prefs.Keyboard.KeyMarginV = 7.0

	h, v := keyMargins(false, prefs)
	assert.InDelta(t, 3.0, h, 0.001)
	assert.InDelta(t, 7.0, v, 0.001)

	// Smartbar ignores the preferences and uses its fixed margins.
	h, v = keyMargins(true, prefs)
	assert.InDelta(t, 6.0, h, 0.001)
	assert.InDelta(t, 4.0, v, 0.001)
}
