package ime

import (
	"github.com/Hayleia/florisboard/pkg/ime/internal"
)

// WatchHardKeys mirrors a physical keyboard's shift and caps-lock keys
// into the view's interaction state, so the on-screen keys track what
// the hardware does. Close the watcher before tearing the UI down.
func WatchHardKeys(devicePath string, view *KeyboardView) (*internal.HardKeyWatcher, error) {
	// Both callbacks run on the single watcher goroutine.
	var shiftHeld, capsLock bool

	notify := func() {
		state := view.State()
		state.Caps = shiftHeld || capsLock
		state.CapsLock = capsLock
		view.NotifyStateChanged(state)
	}

	return internal.WatchHardKeys(internal.HardKeyConfig{
		DevicePath: devicePath,
		OnShift: func(down bool) {
			shiftHeld = down
			notify()
		},
		OnCapsLock: func() {
			capsLock = !capsLock
			notify()
		},
	})
}
