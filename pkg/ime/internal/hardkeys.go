package internal

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/holoplot/go-evdev"
)

// HardKeyConfig wires physical shift/caps-lock keys of a device keyboard to
// the on-screen state. Callbacks run on the watcher goroutine.
type HardKeyConfig struct {
	DevicePath string
	OnShift    func(down bool)
	OnCapsLock func()
}

// HardKeyWatcher reads key events from an evdev device until closed.
type HardKeyWatcher struct {
	dev  *evdev.InputDevice
	wg   sync.WaitGroup
	done chan struct{}
}

func WatchHardKeys(cfg HardKeyConfig) (*HardKeyWatcher, error) {
	dev, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input device %s: %w", cfg.DevicePath, err)
	}

	name, err := dev.Name()
	if err != nil {
		name = "unknown"
	}
	GetInternalLogger().Debug("Watching hardware keys", "device", cfg.DevicePath, "name", name)

	w := &HardKeyWatcher{
		dev:  dev,
		done: make(chan struct{}),
	}

	w.wg.Add(1)
	go w.loop(cfg)

	return w, nil
}

func (w *HardKeyWatcher) loop(cfg HardKeyConfig) {
	defer w.wg.Done()

	for {
		ev, err := w.dev.ReadOne()
		if err != nil {
			select {
			case <-w.done:
				// Closed on purpose; the read failed because the fd is gone.
			default:
				if !errors.Is(err, io.EOF) {
					GetInternalLogger().Warn("Hardware key read failed", "error", err)
				}
			}
			return
		}

		if ev.Type != evdev.EV_KEY {
			continue
		}

		switch ev.Code {
		case evdev.KEY_CAPSLOCK:
			// Value 1 is press, 0 release, 2 autorepeat.
			if ev.Value == 1 && cfg.OnCapsLock != nil {
				cfg.OnCapsLock()
			}
		case evdev.KEY_LEFTSHIFT, evdev.KEY_RIGHTSHIFT:
			if ev.Value != 2 && cfg.OnShift != nil {
				cfg.OnShift(ev.Value == 1)
			}
		}
	}
}

func (w *HardKeyWatcher) Close() {
	close(w.done)
	w.dev.Close()
	w.wg.Wait()
}
