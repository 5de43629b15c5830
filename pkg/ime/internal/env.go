package internal

import "os"

// IsDevMode reports whether the library runs on a development machine rather
// than a handheld device. Dev mode uses a small movable window with env-var
// size overrides instead of the device's native display mode.
func IsDevMode() bool {
	return os.Getenv("FLORISBOARD_DEV") != ""
}
