package ime

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Hayleia/florisboard/pkg/ime/i18n"
	"github.com/Hayleia/florisboard/pkg/ime/internal"
	"github.com/Hayleia/florisboard/pkg/ime/theme"
)

type Options struct {
	WindowTitle         string
	ShowBackground      bool
	BackgroundImagePath string
	FontPath            string
	SymbolFontPath      string
	Locale              string
	LogFilename         string
}

// Init initializes SDL, fonts and localization
// Must be called before any other UI functions!
func Init(options Options) {
	if options.LogFilename != "" {
		internal.SetLogFilename(options.LogFilename)
	}

	if os.Getenv("FLORISBOARD_DEBUG") != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if err := i18n.Init(); err != nil {
		internal.GetInternalLogger().Error("Failed to load localization bundle", "error", err)
	}
	if options.Locale != "" {
		if err := i18n.SetWithCode(options.Locale); err != nil {
			internal.GetInternalLogger().Error("Failed to set locale", "locale", options.Locale, "error", err)
		}
	}

	internal.Init(options.WindowTitle, options.ShowBackground, options.BackgroundImagePath, options.FontPath, options.SymbolFontPath)
}

// Close tidies up SDL and the UI
// Must be called after all UI functions!
func Close() {
	internal.SDLCleanup()
}

// LoadTheme reads a TOML theme file layered over the built-in night
// theme. An empty path returns the built-in theme unchanged; a value
// without a .toml extension selects a built-in theme by name.
func LoadTheme(path string) (*theme.Theme, error) {
	if path == "" {
		return theme.FlorisNight(), nil
	}
	if filepath.Ext(path) != ".toml" {
		return theme.Named(path), nil
	}
	return theme.Load(path, theme.FlorisNight())
}

func SetLogFilename(filename string) {
	internal.SetLogFilename(filename)
}

func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

func GetWindow() *internal.Window {
	return internal.GetWindow()
}
