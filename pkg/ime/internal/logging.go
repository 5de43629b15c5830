package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logFile     *os.File
	logFilename string

	setupOnce   sync.Once
	multiWriter io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

func SetLogFilename(filename string) {
	logFilename = filename
}

func setup() {
	setupOnce.Do(func() {
		if err := os.MkdirAll("logs", 0755); err != nil {
			panic("Failed to create logs directory: " + err.Error())
		}

		filename := logFilename
		if filename == "" {
			filename = "florisboard.log"
		}

		var err error
		logFile, err = os.OpenFile(filepath.Join("logs", filename), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			panic("Failed to open log file: " + err.Error())
		}

		multiWriter = io.MultiWriter(os.Stdout, logFile)
	})
}

func newLogger(level *slog.LevelVar) *slog.Logger {
	setup()

	handler := slog.NewJSONHandler(multiWriter, &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	})
	return slog.New(handler)
}

func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		logger = newLogger(levelVar)
	})
	return logger
}

// GetInternalLogger returns the logger used by the library itself. It is
// separate from the application logger so library chatter can be silenced
// without touching the caller's log level.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}
		internalLogger = newLogger(internalLevelVar)
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

func SetRawLogLevel(rawLevel string) {
	var level slog.Level

	switch strings.ToLower(rawLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	SetLogLevel(level)
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
