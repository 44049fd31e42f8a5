package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Log is safe to use before Init; it defaults to slog's text logger.
var Log = slog.Default()

// Init sets up the global JSON logger. LOG_LEVEL selects the minimum level
// (debug by default, matching local-tool usage).
func Init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})
	Log = slog.New(handler)
	slog.SetDefault(Log)
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
