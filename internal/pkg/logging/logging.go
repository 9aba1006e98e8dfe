package logging

import (
	"io"
	"log/slog"
	"strings"
)

const envProduction = "production"

// SetupLogger installs the default slog logger: text output while developing,
// JSON in production. Debug level adds the source location.
func SetupLogger(appEnv, logLevel string, out io.Writer) *slog.Logger {
	level := stringToLogLevel(logLevel)
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler = slog.NewTextHandler(out, opts)

	if appEnv == envProduction {
		handler = slog.NewJSONHandler(out, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func stringToLogLevel(levelStr string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
