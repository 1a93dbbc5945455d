package logger

import (
	"log/slog"
	"os"
)

// Log defaults to slog's standard logger so library code and tests can log
// before Init runs; main replaces it with the JSON handler.
var Log = slog.Default()

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	Log = slog.New(handler)
}
