package logger

import (
	"log/slog"
	"os"
)

// New creates the JSON slog logger shared by the whole service. LOG_LEVEL
// overrides the default info threshold when it parses as a slog level.
func New() *slog.Logger {
	level := slog.LevelInfo
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		_ = level.UnmarshalText([]byte(v))
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("service", "arzonstar"))
}
