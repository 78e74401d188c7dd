package main

import (
	"io"
	"log/slog"
	"strings"
)

var logLevelMap = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger returns a text logger writing to w. Unknown levels fall back to
// warn.
func newLogger(w io.Writer, level string) *slog.Logger {
	l, ok := logLevelMap[strings.ToLower(level)]
	if !ok {
		l = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
	if !ok {
		logger.Warn("unknown log level, using warn", "level", level)
	}
	return logger
}
