package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// logFilePath picks the log destination: GUIA_LOG_FILE, then the configured
// log_file, then ~/.config/guia/guia.log.
func logFilePath(configured string) (string, error) {
	path := os.Getenv("GUIA_LOG_FILE")
	if path == "" {
		path = configured
	}
	if path != "" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine home directory: %w", err)
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(home, rest), nil
	}
	return filepath.Join(home, ".config", "guia", "guia.log"), nil
}

// newFileLogger logs to a file so output never lands on the alt screen.
func newFileLogger(configured string) (*slog.Logger, error) {
	logFile, err := logFilePath(configured)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	logger.Debug("initialized text file logger",
		"path", logFile,
		"level", level.String(),
	)
	return logger, nil
}
