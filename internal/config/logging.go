package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// LogLevel enumerates supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat enumerates supported log output formats.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

var logLevels = map[string]LogLevel{
	"debug":   LogLevelDebug,
	"info":    LogLevelInfo,
	"warn":    LogLevelWarn,
	"warning": LogLevelWarn,
	"error":   LogLevelError,
}

var logFormats = map[string]LogFormat{
	"json": LogFormatJSON,
	"text": LogFormatText,
}

// ParseLogLevel case-folds raw. Empty input yields info.
func ParseLogLevel(raw string) (LogLevel, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return LogLevelInfo, nil
	}
	if lvl, ok := logLevels[key]; ok {
		return lvl, nil
	}
	return "", fmt.Errorf("invalid log level %q, valid options: debug, info, warn, error", raw)
}

// ParseLogFormat case-folds raw. Empty input yields text.
func ParseLogFormat(raw string) (LogFormat, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return LogFormatText, nil
	}
	if f, ok := logFormats[key]; ok {
		return f, nil
	}
	return "", fmt.Errorf("invalid log format %q, valid options: json, text", raw)
}

// SlogLevel maps the configured level onto slog.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
