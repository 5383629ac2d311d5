// Package logger is the structured JSON logger shared by every command.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Fields are the structured fields of a log record.
type Fields map[string]any

// Log is the process-wide logger. It logs at info to stdout until Init is called.
var Log = New("info", os.Stdout)

// Init replaces Log with a stdout logger at level ("debug", "info", "warn", "error").
func Init(level string) {
	Log = New(level, os.Stdout)
}

// New builds a JSON logger writing records at level or more severe to out.
// An empty or unknown level means info.
func New(level string, out io.Writer) *slog.Logger {
	h := handler.NewIOWriterHandler(out, levelsUpTo(level))
	// the base record is datetime/level/message; fields are written top-level beside it
	h.SetFormatter(slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		f.Fields = []string{
			slog.FieldKeyDatetime,
			slog.FieldKeyLevel,
			slog.FieldKeyMessage,
		}
		f.Aliases = slog.StringMap{
			slog.FieldKeyDatetime: "datetime",
			slog.FieldKeyLevel:    "level",
			slog.FieldKeyMessage:  "message",
		}
		f.TimeFormat = "2006-01-02T15:04:05"
	}))
	return slog.NewWithHandlers(h)
}

func levelsUpTo(level string) []slog.Level {
	max := slog.InfoLevel
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		max = slog.DebugLevel
	case "warn", "warning":
		max = slog.WarnLevel
	case "error":
		max = slog.ErrorLevel
	}

	var levels []slog.Level
	for _, lv := range slog.AllLevels {
		if lv <= max {
			levels = append(levels, lv)
		}
	}
	return levels
}

// withServiceName adds service_name from SERVICE_NAME when the caller did not set one.
func withServiceName(fields Fields) Fields {
	out := make(Fields, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	if _, ok := out["service_name"]; !ok {
		if sn := os.Getenv("SERVICE_NAME"); sn != "" {
			out["service_name"] = sn
		}
	}
	return out
}

func logWithFields(level slog.Level, msg string, fields Fields) {
	Log.WithFields(slog.M(withServiceName(fields))).Log(level, msg)
}

func DebugWithFields(msg string, fields Fields) { logWithFields(slog.DebugLevel, msg, fields) }

func InfoWithFields(msg string, fields Fields) { logWithFields(slog.InfoLevel, msg, fields) }

func WarnWithFields(msg string, fields Fields) { logWithFields(slog.WarnLevel, msg, fields) }

func ErrorWithFields(msg string, fields Fields) { logWithFields(slog.ErrorLevel, msg, fields) }
