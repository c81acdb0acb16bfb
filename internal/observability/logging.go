package observability

import (
	"io"
	"log/slog"
	"strings"

	"github.com/maravedi/jules-actions/internal/types"
)

// sensitiveFields lists structured-log keys whose values must never reach
// log output. Keys are compared case-insensitively with underscores removed,
// so "api_key", "apiKey" and "APIKey" all match.
var sensitiveFields = map[string]bool{
	"prompt":        true,
	"apikey":        true,
	"secret":        true,
	"password":      true,
	"token":         true,
	"credential":    true,
	"authorization": true,
}

// NewLogger builds the invocation logger from the logging level and format
// ("json" or "text"), tagging every entry with the run identifier. Sensitive
// fields are redacted by the handler itself so no call site can leak them.
func NewLogger(w io.Writer, level, format string, runID types.RunID) *slog.Logger {
	var handler slog.Handler
	if format == "text" {
		handler = NewTextHandler(w, ParseLevel(level))
	} else {
		handler = NewJSONHandler(w, ParseLevel(level))
	}
	return slog.New(handler).With(slog.String("run_id", runID.String()))
}

// NewJSONHandler creates a JSON log handler with sensitive-field redaction.
// JSON format is what CI log collectors ingest.
func NewJSONHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: redactSensitive,
	})
}

// NewTextHandler creates a human-readable handler for local runs.
func NewTextHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: redactSensitive,
	})
}

// ParseLevel maps a configuration level string to a slog.Level.
// Unknown values fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// redactSensitive replaces the values of sensitive attributes with a fixed
// marker. Group names are ignored: a sensitive key is redacted wherever it
// appears.
func redactSensitive(groups []string, a slog.Attr) slog.Attr {
	key := strings.ToLower(strings.ReplaceAll(a.Key, "_", ""))
	if sensitiveFields[key] {
		a.Value = slog.StringValue("[REDACTED]")
	}
	return a
}
