package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Config holds logging configuration
type Config struct {
	Level  string `env:"LOG_LEVEL" default:"info"`
	Format string `env:"LOG_FORMAT" default:"json"`
	Output string `env:"LOG_OUTPUT" default:"stdout"`
}

// DefaultConfig returns the default logging configuration
func DefaultConfig() *Config {
	return &Config{
		Level:  "info",
		Format: "json",
		Output: "stdout",
	}
}

// Logger wraps slog.Logger with helpers for the fields hostpro logs on
// nearly every line: component, client and request id.
type Logger struct {
	*slog.Logger
}

var levels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// ParseLevel maps a LOG_LEVEL value to a slog level. Unknown values mean info.
func ParseLevel(s string) slog.Level {
	if level, ok := levels[strings.ToLower(strings.TrimSpace(s))]; ok {
		return level
	}
	return slog.LevelInfo
}

// outputWriter resolves LOG_OUTPUT. Anything other than the well-known
// stream names is treated as a file path and appended to; if the file
// cannot be opened the logger falls back to stderr.
func outputWriter(output string) io.Writer {
	switch strings.ToLower(strings.TrimSpace(output)) {
	case "", "stdout":
		return os.Stdout
	case "stderr":
		return os.Stderr
	case "discard", "none":
		return io.Discard
	}
	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return os.Stderr
	}
	return f
}

// NewLogger creates a new structured logger from configuration
func NewLogger(cfg *Config) *Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String("timestamp", a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}

	w := outputWriter(cfg.Output)
	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "text", "console":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}
	return &Logger{Logger: slog.New(handler)}
}

func (l *Logger) with(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// WithComponent adds component context to logger
func (l *Logger) WithComponent(component string) *Logger {
	return l.with("component", component)
}

// WithContext tags the logger with chi's request id when the context has one.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if requestID := middleware.GetReqID(ctx); requestID != "" {
		return l.with("request_id", requestID)
	}
	return l
}

// WithClient scopes the logger to a single browser client.
func (l *Logger) WithClient(clientID string) *Logger {
	return l.with("client_id", clientID)
}

func attrArgs(prefix []any, attrs []slog.Attr) []any {
	args := make([]any, 0, len(prefix)+len(attrs))
	args = append(args, prefix...)
	for _, attr := range attrs {
		args = append(args, attr)
	}
	return args
}

// Client logs an event for one browser client.
func (l *Logger) Client(msg string, clientID string, attrs ...slog.Attr) {
	l.Logger.Info(msg, attrArgs([]any{"client_id", clientID}, attrs)...)
}

// ClientError logs a failure while serving one browser client.
func (l *Logger) ClientError(msg string, err error, clientID string, attrs ...slog.Attr) {
	l.Logger.Error(msg, attrArgs([]any{"client_id", clientID, "error", err.Error()}, attrs)...)
}

// Performance records how long an operation took.
func (l *Logger) Performance(operation string, duration time.Duration, attrs ...slog.Attr) {
	l.Logger.Info("performance", attrArgs([]any{"operation", operation, "duration_ms", duration.Milliseconds()}, attrs)...)
}

func (l *Logger) subsystem(level slog.Level, name, msg string, args []any) {
	l.Logger.Log(context.Background(), level, msg, append([]any{"subsystem", name}, args...)...)
}

// Store logs preference-store events
func (l *Logger) Store(msg string, args ...any) {
	l.subsystem(slog.LevelDebug, "store", msg, args)
}

// Database logs database-specific events
func (l *Logger) Database(msg string, args ...any) {
	l.subsystem(slog.LevelDebug, "database", msg, args)
}

// Security logs sign-in, sign-out and guard decisions.
func (l *Logger) Security(msg string, args ...any) {
	l.subsystem(slog.LevelInfo, "security", msg, args)
}

var defaultLogger atomic.Pointer[Logger]

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLogger.Store(logger)
}

// Default returns the process-wide logger, creating one from DefaultConfig
// on first use.
func Default() *Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	defaultLogger.CompareAndSwap(nil, NewLogger(DefaultConfig()))
	return defaultLogger.Load()
}

// Convenience functions using default logger
func Info(msg string, args ...any) {
	Default().Info(msg, args...)
}

func Debug(msg string, args ...any) {
	Default().Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	Default().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Default().Error(msg, args...)
}

func Client(msg string, clientID string, attrs ...slog.Attr) {
	Default().Client(msg, clientID, attrs...)
}

func ClientError(msg string, err error, clientID string, attrs ...slog.Attr) {
	Default().ClientError(msg, err, clientID, attrs...)
}

func Performance(operation string, duration time.Duration, attrs ...slog.Attr) {
	Default().Performance(operation, duration, attrs...)
}
