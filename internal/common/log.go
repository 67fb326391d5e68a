package common

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

const defaultLogHistory = 500

var (
	logger     *slog.Logger
	loggerOnce sync.Once
	ring       = newLogRing(defaultLogHistory)
)

// LogEntry is a captured record emitted through the shared logger, kept for
// the /v1/logs endpoint.
type LogEntry struct {
	Time       time.Time      `json:"time"`
	Level      string         `json:"level"`
	Message    string         `json:"message"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// Logger returns the singleton slog logger. Level comes from LOG_LEVEL.
func Logger() *slog.Logger {
	loggerOnce.Do(func() {
		level := slog.LevelInfo
		switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
		base := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		logger = slog.New(&recordingHandler{handler: base, ring: ring})
	})
	return logger
}

// LogEntries returns a copy of the captured history, oldest first.
func LogEntries() []LogEntry {
	return ring.entries()
}

type recordingHandler struct {
	handler slog.Handler
	ring    *logRing
}

func (h *recordingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *recordingHandler) Handle(ctx context.Context, record slog.Record) error {
	err := h.handler.Handle(ctx, record)
	h.ring.capture(record)
	return err
}

func (h *recordingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &recordingHandler{handler: h.handler.WithAttrs(attrs), ring: h.ring}
}

func (h *recordingHandler) WithGroup(name string) slog.Handler {
	return &recordingHandler{handler: h.handler.WithGroup(name), ring: h.ring}
}

type logRing struct {
	mu      sync.RWMutex
	max     int
	history []LogEntry
}

func newLogRing(max int) *logRing {
	return &logRing{max: max}
}

func (r *logRing) capture(record slog.Record) {
	entry := LogEntry{
		Time:    record.Time.UTC(),
		Level:   strings.ToLower(record.Level.String()),
		Message: record.Message,
	}
	if entry.Time.IsZero() {
		entry.Time = time.Now().UTC()
	}
	record.Attrs(func(a slog.Attr) bool {
		if entry.Attributes == nil {
			entry.Attributes = make(map[string]any)
		}
		entry.Attributes[a.Key] = a.Value.Any()
		return true
	})
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history, entry)
	if len(r.history) > r.max {
		r.history = r.history[len(r.history)-r.max:]
	}
}

func (r *logRing) entries() []LogEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.history) == 0 {
		return nil
	}
	out := make([]LogEntry, len(r.history))
	copy(out, r.history)
	return out
}
