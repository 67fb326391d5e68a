package common

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoggerCapturesHistory(t *testing.T) {
	logger := Logger()
	logger.Info("history check", "key", "value")

	entries := LogEntries()
	if len(entries) == 0 {
		t.Fatalf("expected captured log entries")
	}
	last := entries[len(entries)-1]
	if last.Message != "history check" || last.Level != "info" {
		t.Fatalf("unexpected entry: %+v", last)
	}
	if last.Attributes["key"] != "value" {
		t.Fatalf("attributes not captured: %+v", last.Attributes)
	}
	if last.Time.IsZero() {
		t.Fatalf("entry time not set")
	}
}

func TestLogRingBoundsHistory(t *testing.T) {
	ring := newLogRing(3)
	for i := 0; i < 5; i++ {
		ring.capture(slog.NewRecord(time.Now(), slog.LevelInfo, "m", 0))
	}
	if got := len(ring.entries()); got != 3 {
		t.Fatalf("expected history capped at 3, got %d", got)
	}
}
