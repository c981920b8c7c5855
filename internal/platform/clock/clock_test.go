package clock_test

import (
	"testing"
	"time"

	"pomotrack/internal/platform/clock"
)

func TestDayKeepsLocation(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("UTC+9", 9*3600)
	ts := time.Date(2026, 3, 1, 23, 30, 0, 0, loc)
	day := clock.Day(ts)
	if day.Hour() != 0 || day.Minute() != 0 || day.Day() != 1 {
		t.Fatalf("unexpected truncation: %v", day)
	}
	if day.Location() != loc {
		t.Fatalf("expected location to be preserved")
	}
	if clock.DateString(ts) != "2026-03-01" {
		t.Fatalf("unexpected date string %s", clock.DateString(ts))
	}
}

func TestSystemClockUsesLocation(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("X", -5*3600)
	if got := (clock.SystemClock{Location: loc}).Now().Location(); got != loc {
		t.Fatalf("expected configured location, got %v", got)
	}
	if got := (clock.SystemClock{}).Now().Location(); got != time.UTC {
		t.Fatalf("expected utc by default, got %v", got)
	}
}
