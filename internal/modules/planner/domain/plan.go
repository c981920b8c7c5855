package domain

import (
	"strings"
	"time"

	apperrors "pomotrack/internal/platform/errors"
)

const (
	DefaultFocusMinutes      = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 15
	DefaultCycles            = 4

	// LocalStartLayout is the zone-less form accepted for schedule starts.
	LocalStartLayout = "2006-01-02 15:04"
)

type Template struct {
	ID                int64
	UserID            string
	Name              string
	FocusMinutes      int
	ShortBreakMinutes int
	LongBreakMinutes  int
	Cycles            int
	CreatedAt         time.Time
}

type ScheduledSession struct {
	ID          int64
	UserID      string
	TemplateID  *int64
	Title       *string
	StartAt     time.Time
	DurationMin *int
	CreatedAt   time.Time
}

// NormalizeTemplate fills zero durations with defaults and rejects negative
// ones.
func NormalizeTemplate(t Template) (Template, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return Template{}, apperrors.Invalid("template name is required")
	}
	fields := []struct {
		name  string
		value *int
		def   int
	}{
		{"focus_minutes", &t.FocusMinutes, DefaultFocusMinutes},
		{"short_break_minutes", &t.ShortBreakMinutes, DefaultShortBreakMinutes},
		{"long_break_minutes", &t.LongBreakMinutes, DefaultLongBreakMinutes},
		{"cycles", &t.Cycles, DefaultCycles},
	}
	for _, f := range fields {
		if *f.value < 0 {
			return Template{}, apperrors.Invalid("%s must be positive", f.name)
		}
		if *f.value == 0 {
			*f.value = f.def
		}
	}
	return t, nil
}

// ParseStart reads an RFC3339 instant, or a local "YYYY-MM-DD HH:MM" in loc.
func ParseStart(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, apperrors.Invalid("start datetime is required")
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.In(loc), nil
	}
	t, err := time.ParseInLocation(LocalStartLayout, raw, loc)
	if err != nil {
		return time.Time{}, apperrors.Invalid("start datetime %q must be RFC3339 or %q", raw, LocalStartLayout)
	}
	return t, nil
}

// ParseDay reads a YYYY-MM-DD calendar day; blank returns today.
func ParseDay(raw string, today time.Time) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return today.Format(time.DateOnly), nil
	}
	if _, err := time.Parse(time.DateOnly, raw); err != nil {
		return "", apperrors.Invalid("date %q must be YYYY-MM-DD", raw)
	}
	return raw, nil
}

func OptionalTitle(raw string) *string {
	title := strings.TrimSpace(raw)
	if title == "" {
		return nil
	}
	return &title
}
