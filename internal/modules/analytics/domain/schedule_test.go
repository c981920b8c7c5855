package domain_test

import (
	"testing"
	"time"

	"pomotrack/internal/modules/analytics/domain"
)

func ptr[T any](v T) *T { return &v }

func TestFormatScheduleItemFallbacks(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 10, 7, 5, 0, 0, time.UTC)
	cases := []struct {
		name     string
		in       domain.ScheduledSession
		title    string
		duration int
	}{
		{"explicit", domain.ScheduledSession{Title: ptr("Write report"), DurationMin: ptr(50), TemplateName: ptr("Deep"), TemplateFocusMinutes: ptr(45)}, "Write report", 50},
		{"template", domain.ScheduledSession{Title: ptr("  "), TemplateName: ptr("Deep"), TemplateFocusMinutes: ptr(45)}, "Deep", 45},
		{"defaults", domain.ScheduledSession{}, domain.UntitledSession, domain.DefaultDurationMin},
		{"zero duration falls through", domain.ScheduledSession{DurationMin: ptr(0), TemplateFocusMinutes: ptr(0)}, domain.UntitledSession, 25},
	}
	for _, tc := range cases {
		tc.in.StartAt = start
		item := domain.FormatScheduleItem(tc.in, time.UTC)
		if item.Title != tc.title || item.DurationMin != tc.duration {
			t.Fatalf("%s: expected %q/%d, got %q/%d", tc.name, tc.title, tc.duration, item.Title, item.DurationMin)
		}
		if item.Time != "07:05" {
			t.Fatalf("%s: expected zero-padded 24h time, got %s", tc.name, item.Time)
		}
	}
}

func TestFormatScheduleItemRendersInLocation(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 10, 21, 30, 0, 0, time.UTC)
	item := domain.FormatScheduleItem(domain.ScheduledSession{StartAt: start}, time.FixedZone("UTC-3", -3*3600))
	if item.Time != "18:30" {
		t.Fatalf("expected 18:30, got %s", item.Time)
	}
}

func TestComputeWeekly(t *testing.T) {
	t.Parallel()
	stats := domain.ComputeWeekly(domain.FocusTotals{TotalMinutes: 60, Sessions: 2})
	if stats.TotalFocusTime != 60 || stats.SessionsCompleted != 2 || stats.AverageSession != 30 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	empty := domain.ComputeWeekly(domain.FocusTotals{})
	if empty != (domain.WeeklyStats{}) {
		t.Fatalf("expected zero stats, got %+v", empty)
	}
	rounded := domain.ComputeWeekly(domain.FocusTotals{TotalMinutes: 51, Sessions: 2})
	if rounded.AverageSession != 26 {
		t.Fatalf("expected 25.5 to round to 26, got %d", rounded.AverageSession)
	}
}
