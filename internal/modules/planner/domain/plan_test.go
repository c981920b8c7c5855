package domain_test

import (
	"errors"
	"testing"
	"time"

	"pomotrack/internal/modules/planner/domain"
	apperrors "pomotrack/internal/platform/errors"
)

func TestNormalizeTemplateDefaults(t *testing.T) {
	t.Parallel()
	tpl, err := domain.NormalizeTemplate(domain.Template{Name: "  Deep Work ", FocusMinutes: 50})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if tpl.Name != "Deep Work" || tpl.FocusMinutes != 50 || tpl.ShortBreakMinutes != 5 || tpl.LongBreakMinutes != 15 || tpl.Cycles != 4 {
		t.Fatalf("unexpected template: %+v", tpl)
	}
	if _, err := domain.NormalizeTemplate(domain.Template{Name: " "}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("blank name must be invalid, got %v", err)
	}
	if _, err := domain.NormalizeTemplate(domain.Template{Name: "x", Cycles: -1}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("negative cycles must be invalid, got %v", err)
	}
}

func TestParseStart(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("UTC+2", 2*60*60)
	local, err := domain.ParseStart("2026-03-10 09:30", loc)
	if err != nil {
		t.Fatalf("parse local: %v", err)
	}
	if !local.Equal(time.Date(2026, 3, 10, 7, 30, 0, 0, time.UTC)) {
		t.Fatalf("local start must be read in loc, got %s", local)
	}
	instant, err := domain.ParseStart("2026-03-10T23:00:00Z", loc)
	if err != nil {
		t.Fatalf("parse rfc3339: %v", err)
	}
	if instant.Location() != loc || instant.Day() != 11 {
		t.Fatalf("instant must be moved into loc, got %s", instant)
	}
	for _, raw := range []string{"", "tomorrow", "2026-03-10"} {
		if _, err := domain.ParseStart(raw, loc); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("expected invalid for %q, got %v", raw, err)
		}
	}
}

func TestParseDay(t *testing.T) {
	t.Parallel()
	today := time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC)
	if day, err := domain.ParseDay("", today); err != nil || day != "2026-03-10" {
		t.Fatalf("blank day must be today, got %q %v", day, err)
	}
	if _, err := domain.ParseDay("10/03/2026", today); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid day, got %v", err)
	}
}
