package domain_test

import (
	"errors"
	"math"
	"testing"

	"pomotrack/internal/modules/timer/domain"
	apperrors "pomotrack/internal/platform/errors"
)

func TestPhaseValidate(t *testing.T) {
	t.Parallel()
	for _, phase := range []domain.Phase{domain.PhaseFocus, domain.PhaseShortBreak, domain.PhaseLongBreak} {
		if err := phase.Validate(); err != nil {
			t.Fatalf("%s should be valid: %v", phase, err)
		}
	}
	for _, phase := range []domain.Phase{"", "nap", "FOCUS"} {
		if err := phase.Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("%q should be a validation error, got %v", phase, err)
		}
	}
}

func TestNormalizeDuration(t *testing.T) {
	t.Parallel()
	ok := map[float64]int{25: 25, 0.5: 1, 24.2: 25, 1: 1}
	for in, want := range ok {
		got, err := domain.NormalizeDuration(in)
		if err != nil || got != want {
			t.Fatalf("duration %v: expected %d, got %d (%v)", in, want, got, err)
		}
	}
	for _, in := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := domain.NormalizeDuration(in); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("duration %v should fail validation, got %v", in, err)
		}
	}
}

func TestClampHistoryLimit(t *testing.T) {
	t.Parallel()
	cases := map[string]int{
		"":    50,
		"0":   50,
		"-3":  50,
		"abc": 50,
		"1":   1,
		"75":  75,
		"200": 200,
		"500": 200,
		" 20": 20,
	}
	for raw, want := range cases {
		if got := domain.ClampHistoryLimit(raw); got != want {
			t.Fatalf("limit %q: expected %d, got %d", raw, want, got)
		}
	}
}

func TestSessionState(t *testing.T) {
	t.Parallel()
	s := domain.TimerSession{}
	if s.State() != domain.StateRunning {
		t.Fatalf("expected running, got %s", s.State())
	}
	s.Paused = true
	if s.State() != domain.StatePaused {
		t.Fatalf("expected paused, got %s", s.State())
	}
	s.Completed = true
	if s.State() != domain.StateCompleted {
		t.Fatalf("completed must win over paused, got %s", s.State())
	}
}
