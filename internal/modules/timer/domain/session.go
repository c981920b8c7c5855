package domain

import (
	"math"
	"strconv"
	"strings"
	"time"

	apperrors "pomotrack/internal/platform/errors"
)

type Phase string

const (
	PhaseFocus      Phase = "focus"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

const (
	DefaultTargetCycles = 4
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

func (p Phase) Validate() error {
	switch p {
	case PhaseFocus, PhaseShortBreak, PhaseLongBreak:
		return nil
	default:
		return apperrors.Invalid("phase must be one of focus, short_break, long_break; got %q", string(p))
	}
}

type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
)

type TimerSession struct {
	ID              int64
	UserID          string
	TemplateID      *int64
	DurationMinutes int
	Phase           Phase
	CurrentCycle    int
	TargetCycles    int
	Completed       bool
	Paused          bool
	StartTime       time.Time
	EndTime         *time.Time
	Notes           *string
	SentimentLabel  *string
	SentimentScore  *float64
	AnalyzedAt      *time.Time
	SessionGroupID  *string
}

func (s TimerSession) State() State {
	switch {
	case s.Completed:
		return StateCompleted
	case s.Paused:
		return StatePaused
	default:
		return StateRunning
	}
}

// NewSession carries the fields of a record about to be created.
type NewSession struct {
	UserID          string
	TemplateID      *int64
	DurationMinutes int
	Phase           Phase
	CurrentCycle    int
	TargetCycles    int
	SessionGroupID  *string
	StartTime       time.Time
}

// NormalizeDuration validates a planned length and rounds fractions up to
// whole minutes.
func NormalizeDuration(minutes float64) (int, error) {
	if math.IsNaN(minutes) || math.IsInf(minutes, 0) || minutes <= 0 {
		return 0, apperrors.Invalid("duration_minutes must be a positive number")
	}
	if minutes > math.MaxInt32 {
		return 0, apperrors.Invalid("duration_minutes is too large")
	}
	return int(math.Ceil(minutes)), nil
}

// ClampHistoryLimit parses a raw limit, defaulting to 50 and capping at 200.
func ClampHistoryLimit(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return DefaultHistoryLimit
	}
	if n > MaxHistoryLimit {
		return MaxHistoryLimit
	}
	return n
}
