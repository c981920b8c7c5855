package out

import (
	"context"
	"time"

	"pomotrack/internal/modules/analytics/domain"
)

// AnalyticsStore is the read side over persisted sessions, schedule entries
// and templates. Dates are calendar days as returned by domain.ParseDate.
type AnalyticsStore interface {
	GetDistinctDatesDesc(ctx context.Context, userID string) ([]time.Time, error)
	GetDistinctDatesAsc(ctx context.Context, userID string) ([]time.Time, error)
	GetTotalActiveDays(ctx context.Context, userID string) (int, error)
	// GetLastCompletedDate returns "" when the user has no completed session.
	GetLastCompletedDate(ctx context.Context, userID string) (string, error)
	GetTodaySchedule(ctx context.Context, userID, date string) ([]domain.ScheduledSession, error)
	GetSevenDayStats(ctx context.Context, userID string, since time.Time) (domain.FocusTotals, error)
	GetTemplates(ctx context.Context, userID string) ([]domain.Template, error)
}
