package service

import (
	"context"
	"strings"

	"pomotrack/internal/modules/analytics/domain"
	analyticsout "pomotrack/internal/modules/analytics/port/out"
	"pomotrack/internal/platform/clock"
	apperrors "pomotrack/internal/platform/errors"
)

type AnalyticsService struct {
	clock clock.Clock
	store analyticsout.AnalyticsStore
}

func NewAnalyticsService(clock clock.Clock, store analyticsout.AnalyticsStore) *AnalyticsService {
	return &AnalyticsService{clock: clock, store: store}
}

func (s *AnalyticsService) Streak(ctx context.Context, userID string) (domain.StreakSummary, error) {
	if err := requireUser(userID); err != nil {
		return domain.StreakSummary{}, err
	}
	now := s.clock.Now()
	desc, err := s.store.GetDistinctDatesDesc(ctx, userID)
	if err != nil {
		return domain.StreakSummary{}, err
	}
	asc, err := s.store.GetDistinctDatesAsc(ctx, userID)
	if err != nil {
		return domain.StreakSummary{}, err
	}
	total, err := s.store.GetTotalActiveDays(ctx, userID)
	if err != nil {
		return domain.StreakSummary{}, err
	}
	last, err := s.store.GetLastCompletedDate(ctx, userID)
	if err != nil {
		return domain.StreakSummary{}, err
	}
	if last == "" {
		last = clock.DateString(now)
	}
	return domain.StreakSummary{
		CurrentStreak: domain.CurrentStreak(now, desc),
		LongestStreak: domain.LongestStreak(asc),
		TotalDays:     total,
		LastLoginDate: last,
	}, nil
}

func (s *AnalyticsService) TodaySchedule(ctx context.Context, userID string) ([]domain.ScheduleItem, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	now := s.clock.Now()
	entries, err := s.store.GetTodaySchedule(ctx, userID, clock.DateString(now))
	if err != nil {
		return nil, err
	}
	out := make([]domain.ScheduleItem, 0, len(entries))
	for _, entry := range entries {
		out = append(out, domain.FormatScheduleItem(entry, now.Location()))
	}
	return out, nil
}

// WeeklyStats aggregates completed focus sessions started in the trailing
// seven days.
func (s *AnalyticsService) WeeklyStats(ctx context.Context, userID string) (domain.WeeklyStats, error) {
	if err := requireUser(userID); err != nil {
		return domain.WeeklyStats{}, err
	}
	since := s.clock.Now().Add(-domain.StatsWindow)
	totals, err := s.store.GetSevenDayStats(ctx, userID, since)
	if err != nil {
		return domain.WeeklyStats{}, err
	}
	return domain.ComputeWeekly(totals), nil
}

func (s *AnalyticsService) Overview(ctx context.Context, userID string) (domain.Overview, error) {
	streak, err := s.Streak(ctx, userID)
	if err != nil {
		return domain.Overview{}, err
	}
	today, err := s.TodaySchedule(ctx, userID)
	if err != nil {
		return domain.Overview{}, err
	}
	templates, err := s.store.GetTemplates(ctx, userID)
	if err != nil {
		return domain.Overview{}, err
	}
	return domain.Overview{Streak: streak, Today: today, Templates: templates}, nil
}

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperrors.Invalid("user id is required")
	}
	return nil
}
