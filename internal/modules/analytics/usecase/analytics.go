package usecase

import (
	"context"

	"pomotrack/internal/modules/analytics/domain"
	"pomotrack/internal/modules/analytics/dto"
	analyticsin "pomotrack/internal/modules/analytics/port/in"
	"pomotrack/internal/modules/analytics/service"
)

type Interactor struct {
	svc *service.AnalyticsService
}

func NewInteractor(svc *service.AnalyticsService) analyticsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Streak(ctx context.Context, input dto.UserInput) (dto.StreakOutput, error) {
	streak, err := i.svc.Streak(ctx, input.UserID)
	if err != nil {
		return dto.StreakOutput{}, err
	}
	return toStreakOutput(streak), nil
}

func (i *Interactor) TodaySchedule(ctx context.Context, input dto.UserInput) ([]dto.ScheduleItemOutput, error) {
	items, err := i.svc.TodaySchedule(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return toScheduleOutput(items), nil
}

func (i *Interactor) WeeklyStats(ctx context.Context, input dto.UserInput) (dto.WeeklyStatsOutput, error) {
	stats, err := i.svc.WeeklyStats(ctx, input.UserID)
	if err != nil {
		return dto.WeeklyStatsOutput{}, err
	}
	return dto.WeeklyStatsOutput{
		TotalFocusTime:    stats.TotalFocusTime,
		SessionsCompleted: stats.SessionsCompleted,
		AverageSession:    stats.AverageSession,
	}, nil
}

func (i *Interactor) Overview(ctx context.Context, input dto.UserInput) (dto.OverviewOutput, error) {
	overview, err := i.svc.Overview(ctx, input.UserID)
	if err != nil {
		return dto.OverviewOutput{}, err
	}
	templates := make([]dto.TemplateOutput, 0, len(overview.Templates))
	for _, t := range overview.Templates {
		templates = append(templates, dto.TemplateOutput{
			ID:                t.ID,
			Name:              t.Name,
			FocusMinutes:      t.FocusMinutes,
			ShortBreakMinutes: t.ShortBreakMinutes,
			LongBreakMinutes:  t.LongBreakMinutes,
			Cycles:            t.Cycles,
		})
	}
	return dto.OverviewOutput{
		Streak:        toStreakOutput(overview.Streak),
		TodaySchedule: toScheduleOutput(overview.Today),
		Templates:     templates,
	}, nil
}

func toStreakOutput(s domain.StreakSummary) dto.StreakOutput {
	return dto.StreakOutput{
		CurrentStreak: s.CurrentStreak,
		LongestStreak: s.LongestStreak,
		TotalDays:     s.TotalDays,
		LastLoginDate: s.LastLoginDate,
	}
}

func toScheduleOutput(items []domain.ScheduleItem) []dto.ScheduleItemOutput {
	out := make([]dto.ScheduleItemOutput, 0, len(items))
	for _, item := range items {
		out = append(out, dto.ScheduleItemOutput{
			ID:          item.ID,
			Time:        item.Time,
			Title:       item.Title,
			DurationMin: item.DurationMin,
			TemplateID:  item.TemplateID,
		})
	}
	return out
}
