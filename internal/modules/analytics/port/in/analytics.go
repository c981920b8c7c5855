package in

import (
	"context"

	"pomotrack/internal/modules/analytics/dto"
)

type Usecase interface {
	Streak(ctx context.Context, input dto.UserInput) (dto.StreakOutput, error)
	TodaySchedule(ctx context.Context, input dto.UserInput) ([]dto.ScheduleItemOutput, error)
	WeeklyStats(ctx context.Context, input dto.UserInput) (dto.WeeklyStatsOutput, error)
	Overview(ctx context.Context, input dto.UserInput) (dto.OverviewOutput, error)
}
