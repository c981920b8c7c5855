package in

import (
	"context"

	"pomotrack/internal/modules/analytics/dto"
	analyticsin "pomotrack/internal/modules/analytics/port/in"
)

type CLIHandler struct {
	usecase analyticsin.Usecase
}

func NewCLIHandler(usecase analyticsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Streak(ctx context.Context, userID string) (dto.StreakOutput, error) {
	return h.usecase.Streak(ctx, dto.UserInput{UserID: userID})
}

func (h CLIHandler) TodaySchedule(ctx context.Context, userID string) ([]dto.ScheduleItemOutput, error) {
	return h.usecase.TodaySchedule(ctx, dto.UserInput{UserID: userID})
}

func (h CLIHandler) WeeklyStats(ctx context.Context, userID string) (dto.WeeklyStatsOutput, error) {
	return h.usecase.WeeklyStats(ctx, dto.UserInput{UserID: userID})
}

func (h CLIHandler) Overview(ctx context.Context, userID string) (dto.OverviewOutput, error) {
	return h.usecase.Overview(ctx, dto.UserInput{UserID: userID})
}
