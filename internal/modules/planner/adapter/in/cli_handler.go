package in

import (
	"context"

	"pomotrack/internal/modules/planner/dto"
	plannerin "pomotrack/internal/modules/planner/port/in"
)

type CLIHandler struct {
	usecase plannerin.Usecase
}

func NewCLIHandler(usecase plannerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) AddTemplate(ctx context.Context, input dto.AddTemplateInput) (dto.TemplateOutput, error) {
	return h.usecase.AddTemplate(ctx, input)
}

func (h CLIHandler) ListTemplates(ctx context.Context, userID string) ([]dto.TemplateOutput, error) {
	return h.usecase.ListTemplates(ctx, dto.UserInput{UserID: userID})
}

func (h CLIHandler) ScheduleSession(ctx context.Context, input dto.ScheduleInput) (dto.ScheduledSessionOutput, error) {
	return h.usecase.ScheduleSession(ctx, input)
}

func (h CLIHandler) ListSchedule(ctx context.Context, userID, date string) ([]dto.ScheduledSessionOutput, error) {
	return h.usecase.ListSchedule(ctx, dto.ListScheduleInput{UserID: userID, Date: date})
}
