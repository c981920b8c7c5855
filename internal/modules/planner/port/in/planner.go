package in

import (
	"context"

	"pomotrack/internal/modules/planner/dto"
)

type Usecase interface {
	AddTemplate(ctx context.Context, input dto.AddTemplateInput) (dto.TemplateOutput, error)
	ListTemplates(ctx context.Context, input dto.UserInput) ([]dto.TemplateOutput, error)
	ScheduleSession(ctx context.Context, input dto.ScheduleInput) (dto.ScheduledSessionOutput, error)
	ListSchedule(ctx context.Context, input dto.ListScheduleInput) ([]dto.ScheduledSessionOutput, error)
}
