package usecase

import (
	"context"

	"pomotrack/internal/modules/planner/domain"
	"pomotrack/internal/modules/planner/dto"
	plannerin "pomotrack/internal/modules/planner/port/in"
	"pomotrack/internal/modules/planner/service"
)

type Interactor struct {
	svc *service.PlannerService
}

func NewInteractor(svc *service.PlannerService) plannerin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) AddTemplate(ctx context.Context, input dto.AddTemplateInput) (dto.TemplateOutput, error) {
	tpl, err := i.svc.AddTemplate(ctx, domain.Template{
		UserID:            input.UserID,
		Name:              input.Name,
		FocusMinutes:      input.FocusMinutes,
		ShortBreakMinutes: input.ShortBreakMinutes,
		LongBreakMinutes:  input.LongBreakMinutes,
		Cycles:            input.Cycles,
	})
	if err != nil {
		return dto.TemplateOutput{}, err
	}
	return toTemplateOutput(tpl), nil
}

func (i *Interactor) ListTemplates(ctx context.Context, input dto.UserInput) ([]dto.TemplateOutput, error) {
	templates, err := i.svc.ListTemplates(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TemplateOutput, 0, len(templates))
	for _, tpl := range templates {
		out = append(out, toTemplateOutput(tpl))
	}
	return out, nil
}

func (i *Interactor) ScheduleSession(ctx context.Context, input dto.ScheduleInput) (dto.ScheduledSessionOutput, error) {
	session, err := i.svc.ScheduleSession(ctx, service.ScheduleParams{
		UserID:      input.UserID,
		TemplateID:  input.TemplateID,
		Title:       input.Title,
		StartAt:     input.StartAt,
		DurationMin: input.DurationMin,
	})
	if err != nil {
		return dto.ScheduledSessionOutput{}, err
	}
	return toScheduledOutput(session), nil
}

func (i *Interactor) ListSchedule(ctx context.Context, input dto.ListScheduleInput) ([]dto.ScheduledSessionOutput, error) {
	sessions, err := i.svc.ListSchedule(ctx, input.UserID, input.Date)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ScheduledSessionOutput, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toScheduledOutput(s))
	}
	return out, nil
}

func toTemplateOutput(tpl domain.Template) dto.TemplateOutput {
	return dto.TemplateOutput{
		ID:                tpl.ID,
		Name:              tpl.Name,
		FocusMinutes:      tpl.FocusMinutes,
		ShortBreakMinutes: tpl.ShortBreakMinutes,
		LongBreakMinutes:  tpl.LongBreakMinutes,
		Cycles:            tpl.Cycles,
		CreatedAt:         tpl.CreatedAt,
	}
}

func toScheduledOutput(s domain.ScheduledSession) dto.ScheduledSessionOutput {
	return dto.ScheduledSessionOutput{
		ID:          s.ID,
		TemplateID:  s.TemplateID,
		Title:       s.Title,
		StartAt:     s.StartAt,
		DurationMin: s.DurationMin,
	}
}
