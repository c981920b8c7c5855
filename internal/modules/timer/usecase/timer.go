package usecase

import (
	"context"

	"pomotrack/internal/modules/timer/domain"
	timerdto "pomotrack/internal/modules/timer/dto"
	timerin "pomotrack/internal/modules/timer/port/in"
	"pomotrack/internal/modules/timer/service"
)

type Interactor struct {
	svc *service.TimerService
}

func NewInteractor(svc *service.TimerService) timerin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Start(ctx context.Context, input timerdto.StartInput) (timerdto.SessionOutput, error) {
	session, err := i.svc.Start(ctx, service.StartParams{
		UserID:          input.UserID,
		TemplateID:      input.TemplateID,
		DurationMinutes: input.DurationMinutes,
		Phase:           domain.Phase(input.Phase),
		CurrentCycle:    input.CurrentCycle,
		TargetCycles:    input.TargetCycles,
		GroupID:         input.GroupID,
		NewGroup:        input.NewGroup,
	})
	if err != nil {
		return timerdto.SessionOutput{}, err
	}
	return toOutput(session), nil
}

func (i *Interactor) Pause(ctx context.Context, input timerdto.UserInput) (timerdto.SessionOutput, error) {
	return wrap(i.svc.Pause(ctx, input.UserID))
}

func (i *Interactor) Resume(ctx context.Context, input timerdto.UserInput) (timerdto.SessionOutput, error) {
	return wrap(i.svc.Resume(ctx, input.UserID))
}

func (i *Interactor) Stop(ctx context.Context, input timerdto.UserInput) (timerdto.SessionOutput, error) {
	return wrap(i.svc.Stop(ctx, input.UserID))
}

func (i *Interactor) Complete(ctx context.Context, input timerdto.CompleteInput) (timerdto.SessionOutput, error) {
	return wrap(i.svc.Complete(ctx, input.UserID, input.SessionID))
}

func (i *Interactor) UpdateNotes(ctx context.Context, input timerdto.UpdateNotesInput) (timerdto.SessionOutput, error) {
	return wrap(i.svc.UpdateNotes(ctx, input.UserID, input.SessionID, input.Notes))
}

func (i *Interactor) GetActive(ctx context.Context, input timerdto.UserInput) (timerdto.SessionOutput, error) {
	return wrap(i.svc.Active(ctx, input.UserID))
}

func (i *Interactor) History(ctx context.Context, input timerdto.HistoryInput) ([]timerdto.SessionOutput, error) {
	sessions, err := i.svc.History(ctx, input.UserID, input.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]timerdto.SessionOutput, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, toOutput(session))
	}
	return out, nil
}

func wrap(session domain.TimerSession, err error) (timerdto.SessionOutput, error) {
	if err != nil {
		return timerdto.SessionOutput{}, err
	}
	return toOutput(session), nil
}

func toOutput(s domain.TimerSession) timerdto.SessionOutput {
	return timerdto.SessionOutput{
		ID:              s.ID,
		UserID:          s.UserID,
		TemplateID:      s.TemplateID,
		DurationMinutes: s.DurationMinutes,
		Phase:           string(s.Phase),
		State:           string(s.State()),
		CurrentCycle:    s.CurrentCycle,
		TargetCycles:    s.TargetCycles,
		Completed:       s.Completed,
		Paused:          s.Paused,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		Notes:           s.Notes,
		SentimentLabel:  s.SentimentLabel,
		SentimentScore:  s.SentimentScore,
		AnalyzedAt:      s.AnalyzedAt,
		SessionGroupID:  s.SessionGroupID,
	}
}
