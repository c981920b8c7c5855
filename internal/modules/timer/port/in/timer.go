package in

import (
	"context"

	"pomotrack/internal/modules/timer/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.SessionOutput, error)
	Pause(ctx context.Context, input dto.UserInput) (dto.SessionOutput, error)
	Resume(ctx context.Context, input dto.UserInput) (dto.SessionOutput, error)
	Stop(ctx context.Context, input dto.UserInput) (dto.SessionOutput, error)
	Complete(ctx context.Context, input dto.CompleteInput) (dto.SessionOutput, error)
	UpdateNotes(ctx context.Context, input dto.UpdateNotesInput) (dto.SessionOutput, error)
	GetActive(ctx context.Context, input dto.UserInput) (dto.SessionOutput, error)
	History(ctx context.Context, input dto.HistoryInput) ([]dto.SessionOutput, error)
}
