package in

import (
	"context"

	timerdto "pomotrack/internal/modules/timer/dto"
	timerin "pomotrack/internal/modules/timer/port/in"
)

type CLIHandler struct {
	usecase timerin.Usecase
}

func NewCLIHandler(usecase timerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, input timerdto.StartInput) (timerdto.SessionOutput, error) {
	return h.usecase.Start(ctx, input)
}

func (h CLIHandler) Pause(ctx context.Context, userID string) (timerdto.SessionOutput, error) {
	return h.usecase.Pause(ctx, timerdto.UserInput{UserID: userID})
}

func (h CLIHandler) Resume(ctx context.Context, userID string) (timerdto.SessionOutput, error) {
	return h.usecase.Resume(ctx, timerdto.UserInput{UserID: userID})
}

func (h CLIHandler) Stop(ctx context.Context, userID string) (timerdto.SessionOutput, error) {
	return h.usecase.Stop(ctx, timerdto.UserInput{UserID: userID})
}

func (h CLIHandler) Complete(ctx context.Context, userID string, sessionID int64) (timerdto.SessionOutput, error) {
	return h.usecase.Complete(ctx, timerdto.CompleteInput{UserID: userID, SessionID: sessionID})
}

func (h CLIHandler) UpdateNotes(ctx context.Context, userID string, sessionID int64, notes *string) (timerdto.SessionOutput, error) {
	return h.usecase.UpdateNotes(ctx, timerdto.UpdateNotesInput{UserID: userID, SessionID: sessionID, Notes: notes})
}

func (h CLIHandler) GetActive(ctx context.Context, userID string) (timerdto.SessionOutput, error) {
	return h.usecase.GetActive(ctx, timerdto.UserInput{UserID: userID})
}

func (h CLIHandler) History(ctx context.Context, userID, limit string) ([]timerdto.SessionOutput, error) {
	return h.usecase.History(ctx, timerdto.HistoryInput{UserID: userID, Limit: limit})
}
