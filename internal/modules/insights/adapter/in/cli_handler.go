package in

import (
	"context"

	"pomotrack/internal/modules/insights/dto"
	insightsin "pomotrack/internal/modules/insights/port/in"
)

type CLIHandler struct {
	usecase insightsin.Usecase
}

func NewCLIHandler(usecase insightsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListCompletedSessions(ctx context.Context, userID string) ([]dto.CompletedSessionOutput, error) {
	return h.usecase.ListCompletedSessions(ctx, dto.UserInput{UserID: userID})
}

func (h CLIHandler) AnalyzeSession(ctx context.Context, userID, id string, label, score *string) (dto.AnalyzeOutput, error) {
	return h.usecase.AnalyzeSession(ctx, dto.AnalyzeInput{UserID: userID, ID: id, SentimentLabel: label, SentimentScore: score})
}
