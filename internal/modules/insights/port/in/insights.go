package in

import (
	"context"

	"pomotrack/internal/modules/insights/dto"
)

type Usecase interface {
	ListCompletedSessions(ctx context.Context, input dto.UserInput) ([]dto.CompletedSessionOutput, error)
	AnalyzeSession(ctx context.Context, input dto.AnalyzeInput) (dto.AnalyzeOutput, error)
}
