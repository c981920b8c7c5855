package usecase

import (
	"context"

	"pomotrack/internal/modules/insights/dto"
	insightsin "pomotrack/internal/modules/insights/port/in"
	"pomotrack/internal/modules/insights/service"
)

type Interactor struct {
	svc *service.InsightsService
}

func NewInteractor(svc *service.InsightsService) insightsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListCompletedSessions(ctx context.Context, input dto.UserInput) ([]dto.CompletedSessionOutput, error) {
	runs, err := i.svc.ListCompletedSessions(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompletedSessionOutput, 0, len(runs))
	for _, run := range runs {
		item := dto.CompletedSessionOutput{
			ID:           run.ID,
			DisplayID:    run.DisplayID,
			Title:        run.Title,
			FocusMinutes: run.FocusMinutes,
			Cycles:       run.Cycles,
			Notes:        run.Notes,
			CompletedAt:  run.CompletedAt,
			AnalyzedAt:   run.AnalyzedAt,
		}
		if run.Sentiment != nil {
			item.Sentiment = &dto.SentimentOutput{Label: run.Sentiment.Label, Score: run.Sentiment.Score}
		}
		out = append(out, item)
	}
	return out, nil
}

func (i *Interactor) AnalyzeSession(ctx context.Context, input dto.AnalyzeInput) (dto.AnalyzeOutput, error) {
	result, err := i.svc.AnalyzeSession(ctx, service.AnalyzeParams{
		UserID: input.UserID,
		ID:     input.ID,
		Label:  input.SentimentLabel,
		Score:  input.SentimentScore,
	})
	if err != nil {
		return dto.AnalyzeOutput{}, err
	}
	return dto.AnalyzeOutput{
		ID:         result.ID,
		DisplayID:  result.DisplayID,
		SessionID:  result.SessionID,
		Label:      result.Label,
		Score:      result.Score,
		AnalyzedAt: result.AnalyzedAt,
		Source:     result.Source,
	}, nil
}
