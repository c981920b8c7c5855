package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"pomotrack/internal/modules/insights/domain"
	insightsout "pomotrack/internal/modules/insights/port/out"
	"pomotrack/internal/platform/clock"
	apperrors "pomotrack/internal/platform/errors"
	"pomotrack/internal/platform/logging"
)

type AnalyzeParams struct {
	UserID string
	ID     string
	Label  *string
	Score  *string
}

type InsightsService struct {
	clock      clock.Clock
	store      insightsout.InsightsStore
	classifier insightsout.SentimentClassifier
	exporter   insightsout.ReflectionExporter
	log        *logrus.Entry
}

// NewInsightsService wires the correlator. classifier and exporter are
// optional.
func NewInsightsService(clock clock.Clock, store insightsout.InsightsStore, classifier insightsout.SentimentClassifier, exporter insightsout.ReflectionExporter, log *logrus.Entry) *InsightsService {
	if log == nil {
		log = logging.Component(nil, "insights")
	}
	return &InsightsService{clock: clock, store: store, classifier: classifier, exporter: exporter, log: log}
}

func (s *InsightsService) ListCompletedSessions(ctx context.Context, userID string) ([]domain.RunSummary, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	records, err := s.store.GetCompletedRuns(ctx, userID)
	if err != nil {
		return nil, err
	}
	runs := domain.GroupRuns(records)
	representatives := map[string]int64{}
	if hasGroupedRun(runs) {
		if representatives, err = s.store.GetGroupRepresentatives(ctx, userID); err != nil {
			return nil, err
		}
	}
	titles := map[int64]string{}
	out := make([]domain.RunSummary, 0, len(runs))
	for _, run := range runs {
		representative := domain.RepresentativeID(run.IDs())
		if run.GroupID != nil {
			if id, ok := representatives[*run.GroupID]; ok {
				representative = id
			}
		}
		title, err := s.runTitle(ctx, run, titles)
		if err != nil {
			return nil, err
		}
		out = append(out, run.Summarize(representative, title))
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].CompletedAt, out[j].CompletedAt
		switch {
		case a == nil && b == nil:
			return out[i].ID > out[j].ID
		case a == nil:
			return false
		case b == nil:
			return true
		case a.Equal(*b):
			return out[i].ID > out[j].ID
		default:
			return a.After(*b)
		}
	})
	return out, nil
}

func hasGroupedRun(runs []domain.Run) bool {
	for _, run := range runs {
		if run.GroupID != nil && *run.GroupID != "" {
			return true
		}
	}
	return false
}

func (s *InsightsService) runTitle(ctx context.Context, run domain.Run, cache map[int64]string) (string, error) {
	templateID := run.TemplateID()
	if templateID == nil {
		return domain.DefaultRunTitle, nil
	}
	name, ok := cache[*templateID]
	if !ok {
		var err error
		name, err = s.store.GetTemplateNameByID(ctx, *templateID)
		if err != nil {
			return "", err
		}
		cache[*templateID] = name
	}
	if strings.TrimSpace(name) == "" {
		return domain.DefaultRunTitle, nil
	}
	return name, nil
}

// AnalyzeSession stores a sentiment result on the submitted session and
// reports it under the session group's representative id.
func (s *InsightsService) AnalyzeSession(ctx context.Context, params AnalyzeParams) (domain.AnalysisResult, error) {
	if err := requireUser(params.UserID); err != nil {
		return domain.AnalysisResult{}, err
	}
	sessionID, err := domain.ParseSessionID(params.ID)
	if err != nil {
		return domain.AnalysisResult{}, err
	}
	session, err := s.store.FindTimerSessionForUser(ctx, sessionID, params.UserID)
	if err != nil {
		return domain.AnalysisResult{}, err
	}
	score, err := domain.ParseScore(params.Score)
	if err != nil {
		return domain.AnalysisResult{}, err
	}
	label := domain.NormalizeLabel(params.Label)

	source := domain.SourceManual
	if label == nil && score == nil && s.classifier != nil && session.Notes != nil && strings.TrimSpace(*session.Notes) != "" {
		sentiment, err := s.classifier.Classify(ctx, *session.Notes)
		if err != nil {
			return domain.AnalysisResult{}, fmt.Errorf("classify session %d: %w", sessionID, err)
		}
		label = domain.NormalizeLabel(&sentiment.Label)
		score = sentiment.Score
		source = domain.SourceClassifier
	}

	analyzedAt := s.clock.Now()
	if err := s.store.UpdateTimerSentiment(ctx, sessionID, params.UserID, analyzedAt, label, score); err != nil {
		return domain.AnalysisResult{}, err
	}

	reported := sessionID
	if session.SessionGroupID != nil && *session.SessionGroupID != "" {
		reported, err = s.store.GetRepresentativeIDForGroup(ctx, params.UserID, *session.SessionGroupID)
		if err != nil {
			return domain.AnalysisResult{}, err
		}
	}

	if s.exporter != nil {
		notes := ""
		if session.Notes != nil {
			notes = *session.Notes
		}
		path, err := s.exporter.Export(ctx, domain.Reflection{
			SessionID:       sessionID,
			RunID:           reported,
			Phase:           session.Phase,
			DurationMinutes: session.DurationMinutes,
			StartTime:       session.StartTime,
			EndTime:         session.EndTime,
			Notes:           notes,
			Label:           label,
			Score:           score,
			AnalyzedAt:      analyzedAt,
		})
		if err != nil {
			s.log.WithError(err).WithField("session", sessionID).Warn("reflection export failed")
		} else {
			s.log.WithFields(logrus.Fields{"session": sessionID, "path": path}).Debug("reflection exported")
		}
	}

	s.log.WithFields(logrus.Fields{
		"user":    params.UserID,
		"session": sessionID,
		"run":     reported,
		"source":  source,
	}).Info("session analyzed")

	return domain.AnalysisResult{
		ID:         reported,
		DisplayID:  domain.FormatDisplayID(reported),
		SessionID:  sessionID,
		Label:      label,
		Score:      score,
		AnalyzedAt: analyzedAt,
		Source:     source,
	}, nil
}

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperrors.Invalid("user id is required")
	}
	return nil
}
