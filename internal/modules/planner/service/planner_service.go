package service

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"pomotrack/internal/modules/planner/domain"
	plannerout "pomotrack/internal/modules/planner/port/out"
	"pomotrack/internal/platform/clock"
	apperrors "pomotrack/internal/platform/errors"
	"pomotrack/internal/platform/logging"
)

type ScheduleParams struct {
	UserID      string
	TemplateID  *int64
	Title       string
	StartAt     string
	DurationMin *int
}

type PlannerService struct {
	clock clock.Clock
	store plannerout.PlanStore
	log   *logrus.Entry
}

func NewPlannerService(clock clock.Clock, store plannerout.PlanStore, log *logrus.Entry) *PlannerService {
	if log == nil {
		log = logging.Component(nil, "planner")
	}
	return &PlannerService{clock: clock, store: store, log: log}
}

func (s *PlannerService) AddTemplate(ctx context.Context, template domain.Template) (domain.Template, error) {
	if err := requireUser(template.UserID); err != nil {
		return domain.Template{}, err
	}
	normalized, err := domain.NormalizeTemplate(template)
	if err != nil {
		return domain.Template{}, err
	}
	normalized.CreatedAt = s.clock.Now()
	id, err := s.store.CreateTemplate(ctx, normalized)
	if err != nil {
		return domain.Template{}, err
	}
	normalized.ID = id
	s.log.WithFields(logrus.Fields{"user": normalized.UserID, "template": id}).Debug("template added")
	return normalized, nil
}

func (s *PlannerService) ListTemplates(ctx context.Context, userID string) ([]domain.Template, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	return s.store.ListTemplates(ctx, userID)
}

func (s *PlannerService) ScheduleSession(ctx context.Context, params ScheduleParams) (domain.ScheduledSession, error) {
	if err := requireUser(params.UserID); err != nil {
		return domain.ScheduledSession{}, err
	}
	now := s.clock.Now()
	startAt, err := domain.ParseStart(params.StartAt, now.Location())
	if err != nil {
		return domain.ScheduledSession{}, err
	}
	if params.DurationMin != nil && *params.DurationMin <= 0 {
		return domain.ScheduledSession{}, apperrors.Invalid("duration_min must be positive")
	}
	if params.TemplateID != nil {
		if _, err := s.store.GetTemplateForUser(ctx, *params.TemplateID, params.UserID); err != nil {
			return domain.ScheduledSession{}, err
		}
	}
	session := domain.ScheduledSession{
		UserID:      params.UserID,
		TemplateID:  params.TemplateID,
		Title:       domain.OptionalTitle(params.Title),
		StartAt:     startAt,
		DurationMin: params.DurationMin,
		CreatedAt:   now,
	}
	session.ID, err = s.store.CreateScheduledSession(ctx, session)
	if err != nil {
		return domain.ScheduledSession{}, err
	}
	s.log.WithFields(logrus.Fields{"user": session.UserID, "scheduled": session.ID}).Debug("session scheduled")
	return session, nil
}

func (s *PlannerService) ListSchedule(ctx context.Context, userID, date string) ([]domain.ScheduledSession, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	day, err := domain.ParseDay(date, s.clock.Now())
	if err != nil {
		return nil, err
	}
	return s.store.ListScheduleForDate(ctx, userID, day)
}

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperrors.Invalid("user id is required")
	}
	return nil
}
