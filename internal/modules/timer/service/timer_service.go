package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"pomotrack/internal/modules/timer/domain"
	timerout "pomotrack/internal/modules/timer/port/out"
	"pomotrack/internal/platform/clock"
	apperrors "pomotrack/internal/platform/errors"
	"pomotrack/internal/platform/id"
	"pomotrack/internal/platform/logging"
)

type StartParams struct {
	UserID          string
	TemplateID      *int64
	DurationMinutes float64
	Phase           domain.Phase
	CurrentCycle    int
	TargetCycles    int
	GroupID         string
	NewGroup        bool
}

type TimerService struct {
	clock clock.Clock
	idGen id.Generator
	store timerout.SessionStore
	log   *logrus.Entry
}

func NewTimerService(clock clock.Clock, idGen id.Generator, store timerout.SessionStore, log *logrus.Entry) *TimerService {
	if log == nil {
		log = logging.Component(nil, "timer")
	}
	return &TimerService{clock: clock, idGen: idGen, store: store, log: log}
}

// Start creates a running session. It does not check for an existing active
// session; exclusivity relies on callers serializing requests per user.
func (s *TimerService) Start(ctx context.Context, params StartParams) (domain.TimerSession, error) {
	if err := requireUser(params.UserID); err != nil {
		return domain.TimerSession{}, err
	}
	minutes, err := domain.NormalizeDuration(params.DurationMinutes)
	if err != nil {
		return domain.TimerSession{}, err
	}
	if err := params.Phase.Validate(); err != nil {
		return domain.TimerSession{}, err
	}
	if params.CurrentCycle < 0 {
		return domain.TimerSession{}, apperrors.Invalid("current_cycle must not be negative")
	}
	target := params.TargetCycles
	if target <= 0 {
		target = domain.DefaultTargetCycles
	}

	var group *string
	groupID := strings.TrimSpace(params.GroupID)
	if groupID == "" && params.NewGroup && s.idGen != nil {
		groupID = s.idGen.New()
	}
	if groupID != "" {
		group = &groupID
	}

	created := domain.NewSession{
		UserID:          params.UserID,
		TemplateID:      params.TemplateID,
		DurationMinutes: minutes,
		Phase:           params.Phase,
		CurrentCycle:    params.CurrentCycle,
		TargetCycles:    target,
		SessionGroupID:  group,
		StartTime:       s.clock.Now(),
	}
	sessionID, err := s.store.CreateSession(ctx, created)
	if err != nil {
		return domain.TimerSession{}, err
	}
	session, err := s.store.GetSessionByID(ctx, sessionID)
	if err != nil {
		return domain.TimerSession{}, fmt.Errorf("load created session: %w", err)
	}
	s.log.WithFields(logrus.Fields{
		"user":    params.UserID,
		"session": session.ID,
		"phase":   session.Phase,
		"cycle":   session.CurrentCycle,
	}).Debug("timer started")
	return session, nil
}

func (s *TimerService) Pause(ctx context.Context, userID string) (domain.TimerSession, error) {
	return s.setPaused(ctx, userID, true)
}

func (s *TimerService) Resume(ctx context.Context, userID string) (domain.TimerSession, error) {
	return s.setPaused(ctx, userID, false)
}

func (s *TimerService) setPaused(ctx context.Context, userID string, paused bool) (domain.TimerSession, error) {
	active, err := s.Active(ctx, userID)
	if err != nil {
		return domain.TimerSession{}, err
	}
	if active.Paused == paused {
		return active, nil
	}
	updated, err := s.store.UpdatePausedStatus(ctx, active.ID, userID, paused)
	if err != nil {
		return domain.TimerSession{}, err
	}
	s.log.WithFields(logrus.Fields{"user": userID, "session": updated.ID, "state": updated.State()}).Debug("timer toggled")
	return updated, nil
}

// Stop ends the active session early.
func (s *TimerService) Stop(ctx context.Context, userID string) (domain.TimerSession, error) {
	active, err := s.Active(ctx, userID)
	if err != nil {
		return domain.TimerSession{}, err
	}
	stopped, err := s.store.CompleteSession(ctx, active.ID, userID, s.clock.Now())
	if err != nil {
		return domain.TimerSession{}, err
	}
	s.log.WithFields(logrus.Fields{"user": userID, "session": stopped.ID}).Debug("timer stopped")
	return stopped, nil
}

// Complete finishes a specific session. Completed is terminal, so completing
// an already completed session returns it unchanged.
func (s *TimerService) Complete(ctx context.Context, userID string, sessionID int64) (domain.TimerSession, error) {
	if err := requireUser(userID); err != nil {
		return domain.TimerSession{}, err
	}
	session, err := s.store.GetSessionByIDForUser(ctx, sessionID, userID)
	if err != nil {
		return domain.TimerSession{}, err
	}
	if session.Completed {
		return session, nil
	}
	completed, err := s.store.CompleteSession(ctx, session.ID, userID, s.clock.Now())
	if err != nil {
		return domain.TimerSession{}, err
	}
	s.log.WithFields(logrus.Fields{"user": userID, "session": completed.ID}).Debug("timer completed")
	return completed, nil
}

func (s *TimerService) UpdateNotes(ctx context.Context, userID string, sessionID int64, notes *string) (domain.TimerSession, error) {
	if err := requireUser(userID); err != nil {
		return domain.TimerSession{}, err
	}
	if _, err := s.store.GetSessionByIDForUser(ctx, sessionID, userID); err != nil {
		return domain.TimerSession{}, err
	}
	return s.store.UpdateSessionNotes(ctx, sessionID, userID, notes)
}

func (s *TimerService) Active(ctx context.Context, userID string) (domain.TimerSession, error) {
	if err := requireUser(userID); err != nil {
		return domain.TimerSession{}, err
	}
	return s.store.GetActiveSession(ctx, userID)
}

func (s *TimerService) History(ctx context.Context, userID, rawLimit string) ([]domain.TimerSession, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	return s.store.GetHistory(ctx, userID, domain.ClampHistoryLimit(rawLimit))
}

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperrors.Invalid("user id is required")
	}
	return nil
}
