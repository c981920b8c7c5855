package out

import (
	"context"
	"time"

	"pomotrack/internal/modules/timer/domain"
)

// SessionStore persists timer sessions. Lookups that miss return an error
// wrapping apperrors.ErrNotFound; GetActiveSession returns
// apperrors.ErrNoActiveSession.
type SessionStore interface {
	GetActiveSession(ctx context.Context, userID string) (domain.TimerSession, error)
	CreateSession(ctx context.Context, session domain.NewSession) (int64, error)
	GetSessionByID(ctx context.Context, id int64) (domain.TimerSession, error)
	GetSessionByIDForUser(ctx context.Context, id int64, userID string) (domain.TimerSession, error)
	UpdatePausedStatus(ctx context.Context, id int64, userID string, paused bool) (domain.TimerSession, error)
	CompleteSession(ctx context.Context, id int64, userID string, at time.Time) (domain.TimerSession, error)
	UpdateSessionNotes(ctx context.Context, id int64, userID string, notes *string) (domain.TimerSession, error)
	GetHistory(ctx context.Context, userID string, limit int) ([]domain.TimerSession, error)
}
