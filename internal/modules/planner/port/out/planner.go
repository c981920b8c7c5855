package out

import (
	"context"

	"pomotrack/internal/modules/planner/domain"
)

type PlanStore interface {
	CreateTemplate(ctx context.Context, template domain.Template) (int64, error)
	GetTemplateForUser(ctx context.Context, id int64, userID string) (domain.Template, error)
	ListTemplates(ctx context.Context, userID string) ([]domain.Template, error)
	CreateScheduledSession(ctx context.Context, session domain.ScheduledSession) (int64, error)
	// ListScheduleForDate returns sessions whose local start date is date,
	// ordered by start.
	ListScheduleForDate(ctx context.Context, userID, date string) ([]domain.ScheduledSession, error)
}
