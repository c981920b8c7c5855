package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pomotrack/internal/modules/planner/domain"
	plannerout "pomotrack/internal/modules/planner/port/out"
	"pomotrack/internal/platform/clock"
	apperrors "pomotrack/internal/platform/errors"
	"pomotrack/internal/platform/sqlitedb"
)

const templateColumns = `id, user_id, name, focus_minutes, short_break_minutes, long_break_minutes, cycles, created_at`

type SQLitePlanStore struct {
	db *sql.DB
}

func NewSQLitePlanStore(db *sql.DB) plannerout.PlanStore {
	return &SQLitePlanStore{db: db}
}

func (s *SQLitePlanStore) CreateTemplate(ctx context.Context, t domain.Template) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
INSERT INTO templates (user_id, name, focus_minutes, short_break_minutes, long_break_minutes, cycles, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?);
`, t.UserID, t.Name, t.FocusMinutes, t.ShortBreakMinutes, t.LongBreakMinutes, t.Cycles, sqlitedb.FormatTime(t.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("insert template: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("template id: %w", err)
	}
	return id, nil
}

func (s *SQLitePlanStore) GetTemplateForUser(ctx context.Context, id int64, userID string) (domain.Template, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+templateColumns+` FROM templates WHERE id = ? AND user_id = ?;`, id, userID)
	tpl, err := scanTemplate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Template{}, apperrors.NotFound("template %d", id)
	}
	if err != nil {
		return domain.Template{}, fmt.Errorf("query template: %w", err)
	}
	return tpl, nil
}

func (s *SQLitePlanStore) ListTemplates(ctx context.Context, userID string) ([]domain.Template, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+templateColumns+` FROM templates WHERE user_id = ? ORDER BY name ASC, id ASC;`, userID)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Template, 0)
	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		out = append(out, tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate templates: %w", err)
	}
	return out, nil
}

// CreateScheduledSession files the session under the calendar date of
// StartAt in StartAt's own location.
func (s *SQLitePlanStore) CreateScheduledSession(ctx context.Context, session domain.ScheduledSession) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
INSERT INTO scheduled_sessions (user_id, template_id, title, start_at, start_date, duration_min, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?);
`, session.UserID, session.TemplateID, session.Title, sqlitedb.FormatTime(session.StartAt), clock.DateString(session.StartAt), session.DurationMin, sqlitedb.FormatTime(session.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("insert scheduled session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("scheduled session id: %w", err)
	}
	return id, nil
}

func (s *SQLitePlanStore) ListScheduleForDate(ctx context.Context, userID, date string) ([]domain.ScheduledSession, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, user_id, template_id, title, start_at, duration_min, created_at
FROM scheduled_sessions
WHERE user_id = ? AND start_date = ?
ORDER BY start_at ASC, id ASC;
`, userID, date)
	if err != nil {
		return nil, fmt.Errorf("query schedule: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ScheduledSession, 0)
	for rows.Next() {
		var (
			item       domain.ScheduledSession
			templateID sql.NullInt64
			title      sql.NullString
			duration   sql.NullInt64
			startAt    string
			createdAt  string
		)
		if err := rows.Scan(&item.ID, &item.UserID, &templateID, &title, &startAt, &duration, &createdAt); err != nil {
			return nil, fmt.Errorf("scan scheduled session: %w", err)
		}
		if item.StartAt, err = sqlitedb.ParseTime(startAt); err != nil {
			return nil, err
		}
		if item.CreatedAt, err = sqlitedb.ParseTime(createdAt); err != nil {
			return nil, err
		}
		item.TemplateID = sqlitedb.NullInt64(templateID)
		item.Title = sqlitedb.NullString(title)
		if duration.Valid {
			minutes := int(duration.Int64)
			item.DurationMin = &minutes
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedule: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row scanner) (domain.Template, error) {
	var (
		tpl       domain.Template
		createdAt string
	)
	if err := row.Scan(&tpl.ID, &tpl.UserID, &tpl.Name, &tpl.FocusMinutes, &tpl.ShortBreakMinutes, &tpl.LongBreakMinutes, &tpl.Cycles, &createdAt); err != nil {
		return domain.Template{}, err
	}
	created, err := sqlitedb.ParseTime(createdAt)
	if err != nil {
		return domain.Template{}, err
	}
	tpl.CreatedAt = created
	return tpl, nil
}
