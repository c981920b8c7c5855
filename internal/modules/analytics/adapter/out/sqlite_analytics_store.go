package out

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"pomotrack/internal/modules/analytics/domain"
	analyticsout "pomotrack/internal/modules/analytics/port/out"
	"pomotrack/internal/platform/sqlitedb"
)

type SQLiteAnalyticsStore struct {
	db *sql.DB
}

func NewSQLiteAnalyticsStore(db *sql.DB) analyticsout.AnalyticsStore {
	return &SQLiteAnalyticsStore{db: db}
}

func (s *SQLiteAnalyticsStore) GetDistinctDatesDesc(ctx context.Context, userID string) ([]time.Time, error) {
	return s.distinctDates(ctx, userID, "DESC")
}

func (s *SQLiteAnalyticsStore) GetDistinctDatesAsc(ctx context.Context, userID string) ([]time.Time, error) {
	return s.distinctDates(ctx, userID, "ASC")
}

func (s *SQLiteAnalyticsStore) distinctDates(ctx context.Context, userID, order string) ([]time.Time, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT DISTINCT start_date
FROM timer_sessions
WHERE user_id = ?
ORDER BY start_date `+order+`;
`, userID)
	if err != nil {
		return nil, fmt.Errorf("query active dates: %w", err)
	}
	defer rows.Close()

	out := make([]time.Time, 0)
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan active date: %w", err)
		}
		date, err := domain.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, date)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate active dates: %w", err)
	}
	return out, nil
}

func (s *SQLiteAnalyticsStore) GetTotalActiveDays(ctx context.Context, userID string) (int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT start_date) FROM timer_sessions WHERE user_id = ?;`, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("count active days: %w", err)
	}
	return total, nil
}

func (s *SQLiteAnalyticsStore) GetLastCompletedDate(ctx context.Context, userID string) (string, error) {
	var last sql.NullString
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(start_date) FROM timer_sessions WHERE user_id = ? AND completed = 1;`, userID).Scan(&last); err != nil {
		return "", fmt.Errorf("query last completed date: %w", err)
	}
	return last.String, nil
}

func (s *SQLiteAnalyticsStore) GetTodaySchedule(ctx context.Context, userID, date string) ([]domain.ScheduledSession, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT s.id, s.template_id, s.title, s.start_at, s.duration_min, t.name, t.focus_minutes
FROM scheduled_sessions s
LEFT JOIN templates t ON t.id = s.template_id
WHERE s.user_id = ? AND s.start_date = ?
ORDER BY s.start_at ASC, s.id ASC;
`, userID, date)
	if err != nil {
		return nil, fmt.Errorf("query today schedule: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ScheduledSession, 0)
	for rows.Next() {
		var (
			item       domain.ScheduledSession
			templateID sql.NullInt64
			title      sql.NullString
			startAt    string
			duration   sql.NullInt64
			name       sql.NullString
			focus      sql.NullInt64
		)
		if err := rows.Scan(&item.ID, &templateID, &title, &startAt, &duration, &name, &focus); err != nil {
			return nil, fmt.Errorf("scan schedule entry: %w", err)
		}
		start, err := sqlitedb.ParseTime(startAt)
		if err != nil {
			return nil, err
		}
		item.StartAt = start
		item.TemplateID = sqlitedb.NullInt64(templateID)
		item.Title = sqlitedb.NullString(title)
		item.TemplateName = sqlitedb.NullString(name)
		item.DurationMin = nullInt(duration)
		item.TemplateFocusMinutes = nullInt(focus)
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedule: %w", err)
	}
	return out, nil
}

func (s *SQLiteAnalyticsStore) GetSevenDayStats(ctx context.Context, userID string, since time.Time) (domain.FocusTotals, error) {
	totals := domain.FocusTotals{}
	err := s.db.QueryRowContext(ctx, `
SELECT COALESCE(SUM(duration_minutes), 0), COUNT(*)
FROM timer_sessions
WHERE user_id = ? AND completed = 1 AND phase = 'focus' AND start_time >= ?;
`, userID, sqlitedb.FormatTime(since)).Scan(&totals.TotalMinutes, &totals.Sessions)
	if err != nil {
		return domain.FocusTotals{}, fmt.Errorf("query seven day stats: %w", err)
	}
	return totals, nil
}

func (s *SQLiteAnalyticsStore) GetTemplates(ctx context.Context, userID string) ([]domain.Template, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, name, focus_minutes, short_break_minutes, long_break_minutes, cycles
FROM templates
WHERE user_id = ?
ORDER BY name ASC, id ASC;
`, userID)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Template, 0)
	for rows.Next() {
		t := domain.Template{}
		if err := rows.Scan(&t.ID, &t.Name, &t.FocusMinutes, &t.ShortBreakMinutes, &t.LongBreakMinutes, &t.Cycles); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate templates: %w", err)
	}
	return out, nil
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
