package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pomotrack/internal/modules/insights/domain"
	insightsout "pomotrack/internal/modules/insights/port/out"
	apperrors "pomotrack/internal/platform/errors"
	"pomotrack/internal/platform/sqlitedb"
)

const recordColumns = `id, user_id, template_id, duration_minutes, phase, current_cycle, completed,
  start_time, end_time, notes, sentiment_label, sentiment_score, analyzed_at, session_group_id`

type SQLiteInsightsStore struct {
	db *sql.DB
}

func NewSQLiteInsightsStore(db *sql.DB) insightsout.InsightsStore {
	return &SQLiteInsightsStore{db: db}
}

func (s *SQLiteInsightsStore) GetCompletedRuns(ctx context.Context, userID string) ([]domain.SessionRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT `+recordColumns+`
FROM timer_sessions
WHERE user_id = ? AND completed = 1
ORDER BY id ASC;
`, userID)
	if err != nil {
		return nil, fmt.Errorf("query completed runs: %w", err)
	}
	defer rows.Close()

	out := make([]domain.SessionRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan completed run: %w", err)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate completed runs: %w", err)
	}
	return out, nil
}

func (s *SQLiteInsightsStore) GetTemplateNameByID(ctx context.Context, id int64) (string, error) {
	var name string
	err := s.db.QueryRowContext(ctx, `SELECT name FROM templates WHERE id = ?;`, id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query template name: %w", err)
	}
	return name, nil
}

func (s *SQLiteInsightsStore) FindTimerSessionForUser(ctx context.Context, id int64, userID string) (domain.SessionRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM timer_sessions WHERE id = ? AND user_id = ?;`, id, userID)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SessionRecord{}, apperrors.NotFound("timer session %d", id)
	}
	if err != nil {
		return domain.SessionRecord{}, fmt.Errorf("query timer session: %w", err)
	}
	return record, nil
}

func (s *SQLiteInsightsStore) UpdateTimerSentiment(ctx context.Context, id int64, userID string, at time.Time, label *string, score *float64) error {
	res, err := s.db.ExecContext(ctx, `
UPDATE timer_sessions
SET sentiment_label = ?, sentiment_score = ?, analyzed_at = ?
WHERE id = ? AND user_id = ?;
`, label, score, sqlitedb.FormatTime(at), id, userID)
	if err != nil {
		return fmt.Errorf("update sentiment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update sentiment: %w", err)
	}
	if n == 0 {
		return apperrors.NotFound("timer session %d", id)
	}
	return nil
}

func (s *SQLiteInsightsStore) GetRepresentativeIDForGroup(ctx context.Context, userID, groupID string) (int64, error) {
	var id sql.NullInt64
	err := s.db.QueryRowContext(ctx, `
SELECT MIN(id) FROM timer_sessions WHERE user_id = ? AND session_group_id = ?;
`, userID, groupID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("query group representative: %w", err)
	}
	if !id.Valid {
		return 0, apperrors.NotFound("session group %s", groupID)
	}
	return id.Int64, nil
}

func (s *SQLiteInsightsStore) GetGroupRepresentatives(ctx context.Context, userID string) (map[string]int64, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT session_group_id, MIN(id)
FROM timer_sessions
WHERE user_id = ? AND session_group_id IS NOT NULL AND session_group_id != ''
GROUP BY session_group_id;
`, userID)
	if err != nil {
		return nil, fmt.Errorf("query group representatives: %w", err)
	}
	defer rows.Close()

	out := map[string]int64{}
	for rows.Next() {
		var (
			groupID string
			id      int64
		)
		if err := rows.Scan(&groupID, &id); err != nil {
			return nil, fmt.Errorf("scan group representative: %w", err)
		}
		out[groupID] = id
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate group representatives: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (domain.SessionRecord, error) {
	var (
		record     domain.SessionRecord
		completed  int
		startTime  string
		templateID sql.NullInt64
		endTime    sql.NullString
		notes      sql.NullString
		label      sql.NullString
		score      sql.NullFloat64
		analyzedAt sql.NullString
		groupID    sql.NullString
	)
	if err := row.Scan(
		&record.ID,
		&record.UserID,
		&templateID,
		&record.DurationMinutes,
		&record.Phase,
		&record.CurrentCycle,
		&completed,
		&startTime,
		&endTime,
		&notes,
		&label,
		&score,
		&analyzedAt,
		&groupID,
	); err != nil {
		return domain.SessionRecord{}, err
	}
	start, err := sqlitedb.ParseTime(startTime)
	if err != nil {
		return domain.SessionRecord{}, err
	}
	if record.EndTime, err = sqlitedb.NullTime(endTime); err != nil {
		return domain.SessionRecord{}, err
	}
	if record.AnalyzedAt, err = sqlitedb.NullTime(analyzedAt); err != nil {
		return domain.SessionRecord{}, err
	}
	record.Completed = completed != 0
	record.StartTime = start
	record.TemplateID = sqlitedb.NullInt64(templateID)
	record.Notes = sqlitedb.NullString(notes)
	record.SentimentLabel = sqlitedb.NullString(label)
	record.SentimentScore = sqlitedb.NullFloat64(score)
	record.SessionGroupID = sqlitedb.NullString(groupID)
	return record, nil
}
