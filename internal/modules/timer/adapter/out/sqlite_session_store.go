package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pomotrack/internal/modules/timer/domain"
	timerout "pomotrack/internal/modules/timer/port/out"
	"pomotrack/internal/platform/clock"
	apperrors "pomotrack/internal/platform/errors"
	"pomotrack/internal/platform/sqlitedb"
)

const sessionColumns = `id, user_id, template_id, duration_minutes, phase, current_cycle, target_cycles,
  completed, paused, start_time, end_time, notes, sentiment_label, sentiment_score, analyzed_at, session_group_id`

type SQLiteSessionStore struct {
	db *sql.DB
}

func NewSQLiteSessionStore(db *sql.DB) timerout.SessionStore {
	return &SQLiteSessionStore{db: db}
}

func (s *SQLiteSessionStore) GetActiveSession(ctx context.Context, userID string) (domain.TimerSession, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT `+sessionColumns+`
FROM timer_sessions
WHERE user_id = ? AND completed = 0
ORDER BY id DESC
LIMIT 1;
`, userID)
	session, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.TimerSession{}, apperrors.ErrNoActiveSession
	}
	if err != nil {
		return domain.TimerSession{}, fmt.Errorf("query active session: %w", err)
	}
	return session, nil
}

func (s *SQLiteSessionStore) CreateSession(ctx context.Context, session domain.NewSession) (int64, error) {
	const stmt = `
INSERT INTO timer_sessions (user_id, template_id, duration_minutes, phase, current_cycle, target_cycles,
  completed, paused, start_time, start_date, session_group_id)
VALUES (?, ?, ?, ?, ?, ?, 0, 0, ?, ?, ?);
`
	res, err := s.db.ExecContext(ctx, stmt,
		session.UserID,
		session.TemplateID,
		session.DurationMinutes,
		string(session.Phase),
		session.CurrentCycle,
		session.TargetCycles,
		sqlitedb.FormatTime(session.StartTime),
		clock.DateString(session.StartTime),
		session.SessionGroupID,
	)
	if err != nil {
		return 0, fmt.Errorf("insert timer session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read timer session id: %w", err)
	}
	return id, nil
}

func (s *SQLiteSessionStore) GetSessionByID(ctx context.Context, id int64) (domain.TimerSession, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM timer_sessions WHERE id = ?;`, id)
	session, err := scanSession(row)
	return lookupResult(id, session, err)
}

func (s *SQLiteSessionStore) GetSessionByIDForUser(ctx context.Context, id int64, userID string) (domain.TimerSession, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM timer_sessions WHERE id = ? AND user_id = ?;`, id, userID)
	session, err := scanSession(row)
	return lookupResult(id, session, err)
}

func (s *SQLiteSessionStore) UpdatePausedStatus(ctx context.Context, id int64, userID string, paused bool) (domain.TimerSession, error) {
	if err := s.exec(ctx, `UPDATE timer_sessions SET paused = ? WHERE id = ? AND user_id = ?;`, id, sqlitedb.BoolInt(paused), id, userID); err != nil {
		return domain.TimerSession{}, fmt.Errorf("update paused status: %w", err)
	}
	return s.GetSessionByIDForUser(ctx, id, userID)
}

func (s *SQLiteSessionStore) CompleteSession(ctx context.Context, id int64, userID string, at time.Time) (domain.TimerSession, error) {
	if err := s.exec(ctx, `UPDATE timer_sessions SET completed = 1, paused = 0, end_time = ? WHERE id = ? AND user_id = ?;`, id, sqlitedb.FormatTime(at), id, userID); err != nil {
		return domain.TimerSession{}, fmt.Errorf("complete session: %w", err)
	}
	return s.GetSessionByIDForUser(ctx, id, userID)
}

func (s *SQLiteSessionStore) UpdateSessionNotes(ctx context.Context, id int64, userID string, notes *string) (domain.TimerSession, error) {
	if err := s.exec(ctx, `UPDATE timer_sessions SET notes = ? WHERE id = ? AND user_id = ?;`, id, notes, id, userID); err != nil {
		return domain.TimerSession{}, fmt.Errorf("update session notes: %w", err)
	}
	return s.GetSessionByIDForUser(ctx, id, userID)
}

func (s *SQLiteSessionStore) GetHistory(ctx context.Context, userID string, limit int) ([]domain.TimerSession, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT `+sessionColumns+`
FROM timer_sessions
WHERE user_id = ?
ORDER BY start_time DESC, id DESC
LIMIT ?;
`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	out := make([]domain.TimerSession, 0, limit)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		out = append(out, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return out, nil
}

func (s *SQLiteSessionStore) exec(ctx context.Context, stmt string, id int64, args ...any) error {
	res, err := s.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.NotFound("timer session %d", id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (domain.TimerSession, error) {
	var (
		session    domain.TimerSession
		phase      string
		completed  int
		paused     int
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
		&session.ID,
		&session.UserID,
		&templateID,
		&session.DurationMinutes,
		&phase,
		&session.CurrentCycle,
		&session.TargetCycles,
		&completed,
		&paused,
		&startTime,
		&endTime,
		&notes,
		&label,
		&score,
		&analyzedAt,
		&groupID,
	); err != nil {
		return domain.TimerSession{}, err
	}
	start, err := sqlitedb.ParseTime(startTime)
	if err != nil {
		return domain.TimerSession{}, err
	}
	end, err := sqlitedb.NullTime(endTime)
	if err != nil {
		return domain.TimerSession{}, err
	}
	analyzed, err := sqlitedb.NullTime(analyzedAt)
	if err != nil {
		return domain.TimerSession{}, err
	}
	session.Phase = domain.Phase(phase)
	session.Completed = completed != 0
	session.Paused = paused != 0
	session.StartTime = start
	session.EndTime = end
	session.TemplateID = sqlitedb.NullInt64(templateID)
	session.Notes = sqlitedb.NullString(notes)
	session.SentimentLabel = sqlitedb.NullString(label)
	session.SentimentScore = sqlitedb.NullFloat64(score)
	session.AnalyzedAt = analyzed
	session.SessionGroupID = sqlitedb.NullString(groupID)
	return session, nil
}

func lookupResult(id int64, session domain.TimerSession, err error) (domain.TimerSession, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.TimerSession{}, apperrors.NotFound("timer session %d", id)
	}
	if err != nil {
		return domain.TimerSession{}, fmt.Errorf("query timer session: %w", err)
	}
	return session, nil
}
