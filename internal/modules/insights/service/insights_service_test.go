package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	insightsadapter "pomotrack/internal/modules/insights/adapter/out"
	insightsout "pomotrack/internal/modules/insights/port/out"
	"pomotrack/internal/modules/insights/service"
	"pomotrack/internal/platform/clock"
	"pomotrack/internal/platform/sqlitedb"
)

type countingStore struct {
	insightsout.InsightsStore
	perGroup int
	batched  int
}

func (c *countingStore) GetRepresentativeIDForGroup(ctx context.Context, userID, groupID string) (int64, error) {
	c.perGroup++
	return c.InsightsStore.GetRepresentativeIDForGroup(ctx, userID, groupID)
}

func (c *countingStore) GetGroupRepresentatives(ctx context.Context, userID string) (map[string]int64, error) {
	c.batched++
	return c.InsightsStore.GetGroupRepresentatives(ctx, userID)
}

func TestListCompletedSessionsLoadsRepresentativesOnce(t *testing.T) {
	t.Parallel()
	db, err := sqlitedb.Open(context.Background(), filepath.Join(t.TempDir(), "pomotrack.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Date(2026, 4, 2, 18, 0, 0, 0, time.UTC)
	insert := func(group string, start time.Time, completed bool) {
		t.Helper()
		_, err := db.Exec(`
INSERT INTO timer_sessions (user_id, duration_minutes, phase, completed, start_time, start_date, end_time, session_group_id)
VALUES ('u1', 25, 'focus', ?, ?, ?, ?, ?);`,
			sqlitedb.BoolInt(completed), sqlitedb.FormatTime(start), clock.DateString(start), sqlitedb.FormatTime(start.Add(25*time.Minute)), group)
		if err != nil {
			t.Fatalf("insert session: %v", err)
		}
	}
	// the open first member of run-a still anchors the run
	insert("run-a", now.Add(-6*time.Hour), false)
	insert("run-a", now.Add(-5*time.Hour), true)
	insert("run-b", now.Add(-4*time.Hour), true)
	insert("run-b", now.Add(-3*time.Hour), true)
	insert("run-c", now.Add(-2*time.Hour), true)

	store := &countingStore{InsightsStore: insightsadapter.NewSQLiteInsightsStore(db)}
	svc := service.NewInsightsService(clock.Fixed(now), store, nil, nil, nil)
	runs, err := svc.ListCompletedSessions(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if store.batched != 1 || store.perGroup != 0 {
		t.Fatalf("expected one batched lookup, got batched=%d per-group=%d", store.batched, store.perGroup)
	}
	want := []int64{5, 3, 1}
	if len(runs) != len(want) {
		t.Fatalf("expected %d runs, got %d", len(want), len(runs))
	}
	for i, id := range want {
		if runs[i].ID != id {
			t.Fatalf("run %d: expected representative %d, got %d", i, id, runs[i].ID)
		}
	}
}
