package usecase_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	analyticsout "pomotrack/internal/modules/analytics/adapter/out"
	plannerout "pomotrack/internal/modules/planner/adapter/out"
	"pomotrack/internal/modules/planner/dto"
	plannerin "pomotrack/internal/modules/planner/port/in"
	"pomotrack/internal/modules/planner/service"
	"pomotrack/internal/modules/planner/usecase"
	"pomotrack/internal/platform/clock"
	apperrors "pomotrack/internal/platform/errors"
	"pomotrack/internal/platform/sqlitedb"
)

var berlin = time.FixedZone("CET", 60*60)

var now = time.Date(2026, 3, 10, 8, 0, 0, 0, berlin)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlitedb.Open(context.Background(), filepath.Join(t.TempDir(), "pomotrack.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newPlanner(db *sql.DB) plannerin.Usecase {
	return usecase.NewInteractor(service.NewPlannerService(clock.Fixed(now), plannerout.NewSQLitePlanStore(db), nil))
}

func intPtr(v int) *int { return &v }

func TestAddAndListTemplates(t *testing.T) {
	t.Parallel()
	uc := newPlanner(openDB(t))
	ctx := context.Background()

	deep, err := uc.AddTemplate(ctx, dto.AddTemplateInput{UserID: "u1", Name: "Deep Work", FocusMinutes: 50, Cycles: 2})
	if err != nil {
		t.Fatalf("add template: %v", err)
	}
	if deep.ID == 0 || deep.ShortBreakMinutes != 5 || deep.LongBreakMinutes != 15 || !deep.CreatedAt.Equal(now) {
		t.Fatalf("unexpected template: %+v", deep)
	}
	if _, err := uc.AddTemplate(ctx, dto.AddTemplateInput{UserID: "u1", Name: "Admin"}); err != nil {
		t.Fatalf("add template: %v", err)
	}
	if _, err := uc.AddTemplate(ctx, dto.AddTemplateInput{UserID: "u2", Name: "Other"}); err != nil {
		t.Fatalf("add template: %v", err)
	}
	if _, err := uc.AddTemplate(ctx, dto.AddTemplateInput{UserID: "u1", Name: ""}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid template, got %v", err)
	}

	list, err := uc.ListTemplates(ctx, dto.UserInput{UserID: "u1"})
	if err != nil {
		t.Fatalf("list templates: %v", err)
	}
	if len(list) != 2 || list[0].Name != "Admin" || list[1].Name != "Deep Work" || list[1].FocusMinutes != 50 {
		t.Fatalf("unexpected templates: %+v", list)
	}
}

func TestScheduleSessionValidation(t *testing.T) {
	t.Parallel()
	db := openDB(t)
	uc := newPlanner(db)
	ctx := context.Background()
	foreign, err := uc.AddTemplate(ctx, dto.AddTemplateInput{UserID: "u2", Name: "Other"})
	if err != nil {
		t.Fatalf("add template: %v", err)
	}

	if _, err := uc.ScheduleSession(ctx, dto.ScheduleInput{UserID: "u1"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("missing start must be invalid, got %v", err)
	}
	if _, err := uc.ScheduleSession(ctx, dto.ScheduleInput{UserID: "u1", StartAt: "2026-03-10 10:00", DurationMin: intPtr(0)}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("zero duration must be invalid, got %v", err)
	}
	if _, err := uc.ScheduleSession(ctx, dto.ScheduleInput{UserID: "u1", StartAt: "2026-03-10 10:00", TemplateID: &foreign.ID}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("foreign template must be not found, got %v", err)
	}
}

func TestListScheduleUsesLocalCalendarDay(t *testing.T) {
	t.Parallel()
	db := openDB(t)
	uc := newPlanner(db)
	ctx := context.Background()
	tpl, err := uc.AddTemplate(ctx, dto.AddTemplateInput{UserID: "u1", Name: "Deep Work", FocusMinutes: 45})
	if err != nil {
		t.Fatalf("add template: %v", err)
	}

	inputs := []dto.ScheduleInput{
		{UserID: "u1", StartAt: "2026-03-10 14:00", Title: "Review"},
		{UserID: "u1", StartAt: "2026-03-10 09:00", TemplateID: &tpl.ID},
		// 23:30 UTC on the 9th is 00:30 local on the 10th
		{UserID: "u1", StartAt: "2026-03-09T23:30:00Z", Title: "  ", DurationMin: intPtr(10)},
		{UserID: "u1", StartAt: "2026-03-11 09:00"},
	}
	for _, input := range inputs {
		if _, err := uc.ScheduleSession(ctx, input); err != nil {
			t.Fatalf("schedule %+v: %v", input, err)
		}
	}

	today, err := uc.ListSchedule(ctx, dto.ListScheduleInput{UserID: "u1"})
	if err != nil {
		t.Fatalf("list schedule: %v", err)
	}
	if len(today) != 3 {
		t.Fatalf("expected three sessions today, got %d", len(today))
	}
	if today[0].Title != nil || today[0].DurationMin == nil || *today[0].DurationMin != 10 {
		t.Fatalf("blank title must be stored as absent: %+v", today[0])
	}
	if today[1].TemplateID == nil || *today[1].TemplateID != tpl.ID {
		t.Fatalf("unexpected second session: %+v", today[1])
	}
	if today[2].Title == nil || *today[2].Title != "Review" {
		t.Fatalf("unexpected third session: %+v", today[2])
	}

	tomorrow, err := uc.ListSchedule(ctx, dto.ListScheduleInput{UserID: "u1", Date: "2026-03-11"})
	if err != nil {
		t.Fatalf("list schedule: %v", err)
	}
	if len(tomorrow) != 1 {
		t.Fatalf("expected one session tomorrow, got %d", len(tomorrow))
	}

	items, err := analyticsout.NewSQLiteAnalyticsStore(db).GetTodaySchedule(ctx, "u1", "2026-03-10")
	if err != nil {
		t.Fatalf("analytics schedule: %v", err)
	}
	if len(items) != 3 || items[1].TemplateName == nil || *items[1].TemplateName != "Deep Work" {
		t.Fatalf("analytics must see planner rows: %+v", items)
	}
}
