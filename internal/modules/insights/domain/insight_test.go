package domain_test

import (
	"errors"
	"testing"
	"time"

	"pomotrack/internal/modules/insights/domain"
	apperrors "pomotrack/internal/platform/errors"
)

func ptr[T any](v T) *T { return &v }

func TestParseSessionID(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"42", "session-42", " session-42 "} {
		id, err := domain.ParseSessionID(raw)
		if err != nil || id != 42 {
			t.Fatalf("%q: expected 42, got %d (%v)", raw, id, err)
		}
	}
	for _, raw := range []string{"", "  ", "abc", "session-", "session-x1", "run-42", "4.2"} {
		if _, err := domain.ParseSessionID(raw); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("%q: expected validation error, got %v", raw, err)
		}
	}
	if domain.FormatDisplayID(42) != "session-42" {
		t.Fatalf("unexpected display id %s", domain.FormatDisplayID(42))
	}
}

func TestParseScore(t *testing.T) {
	t.Parallel()
	if score, err := domain.ParseScore(nil); err != nil || score != nil {
		t.Fatalf("nil score must stay absent")
	}
	if score, err := domain.ParseScore(ptr("  ")); err != nil || score != nil {
		t.Fatalf("blank score must stay absent")
	}
	score, err := domain.ParseScore(ptr("0.75"))
	if err != nil || score == nil || *score != 0.75 {
		t.Fatalf("expected 0.75, got %v (%v)", score, err)
	}
	for _, raw := range []string{"high", "NaN", "Inf", "-Inf", "1e400"} {
		if _, err := domain.ParseScore(ptr(raw)); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("%q: expected validation error, got %v", raw, err)
		}
	}
}

func TestRepresentativeIsSmallestID(t *testing.T) {
	t.Parallel()
	if got := domain.RepresentativeID([]int64{9, 4, 7}); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	if got := domain.RepresentativeID(nil); got != 0 {
		t.Fatalf("expected 0 for empty group, got %d", got)
	}
}

func TestGroupRunsAndSummarize(t *testing.T) {
	t.Parallel()
	t1 := time.Date(2026, 3, 1, 9, 25, 0, 0, time.UTC)
	t2 := time.Date(2026, 3, 1, 9, 55, 0, 0, time.UTC)
	a1 := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	a2 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	records := []domain.SessionRecord{
		{ID: 3, Phase: "focus", DurationMinutes: 25, Completed: true, EndTime: &t2, SessionGroupID: ptr("g1"), AnalyzedAt: &a2, SentimentLabel: ptr("positive"), SentimentScore: ptr(0.8)},
		{ID: 1, Phase: "focus", DurationMinutes: 25, Completed: true, EndTime: &t1, SessionGroupID: ptr("g1"), AnalyzedAt: &a1, SentimentLabel: ptr("negative"), Notes: ptr("tired")},
		{ID: 2, Phase: "short_break", DurationMinutes: 5, Completed: true, SessionGroupID: ptr("g1")},
		{ID: 5, Phase: "focus", DurationMinutes: 50, Completed: true, TemplateID: ptr(int64(7))},
	}
	runs := domain.GroupRuns(records)
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	group := runs[0]
	if ids := group.IDs(); len(ids) != 3 || ids[0] != 1 || ids[2] != 3 {
		t.Fatalf("members must be sorted by id, got %v", ids)
	}
	summary := group.Summarize(domain.RepresentativeID(group.IDs()), domain.DefaultRunTitle)
	if summary.ID != 1 || summary.DisplayID != "session-1" {
		t.Fatalf("expected representative 1, got %+v", summary)
	}
	if summary.FocusMinutes != 50 || summary.Cycles != 2 {
		t.Fatalf("expected 50 focus minutes over 2 cycles, got %d/%d", summary.FocusMinutes, summary.Cycles)
	}
	if summary.CompletedAt == nil || !summary.CompletedAt.Equal(t2) {
		t.Fatalf("expected latest end time, got %v", summary.CompletedAt)
	}
	if summary.Sentiment == nil || summary.Sentiment.Label != "positive" || *summary.Sentiment.Score != 0.8 {
		t.Fatalf("expected latest analysis to win, got %+v", summary.Sentiment)
	}
	if summary.Notes == nil || *summary.Notes != "tired" {
		t.Fatalf("expected notes from member, got %v", summary.Notes)
	}
	single := runs[1]
	if single.TemplateID() == nil || *single.TemplateID() != 7 {
		t.Fatalf("expected template id 7")
	}
	if s := single.Summarize(5, "Deep"); s.Sentiment != nil || s.AnalyzedAt != nil {
		t.Fatalf("unanalyzed run must not carry sentiment, got %+v", s)
	}
}
