package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	insightsout "pomotrack/internal/modules/insights/adapter/out"
	"pomotrack/internal/modules/insights/domain"
	"pomotrack/internal/platform/markdown"
)

func TestVaultReflectionExporterReplacesNoteOnRelabel(t *testing.T) {
	t.Parallel()
	dataDir := t.TempDir()
	exporter := insightsout.NewVaultReflectionExporter(dataDir)
	start := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(25 * time.Minute)
	label := "tired"
	score := 0.2
	reflection := domain.Reflection{
		SessionID:       12,
		RunID:           10,
		Phase:           "focus",
		DurationMinutes: 25,
		StartTime:       start,
		EndTime:         &end,
		Notes:           "slow start",
		Label:           &label,
		Score:           &score,
		AnalyzedAt:      end,
	}

	first, err := exporter.Export(context.Background(), reflection)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if first != filepath.Join(dataDir, "reflections", "2026", "04", "02", "12-tired.md") {
		t.Fatalf("unexpected path: %s", first)
	}

	relabeled := "Recovered"
	reflection.Label = &relabeled
	second, err := exporter.Export(context.Background(), reflection)
	if err != nil {
		t.Fatalf("re-export: %v", err)
	}
	if _, err := os.Stat(first); !os.IsNotExist(err) {
		t.Fatalf("stale note must be removed, stat err=%v", err)
	}

	raw, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	note, err := markdown.Parse(string(raw))
	if err != nil {
		t.Fatalf("parse note: %v", err)
	}
	if note.Meta["session_id"] != "session-12" || note.Meta["run_id"] != "session-10" || note.Meta["sentiment_label"] != "Recovered" {
		t.Fatalf("unexpected frontmatter: %#v", note.Meta)
	}
}
