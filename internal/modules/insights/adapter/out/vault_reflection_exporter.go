package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"pomotrack/internal/modules/insights/domain"
	insightsout "pomotrack/internal/modules/insights/port/out"
	"pomotrack/internal/platform/markdown"
	"pomotrack/internal/platform/slug"
)

const reflectionSchemaVersion = 1

type VaultReflectionExporter struct {
	dataDir string
}

func NewVaultReflectionExporter(dataDir string) insightsout.ReflectionExporter {
	return &VaultReflectionExporter{dataDir: dataDir}
}

// Export writes one note per analyzed session; re-analysis overwrites it.
func (e *VaultReflectionExporter) Export(_ context.Context, r domain.Reflection) (string, error) {
	date := r.StartTime
	dir := filepath.Join(e.dataDir, "reflections", date.Format("2006"), date.Format("01"), date.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reflection dir: %w", err)
	}
	label := "unlabeled"
	if r.Label != nil {
		label = *r.Label
	}
	path := filepath.Join(dir, fmt.Sprintf("%d-%s.md", r.SessionID, slug.Make(label, "unlabeled")))

	meta := map[string]any{
		"schema_version":   reflectionSchemaVersion,
		"session_id":       domain.FormatDisplayID(r.SessionID),
		"run_id":           domain.FormatDisplayID(r.RunID),
		"phase":            r.Phase,
		"duration_minutes": r.DurationMinutes,
		"started_at":       r.StartTime.Format("2006-01-02T15:04:05Z07:00"),
		"analyzed_at":      r.AnalyzedAt.Format("2006-01-02T15:04:05Z07:00"),
		"sentiment_label":  r.Label,
		"sentiment_score":  r.Score,
	}
	if r.EndTime != nil {
		meta["ended_at"] = r.EndTime.Format("2006-01-02T15:04:05Z07:00")
	}
	notes := r.Notes
	if notes == "" {
		notes = "_No notes recorded._"
	}
	body := fmt.Sprintf("# Reflection %s\n\n- Phase: %s\n- Duration: %d minutes\n- Sentiment: %s\n\n## Notes\n\n%s\n",
		domain.FormatDisplayID(r.SessionID), r.Phase, r.DurationMinutes, label, notes)
	rendered, err := markdown.Note{Meta: meta, Body: body}.Render()
	if err != nil {
		return "", err
	}
	if err := removeStale(dir, r.SessionID, path); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write reflection note: %w", err)
	}
	return path, nil
}

// removeStale drops notes for the same session written under another label.
func removeStale(dir string, sessionID int64, keep string) error {
	matches, err := filepath.Glob(filepath.Join(dir, fmt.Sprintf("%d-*.md", sessionID)))
	if err != nil {
		return fmt.Errorf("glob reflections: %w", err)
	}
	for _, match := range matches {
		if match == keep {
			continue
		}
		if err := os.Remove(match); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove stale reflection: %w", err)
		}
	}
	return nil
}
