package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	apperrors "pomotrack/internal/platform/errors"
	"pomotrack/internal/platform/logging"
)

func run(t *testing.T, dataDir string, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	root := newRootCmd(&cliState{logger: logging.Discard()})
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(append([]string{"--data-dir", dataDir, "--user", "cli"}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTimerLifecycleThroughCLI(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	out, err := run(t, dir, "timer", "start", "--duration", "25", "--new-group")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if !strings.HasPrefix(out, "started #1 focus 25m state=running") {
		t.Fatalf("unexpected start output: %q", out)
	}
	if out, err = run(t, dir, "timer", "pause"); err != nil || !strings.Contains(out, "state=paused") {
		t.Fatalf("pause: %q %v", out, err)
	}
	if out, err = run(t, dir, "timer", "stop"); err != nil || !strings.Contains(out, "state=completed") {
		t.Fatalf("stop: %q %v", out, err)
	}
	if out, err = run(t, dir, "insights", "analyze", "session-1", "--label", "good", "--score", "0.5"); err != nil || !strings.Contains(out, "analyzed session-1") {
		t.Fatalf("analyze: %q %v", out, err)
	}
	if out, err = run(t, dir, "insights", "list"); err != nil || !strings.Contains(out, "sentiment=good(0.50)") {
		t.Fatalf("list: %q %v", out, err)
	}
	if out, err = run(t, dir, "stats", "streak"); err != nil || !strings.Contains(out, "current=1") {
		t.Fatalf("streak: %q %v", out, err)
	}
}

func TestCLIErrorsAreCategorized(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	_, err := run(t, dir, "timer", "pause")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("pause without active timer must be not found, got %v", err)
	}
	_, err = run(t, dir, "timer", "start", "--phase", "nap")
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unknown phase must be invalid, got %v", err)
	}

	buf := &bytes.Buffer{}
	if code := reportError(buf, logging.Discard(), err); code != 2 {
		t.Fatalf("invalid input must exit 2, got %d", code)
	}
	if !strings.HasPrefix(buf.String(), "error [invalid_input]: ") {
		t.Fatalf("unexpected error line: %q", buf.String())
	}
	if code := reportError(&bytes.Buffer{}, logging.Discard(), errors.New("disk full")); code != 1 {
		t.Fatalf("unexpected failure must exit 1, got %d", code)
	}
}

func TestTimerCommandsAcceptDisplayIDs(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	if _, err := run(t, dir, "timer", "start"); err != nil {
		t.Fatalf("start: %v", err)
	}
	out, err := run(t, dir, "timer", "notes", "session-1", "wrapped up")
	if err != nil || !strings.Contains(out, `notes="wrapped up"`) {
		t.Fatalf("notes with display id: %q %v", out, err)
	}
	out, err = run(t, dir, "timer", "complete", "session-1")
	if err != nil || !strings.Contains(out, "completed #1") {
		t.Fatalf("complete with display id: %q %v", out, err)
	}
	if _, err := run(t, dir, "timer", "complete", "session-x"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("malformed id must be invalid, got %v", err)
	}
}
