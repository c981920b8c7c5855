package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"pomotrack/internal/platform/logging"
)

func TestJSONLoggerTagsComponent(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	logger := logging.New(logging.WithOutput(buf), logging.WithFormat("json"), logging.WithLevel("debug"))
	logging.Component(logger, "timer").WithField("user", "u1").Debug("timer started")

	line := map[string]any{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if line["component"] != "timer" || line["user"] != "u1" || line["msg"] != "timer started" {
		t.Fatalf("unexpected log fields: %v", line)
	}
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	t.Parallel()
	logger := logging.New(logging.WithLevel("loud"))
	if logger.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected info level, got %s", logger.GetLevel())
	}
}

func TestNilLoggerComponentDiscards(t *testing.T) {
	t.Parallel()
	entry := logging.Component(nil, "x")
	entry.Info("dropped")
	if !strings.Contains(entry.Data["component"].(string), "x") {
		t.Fatalf("component field missing")
	}
}

func TestTextLoggerWritesFullTimestamp(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	logger := logging.New(logging.WithOutput(buf), logging.WithFormat("text"))
	logger.Info("ready")
	formatter, ok := logger.Formatter.(*logrus.TextFormatter)
	if !ok || !formatter.FullTimestamp || formatter.DisableTimestamp {
		t.Fatalf("unexpected formatter: %#v", logger.Formatter)
	}
	if !strings.Contains(buf.String(), "time=") || !strings.Contains(buf.String(), "msg=ready") {
		t.Fatalf("unexpected text line: %q", buf.String())
	}
}
