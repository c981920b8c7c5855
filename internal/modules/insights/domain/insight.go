package domain

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	apperrors "pomotrack/internal/platform/errors"
)

const (
	// DisplayPrefix tags session ids shown to clients; AnalyzeSession accepts
	// ids with or without it.
	DisplayPrefix   = "session-"
	DefaultRunTitle = "Focus Session"

	SourceManual     = "manual"
	SourceClassifier = "classifier"
)

type Sentiment struct {
	Label string
	Score *float64
}

// SessionRecord is the slice of a timer session the correlator reads.
type SessionRecord struct {
	ID              int64
	UserID          string
	TemplateID      *int64
	DurationMinutes int
	Phase           string
	CurrentCycle    int
	Completed       bool
	StartTime       time.Time
	EndTime         *time.Time
	Notes           *string
	SentimentLabel  *string
	SentimentScore  *float64
	AnalyzedAt      *time.Time
	SessionGroupID  *string
}

// GroupKey identifies the run a record belongs to.
func (r SessionRecord) GroupKey() string {
	if r.SessionGroupID != nil && *r.SessionGroupID != "" {
		return "g:" + *r.SessionGroupID
	}
	return "s:" + strconv.FormatInt(r.ID, 10)
}

type Run struct {
	GroupID *string
	Members []SessionRecord
}

type RunSummary struct {
	ID           int64
	DisplayID    string
	Title        string
	FocusMinutes int
	Cycles       int
	Notes        *string
	CompletedAt  *time.Time
	Sentiment    *Sentiment
	AnalyzedAt   *time.Time
}

type AnalysisResult struct {
	ID         int64
	DisplayID  string
	SessionID  int64
	Label      *string
	Score      *float64
	AnalyzedAt time.Time
	Source     string
}

type Reflection struct {
	SessionID       int64
	RunID           int64
	Phase           string
	DurationMinutes int
	StartTime       time.Time
	EndTime         *time.Time
	Notes           string
	Label           *string
	Score           *float64
	AnalyzedAt      time.Time
}

func FormatDisplayID(id int64) string {
	return DisplayPrefix + strconv.FormatInt(id, 10)
}

// ParseSessionID accepts "42" or "session-42".
func ParseSessionID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, apperrors.Invalid("id is required")
	}
	trimmed := strings.TrimPrefix(raw, DisplayPrefix)
	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, apperrors.Invalid("id must be numeric, got %q", raw)
	}
	return id, nil
}

// ParseScore coerces an optional score; blank counts as absent.
func ParseScore(raw *string) (*float64, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	score, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
	if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
		return nil, apperrors.Invalid("sentiment_score must be a finite number, got %q", *raw)
	}
	return &score, nil
}

func NormalizeLabel(raw *string) *string {
	if raw == nil {
		return nil
	}
	label := strings.TrimSpace(*raw)
	if label == "" {
		return nil
	}
	return &label
}

// RepresentativeID picks the smallest id of a group.
func RepresentativeID(ids []int64) int64 {
	if len(ids) == 0 {
		return 0
	}
	min := ids[0]
	for _, id := range ids[1:] {
		if id < min {
			min = id
		}
	}
	return min
}

// GroupRuns buckets records by session group, keeping ungrouped records as
// runs of one. Runs come back in order of their first member.
func GroupRuns(records []SessionRecord) []Run {
	index := map[string]int{}
	runs := make([]Run, 0)
	for _, record := range records {
		key := record.GroupKey()
		pos, ok := index[key]
		if !ok {
			pos = len(runs)
			index[key] = pos
			runs = append(runs, Run{GroupID: record.SessionGroupID})
		}
		runs[pos].Members = append(runs[pos].Members, record)
	}
	for i := range runs {
		sort.Slice(runs[i].Members, func(a, b int) bool { return runs[i].Members[a].ID < runs[i].Members[b].ID })
	}
	return runs
}

// Summarize folds a run into its display summary. representative is the id
// the run is reported under and title the resolved display title.
func (r Run) Summarize(representative int64, title string) RunSummary {
	summary := RunSummary{ID: representative, DisplayID: FormatDisplayID(representative), Title: title}
	for _, m := range r.Members {
		if m.Completed && m.Phase == "focus" {
			summary.FocusMinutes += m.DurationMinutes
			summary.Cycles++
		}
		if m.EndTime != nil && (summary.CompletedAt == nil || m.EndTime.After(*summary.CompletedAt)) {
			summary.CompletedAt = m.EndTime
		}
		if m.Notes != nil && strings.TrimSpace(*m.Notes) != "" {
			summary.Notes = m.Notes
		}
		if m.AnalyzedAt != nil && (summary.AnalyzedAt == nil || !m.AnalyzedAt.Before(*summary.AnalyzedAt)) {
			summary.AnalyzedAt = m.AnalyzedAt
			label := ""
			if m.SentimentLabel != nil {
				label = *m.SentimentLabel
			}
			summary.Sentiment = &Sentiment{Label: label, Score: m.SentimentScore}
		}
	}
	return summary
}

// TemplateID returns the first template linked by any member.
func (r Run) TemplateID() *int64 {
	for _, m := range r.Members {
		if m.TemplateID != nil {
			return m.TemplateID
		}
	}
	return nil
}

func (r Run) IDs() []int64 {
	ids := make([]int64, 0, len(r.Members))
	for _, m := range r.Members {
		ids = append(ids, m.ID)
	}
	return ids
}
