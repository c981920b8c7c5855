package domain

import (
	"strings"
	"time"
)

const (
	UntitledSession    = "Untitled Session"
	DefaultDurationMin = 25
)

type Template struct {
	ID                int64
	Name              string
	FocusMinutes      int
	ShortBreakMinutes int
	LongBreakMinutes  int
	Cycles            int
}

// ScheduledSession is a calendar entry joined with its optional template.
type ScheduledSession struct {
	ID                   int64
	TemplateID           *int64
	Title                *string
	StartAt              time.Time
	DurationMin          *int
	TemplateName         *string
	TemplateFocusMinutes *int
}

type ScheduleItem struct {
	ID          int64
	Time        string
	Title       string
	DurationMin int
	TemplateID  *int64
}

// FormatScheduleItem renders an entry in loc with title and duration
// fallbacks: explicit value, then template value, then defaults.
func FormatScheduleItem(s ScheduledSession, loc *time.Location) ScheduleItem {
	if loc == nil {
		loc = time.UTC
	}
	return ScheduleItem{
		ID:          s.ID,
		Time:        s.StartAt.In(loc).Format("15:04"),
		Title:       resolveTitle(s),
		DurationMin: resolveDuration(s),
		TemplateID:  s.TemplateID,
	}
}

func resolveTitle(s ScheduledSession) string {
	if s.Title != nil && strings.TrimSpace(*s.Title) != "" {
		return strings.TrimSpace(*s.Title)
	}
	if s.TemplateName != nil && strings.TrimSpace(*s.TemplateName) != "" {
		return strings.TrimSpace(*s.TemplateName)
	}
	return UntitledSession
}

func resolveDuration(s ScheduledSession) int {
	if s.DurationMin != nil && *s.DurationMin > 0 {
		return *s.DurationMin
	}
	if s.TemplateFocusMinutes != nil && *s.TemplateFocusMinutes > 0 {
		return *s.TemplateFocusMinutes
	}
	return DefaultDurationMin
}
