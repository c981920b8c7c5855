package dto

import "time"

type UserInput struct {
	UserID string
}

type AddTemplateInput struct {
	UserID            string
	Name              string
	FocusMinutes      int
	ShortBreakMinutes int
	LongBreakMinutes  int
	Cycles            int
}

type ScheduleInput struct {
	UserID      string
	TemplateID  *int64
	Title       string
	StartAt     string
	DurationMin *int
}

type ListScheduleInput struct {
	UserID string
	Date   string
}

type TemplateOutput struct {
	ID                int64
	Name              string
	FocusMinutes      int
	ShortBreakMinutes int
	LongBreakMinutes  int
	Cycles            int
	CreatedAt         time.Time
}

type ScheduledSessionOutput struct {
	ID          int64
	TemplateID  *int64
	Title       *string
	StartAt     time.Time
	DurationMin *int
}
