package dto

import "time"

type StartInput struct {
	UserID          string
	TemplateID      *int64
	DurationMinutes float64
	Phase           string
	CurrentCycle    int
	TargetCycles    int
	GroupID         string
	NewGroup        bool
}

type UserInput struct {
	UserID string
}

type CompleteInput struct {
	UserID    string
	SessionID int64
}

type UpdateNotesInput struct {
	UserID    string
	SessionID int64
	Notes     *string
}

type HistoryInput struct {
	UserID string
	Limit  string
}

type SessionOutput struct {
	ID              int64
	UserID          string
	TemplateID      *int64
	DurationMinutes int
	Phase           string
	State           string
	CurrentCycle    int
	TargetCycles    int
	Completed       bool
	Paused          bool
	StartTime       time.Time
	EndTime         *time.Time
	Notes           *string
	SentimentLabel  *string
	SentimentScore  *float64
	AnalyzedAt      *time.Time
	SessionGroupID  *string
}
