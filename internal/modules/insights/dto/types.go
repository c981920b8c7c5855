package dto

import "time"

type UserInput struct {
	UserID string
}

type AnalyzeInput struct {
	UserID         string
	ID             string
	SentimentLabel *string
	SentimentScore *string
}

type SentimentOutput struct {
	Label string
	Score *float64
}

type CompletedSessionOutput struct {
	ID           int64
	DisplayID    string
	Title        string
	FocusMinutes int
	Cycles       int
	Notes        *string
	CompletedAt  *time.Time
	Sentiment    *SentimentOutput
	AnalyzedAt   *time.Time
}

type AnalyzeOutput struct {
	ID         int64
	DisplayID  string
	SessionID  int64
	Label      *string
	Score      *float64
	AnalyzedAt time.Time
	Source     string
}
