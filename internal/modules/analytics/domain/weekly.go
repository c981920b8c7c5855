package domain

import (
	"math"
	"time"
)

const StatsWindow = 7 * 24 * time.Hour

// FocusTotals is the raw aggregate of completed focus sessions in a window.
type FocusTotals struct {
	TotalMinutes int
	Sessions     int
}

type WeeklyStats struct {
	TotalFocusTime    int
	SessionsCompleted int
	AverageSession    int
}

func ComputeWeekly(totals FocusTotals) WeeklyStats {
	stats := WeeklyStats{TotalFocusTime: totals.TotalMinutes, SessionsCompleted: totals.Sessions}
	if totals.Sessions > 0 {
		stats.AverageSession = int(math.Round(float64(totals.TotalMinutes) / float64(totals.Sessions)))
	}
	return stats
}

type Overview struct {
	Streak    StreakSummary
	Today     []ScheduleItem
	Templates []Template
}
