package domain

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

type StreakSummary struct {
	CurrentStreak int
	LongestStreak int
	TotalDays     int
	LastLoginDate string
}

// ParseDate reads a YYYY-MM-DD calendar date as midnight UTC.
func ParseDate(raw string) (time.Time, error) {
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", raw, err)
	}
	return d, nil
}

// CalendarDay maps t to midnight UTC of its calendar date in t's location, so
// it compares equal to ParseDate of the same date.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CurrentStreak counts leading dates that match today, today-1, today-2 ...
// datesDesc must be distinct calendar days, most recent first.
func CurrentStreak(today time.Time, datesDesc []time.Time) int {
	today = CalendarDay(today)
	streak := 0
	for i, date := range datesDesc {
		expected := today.AddDate(0, 0, -i)
		if !CalendarDay(date).Equal(expected) {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak returns the longest run of consecutive days in datesAsc,
// which must be distinct calendar days in ascending order.
func LongestStreak(datesAsc []time.Time) int {
	if len(datesAsc) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(datesAsc); i++ {
		prev := CalendarDay(datesAsc[i-1])
		if CalendarDay(datesAsc[i]).Equal(prev.AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
