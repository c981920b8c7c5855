package dto

type UserInput struct {
	UserID string
}

type StreakOutput struct {
	CurrentStreak int
	LongestStreak int
	TotalDays     int
	LastLoginDate string
}

type ScheduleItemOutput struct {
	ID          int64
	Time        string
	Title       string
	DurationMin int
	TemplateID  *int64
}

type WeeklyStatsOutput struct {
	TotalFocusTime    int
	SessionsCompleted int
	AverageSession    int
}

type TemplateOutput struct {
	ID                int64
	Name              string
	FocusMinutes      int
	ShortBreakMinutes int
	LongBreakMinutes  int
	Cycles            int
}

type OverviewOutput struct {
	Streak        StreakOutput
	TodaySchedule []ScheduleItemOutput
	Templates     []TemplateOutput
}
