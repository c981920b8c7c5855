package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pomotrack/internal/bootstrap"
	analyticsdto "pomotrack/internal/modules/analytics/dto"
)

func newStatsCmd(state *cliState) *cobra.Command {
	stats := &cobra.Command{Use: "stats", Short: "Productivity analytics"}

	stats.AddCommand(&cobra.Command{
		Use:   "streak",
		Short: "Show current and longest streaks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return state.withApp(cmd.Context(), func(app *bootstrap.App, user string) error {
				out, err := app.AnalyticsCLI.Streak(cmd.Context(), user)
				if err != nil {
					return err
				}
				printStreak(cmd.OutOrStdout(), out)
				return nil
			})
		},
	})

	stats.AddCommand(&cobra.Command{
		Use:   "today",
		Short: "Show today's schedule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return state.withApp(cmd.Context(), func(app *bootstrap.App, user string) error {
				items, err := app.AnalyticsCLI.TodaySchedule(cmd.Context(), user)
				if err != nil {
					return err
				}
				printSchedule(cmd.OutOrStdout(), items)
				return nil
			})
		},
	})

	stats.AddCommand(&cobra.Command{
		Use:   "week",
		Short: "Show focus totals for the last seven days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return state.withApp(cmd.Context(), func(app *bootstrap.App, user string) error {
				out, err := app.AnalyticsCLI.WeeklyStats(cmd.Context(), user)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "focus=%dm sessions=%d average=%dm\n", out.TotalFocusTime, out.SessionsCompleted, out.AverageSession)
				return nil
			})
		},
	})

	stats.AddCommand(&cobra.Command{
		Use:   "overview",
		Short: "Show streaks, today's schedule and templates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return state.withApp(cmd.Context(), func(app *bootstrap.App, user string) error {
				out, err := app.AnalyticsCLI.Overview(cmd.Context(), user)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				printStreak(w, out.Streak)
				printSchedule(w, out.TodaySchedule)
				for _, tpl := range out.Templates {
					_, _ = fmt.Fprintf(w, "template #%d %s focus=%dm short=%dm long=%dm cycles=%d\n",
						tpl.ID, tpl.Name, tpl.FocusMinutes, tpl.ShortBreakMinutes, tpl.LongBreakMinutes, tpl.Cycles)
				}
				return nil
			})
		},
	})
	return stats
}

func printStreak(w io.Writer, s analyticsdto.StreakOutput) {
	_, _ = fmt.Fprintf(w, "streak current=%d longest=%d days=%d last=%s\n", s.CurrentStreak, s.LongestStreak, s.TotalDays, s.LastLoginDate)
}

func printSchedule(w io.Writer, items []analyticsdto.ScheduleItemOutput) {
	if len(items) == 0 {
		_, _ = fmt.Fprintln(w, "nothing scheduled today")
		return
	}
	for _, item := range items {
		_, _ = fmt.Fprintf(w, "%s %s (%dm)\n", item.Time, item.Title, item.DurationMin)
	}
}
