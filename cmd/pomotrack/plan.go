package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pomotrack/internal/bootstrap"
	plannerdto "pomotrack/internal/modules/planner/dto"
)

func newPlanCmd(state *cliState) *cobra.Command {
	plan := &cobra.Command{Use: "plan", Short: "Templates and scheduled sessions"}
	plan.AddCommand(newTemplateCmd(state), newScheduleCmd(state))
	return plan
}

func newTemplateCmd(state *cliState) *cobra.Command {
	template := &cobra.Command{Use: "template", Short: "Timer templates"}

	var input plannerdto.AddTemplateInput
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return state.withApp(cmd.Context(), func(app *bootstrap.App, user string) error {
				input.UserID = user
				input.Name = args[0]
				out, err := app.PlannerCLI.AddTemplate(cmd.Context(), input)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added template #%d %s\n", out.ID, out.Name)
				return nil
			})
		},
	}
	add.Flags().IntVar(&input.FocusMinutes, "focus", 0, "focus minutes (default 25)")
	add.Flags().IntVar(&input.ShortBreakMinutes, "short-break", 0, "short break minutes (default 5)")
	add.Flags().IntVar(&input.LongBreakMinutes, "long-break", 0, "long break minutes (default 15)")
	add.Flags().IntVar(&input.Cycles, "cycles", 0, "cycles before a long break (default 4)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List templates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return state.withApp(cmd.Context(), func(app *bootstrap.App, user string) error {
				templates, err := app.PlannerCLI.ListTemplates(cmd.Context(), user)
				if err != nil {
					return err
				}
				if len(templates) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no templates")
					return nil
				}
				for _, tpl := range templates {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "#%d %s focus=%dm short=%dm long=%dm cycles=%d\n",
						tpl.ID, tpl.Name, tpl.FocusMinutes, tpl.ShortBreakMinutes, tpl.LongBreakMinutes, tpl.Cycles)
				}
				return nil
			})
		},
	}
	template.AddCommand(add, list)
	return template
}

func newScheduleCmd(state *cliState) *cobra.Command {
	schedule := &cobra.Command{Use: "schedule", Short: "Scheduled sessions"}

	var (
		templateID int64
		title      string
		duration   int
	)
	add := &cobra.Command{
		Use:   "add <start>",
		Short: "Schedule a session (RFC3339 or \"YYYY-MM-DD HH:MM\")",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := plannerdto.ScheduleInput{Title: title, StartAt: args[0]}
			if cmd.Flags().Changed("template") {
				input.TemplateID = &templateID
			}
			if cmd.Flags().Changed("duration") {
				input.DurationMin = &duration
			}
			return state.withApp(cmd.Context(), func(app *bootstrap.App, user string) error {
				input.UserID = user
				out, err := app.PlannerCLI.ScheduleSession(cmd.Context(), input)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "scheduled #%d at %s\n", out.ID, out.StartAt.Format(time.RFC3339))
				return nil
			})
		},
	}
	add.Flags().Int64Var(&templateID, "template", 0, "template id")
	add.Flags().StringVar(&title, "title", "", "session title")
	add.Flags().IntVar(&duration, "duration", 0, "duration minutes")

	var date string
	list := &cobra.Command{
		Use:   "list",
		Short: "List scheduled sessions for a day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return state.withApp(cmd.Context(), func(app *bootstrap.App, user string) error {
				sessions, err := app.PlannerCLI.ListSchedule(cmd.Context(), user, date)
				if err != nil {
					return err
				}
				if len(sessions) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "nothing scheduled")
					return nil
				}
				for _, s := range sessions {
					line := fmt.Sprintf("#%d %s", s.ID, s.StartAt.Format(time.RFC3339))
					if s.Title != nil {
						line += " " + *s.Title
					}
					if s.DurationMin != nil {
						line += fmt.Sprintf(" (%dm)", *s.DurationMin)
					}
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&date, "date", "", "YYYY-MM-DD (defaults to today)")
	schedule.AddCommand(add, list)
	return schedule
}
