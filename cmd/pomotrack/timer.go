package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"pomotrack/internal/bootstrap"
	insightsdomain "pomotrack/internal/modules/insights/domain"
	timerdto "pomotrack/internal/modules/timer/dto"
	apperrors "pomotrack/internal/platform/errors"
)

func newTimerCmd(state *cliState) *cobra.Command {
	timer := &cobra.Command{Use: "timer", Short: "Timer session lifecycle"}

	var (
		duration     float64
		phase        string
		templateID   int64
		currentCycle int
		targetCycles int
		groupID      string
		newGroup     bool
	)
	start := &cobra.Command{
		Use:   "start",
		Short: "Start a timer session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return state.withApp(cmd.Context(), func(app *bootstrap.App, user string) error {
				input := timerdto.StartInput{
					UserID:          user,
					DurationMinutes: duration,
					Phase:           phase,
					CurrentCycle:    currentCycle,
					TargetCycles:    targetCycles,
					GroupID:         groupID,
					NewGroup:        newGroup,
				}
				if cmd.Flags().Changed("template") {
					input.TemplateID = &templateID
				}
				out, err := app.TimerCLI.Start(cmd.Context(), input)
				if err != nil {
					return err
				}
				printSession(cmd.OutOrStdout(), "started", out)
				return nil
			})
		},
	}
	start.Flags().Float64Var(&duration, "duration", 25, "planned minutes")
	start.Flags().StringVar(&phase, "phase", "focus", "phase: focus|short_break|long_break")
	start.Flags().Int64Var(&templateID, "template", 0, "template id")
	start.Flags().IntVar(&currentCycle, "cycle", 0, "current cycle")
	start.Flags().IntVar(&targetCycles, "target-cycles", 4, "target cycles")
	start.Flags().StringVar(&groupID, "group", "", "session group id to join")
	start.Flags().BoolVar(&newGroup, "new-group", false, "start a new session group")

	timer.AddCommand(start)
	timer.AddCommand(activeSessionCmd(state, "pause", "Pause the active session", "paused", timerCLIPause))
	timer.AddCommand(activeSessionCmd(state, "resume", "Resume the active session", "resumed", timerCLIResume))
	timer.AddCommand(activeSessionCmd(state, "stop", "Stop the active session", "stopped", timerCLIStop))
	timer.AddCommand(activeSessionCmd(state, "active", "Show the active session", "active", timerCLIActive))

	timer.AddCommand(&cobra.Command{
		Use:   "complete <session-id>",
		Short: "Complete a session by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID, err := parseSessionArg(args[0])
			if err != nil {
				return err
			}
			return state.withApp(cmd.Context(), func(app *bootstrap.App, user string) error {
				out, err := app.TimerCLI.Complete(cmd.Context(), user, sessionID)
				if err != nil {
					return err
				}
				printSession(cmd.OutOrStdout(), "completed", out)
				return nil
			})
		},
	})

	var clearNotes bool
	notes := &cobra.Command{
		Use:   "notes <session-id> [text]",
		Short: "Replace or clear session notes",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID, err := parseSessionArg(args[0])
			if err != nil {
				return err
			}
			var text *string
			switch {
			case clearNotes:
			case len(args) == 2:
				text = &args[1]
			default:
				return apperrors.Invalid("notes text is required unless --clear is set")
			}
			return state.withApp(cmd.Context(), func(app *bootstrap.App, user string) error {
				out, err := app.TimerCLI.UpdateNotes(cmd.Context(), user, sessionID, text)
				if err != nil {
					return err
				}
				printSession(cmd.OutOrStdout(), "updated", out)
				return nil
			})
		},
	}
	notes.Flags().BoolVar(&clearNotes, "clear", false, "clear notes")
	timer.AddCommand(notes)

	var limit string
	history := &cobra.Command{
		Use:   "history",
		Short: "List recent sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return state.withApp(cmd.Context(), func(app *bootstrap.App, user string) error {
				sessions, err := app.TimerCLI.History(cmd.Context(), user, limit)
				if err != nil {
					return err
				}
				if len(sessions) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
					return nil
				}
				for _, s := range sessions {
					printSession(cmd.OutOrStdout(), "-", s)
				}
				return nil
			})
		},
	}
	history.Flags().StringVar(&limit, "limit", "", "number of sessions (1-200, default 50)")
	timer.AddCommand(history)
	return timer
}

type activeSessionFunc func(ctx context.Context, app *bootstrap.App, user string) (timerdto.SessionOutput, error)

func timerCLIPause(ctx context.Context, app *bootstrap.App, user string) (timerdto.SessionOutput, error) {
	return app.TimerCLI.Pause(ctx, user)
}

func timerCLIResume(ctx context.Context, app *bootstrap.App, user string) (timerdto.SessionOutput, error) {
	return app.TimerCLI.Resume(ctx, user)
}

func timerCLIStop(ctx context.Context, app *bootstrap.App, user string) (timerdto.SessionOutput, error) {
	return app.TimerCLI.Stop(ctx, user)
}

func timerCLIActive(ctx context.Context, app *bootstrap.App, user string) (timerdto.SessionOutput, error) {
	return app.TimerCLI.GetActive(ctx, user)
}

func activeSessionCmd(state *cliState, use, short, verb string, run activeSessionFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return state.withApp(cmd.Context(), func(app *bootstrap.App, user string) error {
				out, err := run(cmd.Context(), app, user)
				if err != nil {
					return err
				}
				printSession(cmd.OutOrStdout(), verb, out)
				return nil
			})
		},
	}
}

// parseSessionArg accepts a bare id or the "session-<id>" form other
// commands print.
func parseSessionArg(raw string) (int64, error) {
	return insightsdomain.ParseSessionID(raw)
}

func printSession(w io.Writer, verb string, s timerdto.SessionOutput) {
	line := fmt.Sprintf("%s #%d %s %dm state=%s cycle=%d/%d started=%s",
		verb, s.ID, s.Phase, s.DurationMinutes, s.State, s.CurrentCycle, s.TargetCycles, s.StartTime.Format(time.RFC3339))
	if s.EndTime != nil {
		line += " ended=" + s.EndTime.Format(time.RFC3339)
	}
	if s.SessionGroupID != nil {
		line += " group=" + *s.SessionGroupID
	}
	if s.Notes != nil {
		line += fmt.Sprintf(" notes=%q", *s.Notes)
	}
	_, _ = fmt.Fprintln(w, line)
}
