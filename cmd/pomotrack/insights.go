package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pomotrack/internal/bootstrap"
)

func newInsightsCmd(state *cliState) *cobra.Command {
	insights := &cobra.Command{Use: "insights", Short: "Correlate sessions with sentiment"}

	insights.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List completed runs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return state.withApp(cmd.Context(), func(app *bootstrap.App, user string) error {
				runs, err := app.InsightsCLI.ListCompletedSessions(cmd.Context(), user)
				if err != nil {
					return err
				}
				if len(runs) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no completed sessions")
					return nil
				}
				for _, run := range runs {
					line := fmt.Sprintf("%s %s focus=%dm cycles=%d", run.DisplayID, run.Title, run.FocusMinutes, run.Cycles)
					if run.CompletedAt != nil {
						line += " completed=" + run.CompletedAt.Format(time.RFC3339)
					}
					if run.Sentiment != nil {
						line += " sentiment=" + run.Sentiment.Label
						if run.Sentiment.Score != nil {
							line += fmt.Sprintf("(%.2f)", *run.Sentiment.Score)
						}
					}
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
				}
				return nil
			})
		},
	})

	var label, score string
	analyze := &cobra.Command{
		Use:   "analyze <session-id>",
		Short: "Record sentiment for a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var labelArg, scoreArg *string
			if cmd.Flags().Changed("label") {
				labelArg = &label
			}
			if cmd.Flags().Changed("score") {
				scoreArg = &score
			}
			return state.withApp(cmd.Context(), func(app *bootstrap.App, user string) error {
				out, err := app.InsightsCLI.AnalyzeSession(cmd.Context(), user, args[0], labelArg, scoreArg)
				if err != nil {
					return err
				}
				line := fmt.Sprintf("analyzed %s source=%s", out.DisplayID, out.Source)
				if out.Label != nil {
					line += " label=" + *out.Label
				}
				if out.Score != nil {
					line += fmt.Sprintf(" score=%.2f", *out.Score)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
				return nil
			})
		},
	}
	analyze.Flags().StringVar(&label, "label", "", "sentiment label")
	analyze.Flags().StringVar(&score, "score", "", "sentiment score")
	insights.AddCommand(analyze)
	return insights
}
