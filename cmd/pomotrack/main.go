package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"pomotrack/internal/bootstrap"
	"pomotrack/internal/platform/config"
	apperrors "pomotrack/internal/platform/errors"
	"pomotrack/internal/platform/logging"
)

func main() {
	state := &cliState{logger: logging.New()}
	if err := newRootCmd(state).ExecuteContext(context.Background()); err != nil {
		os.Exit(reportError(os.Stderr, state.logger, err))
	}
}

// cliState carries the persistent flags and the logger built from config.
type cliState struct {
	dataDir string
	user    string
	logger  *logrus.Logger
}

func newRootCmd(state *cliState) *cobra.Command {
	root := &cobra.Command{
		Use:           "pomotrack",
		Short:         "Pomodoro timer and productivity analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&state.dataDir, "data-dir", ".", "directory holding pomotrack.yaml and the database")
	root.PersistentFlags().StringVar(&state.user, "user", "", "user id (defaults to config)")

	root.AddCommand(newTimerCmd(state))
	root.AddCommand(newStatsCmd(state))
	root.AddCommand(newInsightsCmd(state))
	root.AddCommand(newPlanCmd(state))
	return root
}

// withApp loads config, opens the app and runs fn with the resolved user.
func (s *cliState) withApp(ctx context.Context, fn func(app *bootstrap.App, user string) error) error {
	cfg, err := config.Load(s.dataDir)
	if err != nil {
		return err
	}
	s.logger = logging.New(logging.WithLevel(cfg.LogLevel), logging.WithFormat(cfg.LogFormat))
	app, err := bootstrap.New(ctx, cfg, s.logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			s.logger.WithError(err).Warn("close database")
		}
	}()
	user := cfg.UserID
	if s.user != "" {
		user = s.user
	}
	return fn(app, user)
}

// reportError prints the categorized error and returns the exit code.
func reportError(w io.Writer, logger *logrus.Logger, err error) int {
	status := apperrors.StatusCode(err)
	if status == http.StatusInternalServerError {
		logger.WithError(err).Error("command failed")
	}
	_, _ = fmt.Fprintf(w, "error [%s]: %v\n", apperrors.Code(err), err)
	switch status {
	case http.StatusBadRequest:
		return 2
	case http.StatusNotFound:
		return 3
	default:
		return 1
	}
}
