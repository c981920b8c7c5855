package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"

	analyticsinadapter "pomotrack/internal/modules/analytics/adapter/in"
	analyticsoutadapter "pomotrack/internal/modules/analytics/adapter/out"
	analyticsservice "pomotrack/internal/modules/analytics/service"
	analyticsusecase "pomotrack/internal/modules/analytics/usecase"
	insightsinadapter "pomotrack/internal/modules/insights/adapter/in"
	insightsoutadapter "pomotrack/internal/modules/insights/adapter/out"
	insightsout "pomotrack/internal/modules/insights/port/out"
	insightsservice "pomotrack/internal/modules/insights/service"
	insightsusecase "pomotrack/internal/modules/insights/usecase"
	plannerinadapter "pomotrack/internal/modules/planner/adapter/in"
	planneroutadapter "pomotrack/internal/modules/planner/adapter/out"
	plannerservice "pomotrack/internal/modules/planner/service"
	plannerusecase "pomotrack/internal/modules/planner/usecase"
	timerinadapter "pomotrack/internal/modules/timer/adapter/in"
	timeroutadapter "pomotrack/internal/modules/timer/adapter/out"
	timerservice "pomotrack/internal/modules/timer/service"
	timerusecase "pomotrack/internal/modules/timer/usecase"
	"pomotrack/internal/platform/clock"
	"pomotrack/internal/platform/config"
	"pomotrack/internal/platform/id"
	"pomotrack/internal/platform/logging"
	"pomotrack/internal/platform/sqlitedb"
)

type App struct {
	TimerCLI     timerinadapter.CLIHandler
	AnalyticsCLI analyticsinadapter.CLIHandler
	InsightsCLI  insightsinadapter.CLIHandler
	PlannerCLI   plannerinadapter.CLIHandler

	db *sql.DB
}

func New(ctx context.Context, cfg config.Config, logger *logrus.Logger) (*App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	clk := clock.SystemClock{Location: loc}
	ids := id.RandomHex{}

	db, err := sqlitedb.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	timerUC := timerusecase.NewInteractor(timerservice.NewTimerService(
		clk, ids, timeroutadapter.NewSQLiteSessionStore(db), logging.Component(logger, "timer"),
	))
	analyticsUC := analyticsusecase.NewInteractor(analyticsservice.NewAnalyticsService(
		clk, analyticsoutadapter.NewSQLiteAnalyticsStore(db),
	))
	plannerUC := plannerusecase.NewInteractor(plannerservice.NewPlannerService(
		clk, planneroutadapter.NewSQLitePlanStore(db), logging.Component(logger, "planner"),
	))

	insightsLog := logging.Component(logger, "insights")
	var exporter insightsout.ReflectionExporter
	if cfg.ExportReflections {
		exporter = insightsoutadapter.NewVaultReflectionExporter(cfg.DataDir)
	}
	insightsUC := insightsusecase.NewInteractor(insightsservice.NewInsightsService(
		clk,
		insightsoutadapter.NewSQLiteInsightsStore(db),
		loadClassifier(ctx, cfg, insightsLog),
		exporter,
		insightsLog,
	))

	return &App{
		TimerCLI:     timerinadapter.NewCLIHandler(timerUC),
		AnalyticsCLI: analyticsinadapter.NewCLIHandler(analyticsUC),
		InsightsCLI:  insightsinadapter.NewCLIHandler(insightsUC),
		PlannerCLI:   plannerinadapter.NewCLIHandler(plannerUC),
		db:           db,
	}, nil
}

// loadClassifier returns nil when no plugin is configured or it cannot be
// verified; analysis then only stores caller supplied sentiment.
func loadClassifier(ctx context.Context, cfg config.Config, log *logrus.Entry) insightsout.SentimentClassifier {
	if cfg.ClassifierPlugin == "" {
		return nil
	}
	manifest, err := insightsoutadapter.NewFileManifestStore(cfg.DataDir, cfg.PluginsPath).Find(ctx, cfg.ClassifierPlugin)
	if err != nil {
		log.WithError(err).Warn("classifier plugin unavailable")
		return nil
	}
	classifier, err := insightsoutadapter.NewGRPCClassifier(manifest)
	if err != nil {
		log.WithError(err).WithField("plugin", manifest.Name).Warn("classifier plugin rejected")
		return nil
	}
	return classifier
}

func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}
