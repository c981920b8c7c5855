package out

import (
	"context"
	"time"

	"pomotrack/internal/modules/insights/domain"
)

type InsightsStore interface {
	// GetCompletedRuns returns the user's completed sessions ordered by id.
	GetCompletedRuns(ctx context.Context, userID string) ([]domain.SessionRecord, error)
	// GetTemplateNameByID returns "" when the template does not exist.
	GetTemplateNameByID(ctx context.Context, id int64) (string, error)
	FindTimerSessionForUser(ctx context.Context, id int64, userID string) (domain.SessionRecord, error)
	UpdateTimerSentiment(ctx context.Context, id int64, userID string, at time.Time, label *string, score *float64) error
	GetRepresentativeIDForGroup(ctx context.Context, userID, groupID string) (int64, error)
	// GetGroupRepresentatives maps every session group of the user to its
	// smallest member id.
	GetGroupRepresentatives(ctx context.Context, userID string) (map[string]int64, error)
}

// SentimentClassifier labels free text. It is an external black box.
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) (domain.Sentiment, error)
}

type ReflectionExporter interface {
	Export(ctx context.Context, reflection domain.Reflection) (string, error)
}

type ManifestStore interface {
	Load(ctx context.Context) ([]domain.ClassifierManifest, error)
	Find(ctx context.Context, name string) (domain.ClassifierManifest, error)
}
