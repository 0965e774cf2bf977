package repository

import (
	"context"
	"time"

	"github.com/twinkal0201/cardio-70-AI/internal/model"
)

// PredictionLogRepository persists successful predictions for dashboard
// statistics. The repository is optional: a nil value disables logging and
// the dashboard falls back to its static sample series.
type PredictionLogRepository interface {
	Create(ctx context.Context, entry *model.PredictionLogEntry) error
	DailyCounts(ctx context.Context, since time.Time) ([]model.DailyPredictionCount, error)
	RiskDistribution(ctx context.Context) ([]model.RiskLevelCount, error)
	Total(ctx context.Context) (int, error)
}
