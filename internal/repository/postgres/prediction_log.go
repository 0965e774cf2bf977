package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/twinkal0201/cardio-70-AI/internal/model"
	"github.com/twinkal0201/cardio-70-AI/internal/repository"
)

type predictionLogRepository struct {
	db *sqlx.DB
}

func NewPredictionLogRepository(db *sqlx.DB) repository.PredictionLogRepository {
	return &predictionLogRepository{db: db}
}

func (r *predictionLogRepository) Create(ctx context.Context, entry *model.PredictionLogEntry) error {
	query := `
		INSERT INTO prediction_log (id, session_id, risk_level, risk_score, confidence, bmi, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.SessionID,
		entry.RiskLevel,
		entry.RiskScore,
		entry.Confidence,
		entry.BMI,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to log prediction: %w", err)
	}
	return nil
}

func (r *predictionLogRepository) DailyCounts(ctx context.Context, since time.Time) ([]model.DailyPredictionCount, error) {
	query := `
		SELECT to_char(created_at, 'Dy') AS day, COUNT(*) AS count
		FROM prediction_log
		WHERE created_at >= $1
		GROUP BY to_char(created_at, 'Dy'), date_trunc('day', created_at)
		ORDER BY date_trunc('day', created_at)
	`
	var counts []model.DailyPredictionCount
	if err := r.db.SelectContext(ctx, &counts, query, since); err != nil {
		return nil, fmt.Errorf("failed to load daily counts: %w", err)
	}
	return counts, nil
}

func (r *predictionLogRepository) RiskDistribution(ctx context.Context) ([]model.RiskLevelCount, error) {
	query := `
		SELECT risk_level, COUNT(*) AS count
		FROM prediction_log
		GROUP BY risk_level
	`
	var counts []model.RiskLevelCount
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("failed to load risk distribution: %w", err)
	}
	return counts, nil
}

func (r *predictionLogRepository) Total(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM prediction_log`); err != nil {
		return 0, fmt.Errorf("failed to count predictions: %w", err)
	}
	return total, nil
}
