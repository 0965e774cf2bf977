package model

import (
	"time"

	"github.com/google/uuid"
)

// PredictionLogEntry is one row of the append-only prediction log. The log
// backs the dashboard's recent-prediction statistics; the raw patient
// fields are never persisted.
type PredictionLogEntry struct {
	ID         uuid.UUID `json:"id" db:"id"`
	SessionID  string    `json:"session_id" db:"session_id"`
	RiskLevel  string    `json:"risk_level" db:"risk_level"`
	RiskScore  float64   `json:"risk_score" db:"risk_score"`
	Confidence float64   `json:"confidence" db:"confidence"`
	BMI        float64   `json:"bmi" db:"bmi"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// DailyPredictionCount is a per-day total for the recent-predictions series.
type DailyPredictionCount struct {
	Day   string `json:"day" db:"day"`
	Count int    `json:"count" db:"count"`
}

// RiskLevelCount is a per-level total for the risk distribution chart.
type RiskLevelCount struct {
	RiskLevel string `json:"risk_level" db:"risk_level"`
	Count     int    `json:"count" db:"count"`
}

// DashboardStats aggregates the prediction log for the stats endpoint.
type DashboardStats struct {
	Total            int                    `json:"total"`
	Daily            []DailyPredictionCount `json:"daily"`
	RiskDistribution []RiskLevelCount       `json:"risk_distribution"`
	Source           string                 `json:"source"`
}
