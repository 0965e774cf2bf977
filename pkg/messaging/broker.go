package messaging

import (
	"context"
)

// Broker defines the interface for message brokers
type Broker interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Subscribe(ctx context.Context, channel string) (<-chan []byte, error)
	Close() error
}

// PredictionCompleted is published after each successful prediction.
type PredictionCompleted struct {
	SessionID  string  `json:"session_id"`
	RiskLevel  string  `json:"risk_level"`
	RiskScore  float64 `json:"risk_score"`
	Confidence float64 `json:"confidence"`
	Timestamp  string  `json:"timestamp"`
}

// ChannelPredictionCompleted is the pub/sub channel for prediction events.
const ChannelPredictionCompleted = "cardio70.prediction.completed"
