package prediction

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/twinkal0201/cardio-70-AI/internal/model"
	"github.com/twinkal0201/cardio-70-AI/internal/repository"
	"github.com/twinkal0201/cardio-70-AI/internal/service/session"
	apperrors "github.com/twinkal0201/cardio-70-AI/pkg/errors"
	"github.com/twinkal0201/cardio-70-AI/pkg/messaging"
	"github.com/twinkal0201/cardio-70-AI/pkg/metrics"
)

// Service runs the prediction pipeline: validate (optional), call the model
// service, attach BMI, cache the pair in the caller's session slot, and
// derive the display state.
type Service struct {
	client   *Client
	sessions *session.Store
	logRepo  repository.PredictionLogRepository
	broker   messaging.Broker
	metrics  *metrics.Metrics
	strict   bool
}

func NewService(
	client *Client,
	sessions *session.Store,
	logRepo repository.PredictionLogRepository,
	broker messaging.Broker,
	m *metrics.Metrics,
	strict bool,
) *Service {
	return &Service{
		client:   client,
		sessions: sessions,
		logRepo:  logRepo,
		broker:   broker,
		metrics:  m,
		strict:   strict,
	}
}

// Predict executes one prediction for the given session. The in-flight
// gauge is raised before the model call and released on every exit path.
// On success the session slot is overwritten with the new pair; on any
// failure the slot and display state are untouched.
func (s *Service) Predict(ctx context.Context, sessionID string, input *model.PatientInput) (*model.CurrentPrediction, model.DisplayState, error) {
	if s.strict {
		if err := input.Validate(); err != nil {
			return nil, model.DisplayState{}, apperrors.NewBadRequest("invalid patient input", err)
		}
	}

	s.metrics.PredictionsInFlight.Inc()
	defer s.metrics.PredictionsInFlight.Dec()

	start := time.Now()
	result, err := s.client.Predict(ctx, input)
	s.metrics.PredictionLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		if status, ok := apperrors.IsUpstreamTransport(err); ok {
			s.metrics.UpstreamFailures.WithLabelValues("transport").Inc()
			log.Error().Int("status", status).Msg("model service transport failure")
		} else if apperrors.IsCode(err, apperrors.ErrUpstreamApplication) {
			s.metrics.UpstreamFailures.WithLabelValues("application").Inc()
			log.Warn().Err(err).Msg("model service reported failure")
		}
		s.metrics.PredictionsTotal.WithLabelValues("failure").Inc()
		return nil, model.DisplayState{}, err
	}

	if bmi, ok := input.BMI(); ok {
		result.BMI = model.Round1(bmi)
	}

	pair := &model.CurrentPrediction{Result: result, Input: input}
	s.sessions.SetPrediction(sessionID, pair)
	s.metrics.PredictionsTotal.WithLabelValues("success").Inc()

	s.logPrediction(ctx, sessionID, result)
	s.publishCompleted(ctx, sessionID, result)

	return pair, Present(result), nil
}

// Current returns the session's cached prediction as display state.
func (s *Service) Current(sessionID string) (*model.CurrentPrediction, model.DisplayState, error) {
	pair, ok := s.sessions.Prediction(sessionID)
	if !ok {
		return nil, model.DisplayState{}, apperrors.NewNoPrediction()
	}
	return pair, Present(pair.Result), nil
}

// Ready reports whether the model service is reachable.
func (s *Service) Ready(ctx context.Context) error {
	if err := s.client.Ping(ctx); err != nil {
		return fmt.Errorf("model service unreachable: %w", err)
	}
	return nil
}

func (s *Service) logPrediction(ctx context.Context, sessionID string, result *model.PredictionResult) {
	if s.logRepo == nil {
		return
	}
	entry := &model.PredictionLogEntry{
		SessionID:  sessionID,
		RiskLevel:  result.RiskLevel,
		RiskScore:  result.RiskScore,
		Confidence: result.Confidence,
		BMI:        result.BMI,
	}
	if err := s.logRepo.Create(ctx, entry); err != nil {
		log.Error().Err(err).Msg("failed to log prediction")
	}
}

func (s *Service) publishCompleted(ctx context.Context, sessionID string, result *model.PredictionResult) {
	if s.broker == nil {
		return
	}
	event := messaging.PredictionCompleted{
		SessionID:  sessionID,
		RiskLevel:  result.RiskLevel,
		RiskScore:  result.RiskScore,
		Confidence: result.Confidence,
		Timestamp:  result.Timestamp,
	}
	if err := s.broker.Publish(ctx, messaging.ChannelPredictionCompleted, event); err != nil {
		log.Warn().Err(err).Msg("failed to publish prediction event")
	}
}
