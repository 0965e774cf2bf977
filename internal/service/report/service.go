package report

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/twinkal0201/cardio-70-AI/internal/email"
	"github.com/twinkal0201/cardio-70-AI/internal/service/session"
	apperrors "github.com/twinkal0201/cardio-70-AI/pkg/errors"
	"github.com/twinkal0201/cardio-70-AI/pkg/metrics"
)

const reportIDCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Service produces downloadable reports from the session's cached
// prediction pair. An empty slot is not an error state worth surfacing:
// callers translate ErrNoPrediction into a quiet no-op.
type Service struct {
	sessions *session.Store
	emailer  email.Sender
	metrics  *metrics.Metrics
}

func NewService(sessions *session.Store, emailer email.Sender, m *metrics.Metrics) *Service {
	return &Service{
		sessions: sessions,
		emailer:  emailer,
		metrics:  m,
	}
}

// GeneratePDF composes and renders the report for the session's current
// prediction. Returns the download filename alongside the document bytes.
func (s *Service) GeneratePDF(sessionID string) (string, []byte, error) {
	pair, ok := s.sessions.Prediction(sessionID)
	if !ok {
		return "", nil, apperrors.NewNoPrediction()
	}

	sections := Compose(pair, NewReportID(), time.Now())
	data, err := RenderPDF(sections)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate report: %w", err)
	}

	s.metrics.ReportsGenerated.WithLabelValues("pdf").Inc()
	return fmt.Sprintf("%s_Cardio70_Report.pdf", pair.Input.Age), data, nil
}

// GenerateXLSX renders the report content as a spreadsheet.
func (s *Service) GenerateXLSX(sessionID string) (string, []byte, error) {
	pair, ok := s.sessions.Prediction(sessionID)
	if !ok {
		return "", nil, apperrors.NewNoPrediction()
	}

	sections := Compose(pair, NewReportID(), time.Now())
	data, err := RenderXLSX(sections)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate workbook: %w", err)
	}

	s.metrics.ReportsGenerated.WithLabelValues("xlsx").Inc()
	return fmt.Sprintf("%s_Cardio70_Report.xlsx", pair.Input.Age), data, nil
}

// EmailReport generates the PDF and sends it as an attachment. Only
// available when an SMTP sender is configured.
func (s *Service) EmailReport(ctx context.Context, sessionID, to string) error {
	if s.emailer == nil {
		return apperrors.NewBadRequest("email delivery is not configured", nil)
	}

	filename, data, err := s.GeneratePDF(sessionID)
	if err != nil {
		return err
	}

	if err := s.emailer.SendReport(ctx, to, filename, data); err != nil {
		return fmt.Errorf("failed to email report: %w", err)
	}
	s.metrics.ReportsGenerated.WithLabelValues("email").Inc()
	return nil
}

// NewReportID generates the report identifier: nine random alphanumerics,
// upper-cased, behind a fixed prefix.
func NewReportID() string {
	id := make([]byte, 9)
	for i := range id {
		id[i] = reportIDCharset[rand.Intn(len(reportIDCharset))]
	}
	return "ID-" + string(id)
}
