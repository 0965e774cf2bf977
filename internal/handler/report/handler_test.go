package report

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twinkal0201/cardio-70-AI/internal/middleware"
	"github.com/twinkal0201/cardio-70-AI/internal/model"
	reportService "github.com/twinkal0201/cardio-70-AI/internal/service/report"
	"github.com/twinkal0201/cardio-70-AI/internal/service/session"
	"github.com/twinkal0201/cardio-70-AI/pkg/metrics"
)

func newTestRouter(t *testing.T) (*gin.Engine, *session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := metrics.New("test", prometheus.NewRegistry())
	sessions := session.NewStore(time.Minute, time.Minute)
	svc := reportService.NewService(sessions, nil, m)

	engine := gin.New()
	engine.Use(middleware.Session())
	NewHandler(svc).RegisterRoutes(engine.Group("/api/v1"))
	return engine, sessions
}

func cachedPair() *model.CurrentPrediction {
	return &model.CurrentPrediction{
		Input: &model.PatientInput{
			Age: "52", Gender: "1", Height: "165", Weight: "70",
			SystolicBP: "120", DiastolicBP: "80", Cholesterol: "190",
			Glucose: "95", Smoke: "0", Alcohol: "0", Active: "1",
		},
		Result: &model.PredictionResult{
			Status: "success", RiskLevel: model.RiskLow, RiskScore: 12.5,
			Confidence: 88.0, Explanation: "Low overall risk.", BMI: 25.7,
		},
	}
}

func TestDownloadPDF(t *testing.T) {
	engine, sessions := newTestRouter(t)
	sessions.SetPrediction("s1", cachedPair())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/pdf", nil)
	req.Header.Set("X-Session-ID", "s1")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="52_Cardio70_Report.pdf"`, w.Header().Get("Content-Disposition"))
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestDownloadPDFWithoutPredictionIsQuietNoOp(t *testing.T) {
	engine, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/pdf", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestDownloadXLSX(t *testing.T) {
	engine, sessions := newTestRouter(t)
	sessions.SetPrediction("s1", cachedPair())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/xlsx", nil)
	req.Header.Set("X-Session-ID", "s1")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="52_Cardio70_Report.xlsx"`, w.Header().Get("Content-Disposition"))
}

func TestEmailRequiresValidAddress(t *testing.T) {
	engine, sessions := newTestRouter(t)
	sessions.SetPrediction("s1", cachedPair())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/email", http.NoBody)
	req.Header.Set("X-Session-ID", "s1")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
