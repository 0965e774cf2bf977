package predict

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twinkal0201/cardio-70-AI/internal/middleware"
	"github.com/twinkal0201/cardio-70-AI/internal/model"
	"github.com/twinkal0201/cardio-70-AI/internal/service/prediction"
	"github.com/twinkal0201/cardio-70-AI/internal/service/session"
	"github.com/twinkal0201/cardio-70-AI/pkg/metrics"
)

const validBody = `{"age":"52","gender":"1","height":"165","weight":"70","ap_hi":"120","ap_lo":"80","cholesterol":"190","gluc":"95","smoke":"0","alco":"0","active":"1"}`

func newTestRouter(t *testing.T, modelHandler http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	modelSrv := httptest.NewServer(modelHandler)
	t.Cleanup(modelSrv.Close)

	m := metrics.New("test", prometheus.NewRegistry())
	sessions := session.NewStore(time.Minute, time.Minute)
	client := prediction.NewClient(modelSrv.URL, time.Second)
	svc := prediction.NewService(client, sessions, nil, nil, m, false)

	engine := gin.New()
	engine.Use(middleware.Session())
	NewHandler(svc).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func modelSuccess(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(model.PredictionResult{
		Status:      "success",
		RiskLevel:   model.RiskHigh,
		RiskScore:   82.4,
		Confidence:  91.2,
		Explanation: "Elevated blood pressure drives the risk estimate.",
	})
}

func TestPredictEndpoint(t *testing.T) {
	engine := newTestRouter(t, modelSuccess)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict", strings.NewReader(validBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Session-ID"))

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Result  model.PredictionResult `json:"result"`
			Display model.DisplayState     `json:"display"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, model.RiskHigh, resp.Data.Result.RiskLevel)
	assert.Equal(t, "High Risk", resp.Data.Display.RiskLabel)
	assert.InDelta(t, 99.44, resp.Data.Display.IndicatorOffset, 0.01)
}

func TestPredictEndpointUpstreamFailure(t *testing.T) {
	engine := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict", strings.NewReader(validBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestPredictEndpointMalformedBody(t *testing.T) {
	engine := newTestRouter(t, modelSuccess)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCurrentEndpointSessionBound(t *testing.T) {
	engine := newTestRouter(t, modelSuccess)

	// No prediction cached for a fresh session
	req := httptest.NewRequest(http.MethodGet, "/api/v1/predictions/current", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Predict, then fetch with the same session
	req = httptest.NewRequest(http.MethodPost, "/api/v1/predict", strings.NewReader(validBody))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	sid := w.Header().Get("X-Session-ID")
	require.NotEmpty(t, sid)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/predictions/current", nil)
	req.Header.Set("X-Session-ID", sid)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// A different session sees nothing
	req = httptest.NewRequest(http.MethodGet, "/api/v1/predictions/current", nil)
	req.Header.Set("X-Session-ID", "other-session")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
