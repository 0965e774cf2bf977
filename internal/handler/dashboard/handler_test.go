package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twinkal0201/cardio-70-AI/internal/middleware"
	"github.com/twinkal0201/cardio-70-AI/internal/model"
	dashboardService "github.com/twinkal0201/cardio-70-AI/internal/service/dashboard"
	"github.com/twinkal0201/cardio-70-AI/internal/service/session"
)

func newTestRouter(t *testing.T) (*gin.Engine, *session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := session.NewStore(time.Minute, time.Minute)
	svc := dashboardService.NewService(nil)

	engine := gin.New()
	engine.Use(middleware.Session())
	NewHandler(svc, sessions).RegisterRoutes(engine.Group("/api/v1"))
	return engine, sessions
}

func TestChartsUseSessionTheme(t *testing.T) {
	engine, sessions := newTestRouter(t)
	sessions.SetTheme("s1", model.ThemeDark)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/charts", nil)
	req.Header.Set("X-Session-ID", "s1")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Theme  model.Theme       `json:"theme"`
			Charts []model.ChartSpec `json:"charts"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.ThemeDark, resp.Data.Theme)
	assert.Len(t, resp.Data.Charts, 8)
}

func TestThemeRoundTrip(t *testing.T) {
	engine, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/preferences/theme", strings.NewReader(`{"theme":"dark"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "s1")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/preferences/theme", nil)
	req.Header.Set("X-Session-ID", "s1")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"theme":"dark"`)
}

func TestThemeDefaultsToLight(t *testing.T) {
	engine, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/preferences/theme", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"theme":"light"`)
}

func TestThemeRejectsUnknownValue(t *testing.T) {
	engine, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/preferences/theme", strings.NewReader(`{"theme":"sepia"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStats(t *testing.T) {
	engine, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"source":"sample"`)
}
