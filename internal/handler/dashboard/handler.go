package dashboard

import (
	"github.com/gin-gonic/gin"

	"github.com/twinkal0201/cardio-70-AI/internal/middleware"
	"github.com/twinkal0201/cardio-70-AI/internal/model"
	"github.com/twinkal0201/cardio-70-AI/internal/service/dashboard"
	"github.com/twinkal0201/cardio-70-AI/internal/service/session"
	apperrors "github.com/twinkal0201/cardio-70-AI/pkg/errors"
	"github.com/twinkal0201/cardio-70-AI/pkg/httputil"
)

type Handler struct {
	service  *dashboard.Service
	sessions *session.Store
}

func NewHandler(service *dashboard.Service, sessions *session.Store) *Handler {
	return &Handler{
		service:  service,
		sessions: sessions,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	dash := r.Group("/dashboard")
	{
		dash.GET("/charts", h.Charts)
		dash.GET("/stats", h.Stats)
	}
	prefs := r.Group("/preferences")
	{
		prefs.GET("/theme", h.GetTheme)
		prefs.PUT("/theme", h.SetTheme)
	}
}

// Charts returns the dashboard chart set styled for the session's theme.
func (h *Handler) Charts(c *gin.Context) {
	theme := h.sessions.Theme(middleware.SessionID(c))
	httputil.RespondWithSuccess(c, gin.H{
		"theme":  theme,
		"charts": h.service.Charts(theme),
	})
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, stats)
}

func (h *Handler) GetTheme(c *gin.Context) {
	theme := h.sessions.Theme(middleware.SessionID(c))
	httputil.RespondWithSuccess(c, gin.H{"theme": theme})
}

type themeRequest struct {
	Theme model.Theme `json:"theme"`
}

// SetTheme stores the session's theme preference.
func (h *Handler) SetTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewBadRequest("invalid request body", err))
		return
	}
	if !req.Theme.Valid() {
		httputil.RespondWithError(c, apperrors.NewBadRequest("theme must be light or dark", nil))
		return
	}

	h.sessions.SetTheme(middleware.SessionID(c), req.Theme)
	httputil.RespondWithSuccess(c, gin.H{"theme": req.Theme})
}
