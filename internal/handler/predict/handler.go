package predict

import (
	"github.com/gin-gonic/gin"

	"github.com/twinkal0201/cardio-70-AI/internal/middleware"
	"github.com/twinkal0201/cardio-70-AI/internal/model"
	"github.com/twinkal0201/cardio-70-AI/internal/service/prediction"
	apperrors "github.com/twinkal0201/cardio-70-AI/pkg/errors"
	"github.com/twinkal0201/cardio-70-AI/pkg/httputil"
)

type Handler struct {
	service *prediction.Service
}

func NewHandler(service *prediction.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/predict", h.Predict)
	r.GET("/predictions/current", h.Current)
}

// Predict runs one prediction and caches the result in the caller's
// session slot.
func (h *Handler) Predict(c *gin.Context) {
	var input model.PatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.RespondWithError(c, apperrors.NewBadRequest("invalid request body", err))
		return
	}

	pair, display, err := h.service.Predict(c.Request.Context(), middleware.SessionID(c), &input)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, gin.H{
		"result":  pair.Result,
		"display": display,
	})
}

// Current returns the session's cached prediction, if any.
func (h *Handler) Current(c *gin.Context) {
	pair, display, err := h.service.Current(middleware.SessionID(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, gin.H{
		"result":     pair.Result,
		"input_data": pair.Input,
		"display":    display,
	})
}
