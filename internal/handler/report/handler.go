package report

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/twinkal0201/cardio-70-AI/internal/middleware"
	"github.com/twinkal0201/cardio-70-AI/internal/service/report"
	apperrors "github.com/twinkal0201/cardio-70-AI/pkg/errors"
	"github.com/twinkal0201/cardio-70-AI/pkg/httputil"
)

type Handler struct {
	service *report.Service
}

func NewHandler(service *report.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/reports")
	{
		reports.GET("/pdf", h.DownloadPDF)
		reports.GET("/xlsx", h.DownloadXLSX)
		reports.POST("/email", h.Email)
	}
}

// DownloadPDF streams the session's report. With no cached prediction
// the download is a quiet no-op: 204, no body, no error.
func (h *Handler) DownloadPDF(c *gin.Context) {
	filename, data, err := h.service.GeneratePDF(middleware.SessionID(c))
	if err != nil {
		if apperrors.IsCode(err, apperrors.ErrNoPrediction) {
			c.Status(http.StatusNoContent)
			return
		}
		httputil.RespondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *Handler) DownloadXLSX(c *gin.Context) {
	filename, data, err := h.service.GenerateXLSX(middleware.SessionID(c))
	if err != nil {
		if apperrors.IsCode(err, apperrors.ErrNoPrediction) {
			c.Status(http.StatusNoContent)
			return
		}
		httputil.RespondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

type emailRequest struct {
	To string `json:"to" binding:"required,email"`
}

// Email generates the PDF and sends it to the given address.
func (h *Handler) Email(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.NewBadRequest("invalid request body", err))
		return
	}

	if err := h.service.EmailReport(c.Request.Context(), middleware.SessionID(c), req.To); err != nil {
		if apperrors.IsCode(err, apperrors.ErrNoPrediction) {
			c.Status(http.StatusNoContent)
			return
		}
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, gin.H{"sent": true})
}
