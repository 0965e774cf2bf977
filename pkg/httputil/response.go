package httputil

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/twinkal0201/cardio-70-AI/pkg/errors"
)

// Response wraps all API responses
type Response struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

// Error represents an API error
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RespondWithSuccess sends a success response
func RespondWithSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Status: "success",
		Data:   data,
	})
}

// RespondWithError maps an application error onto an HTTP status and body.
func RespondWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	var appErr *errors.AppError
	var upErr *errors.UpstreamError
	if stderrors.As(err, &upErr) {
		appErr = &upErr.AppError
	} else {
		stderrors.As(err, &appErr)
	}

	if appErr != nil {
		message = appErr.Message
		switch appErr.Code {
		case errors.ErrNotFound, errors.ErrNoPrediction:
			status = http.StatusNotFound
		case errors.ErrBadRequest:
			status = http.StatusBadRequest
		case errors.ErrUpstreamTransport, errors.ErrUpstreamApplication:
			status = http.StatusBadGateway
		}
	}

	c.JSON(status, Response{
		Status: "error",
		Error: &Error{
			Code:    status,
			Message: message,
		},
	})
}
