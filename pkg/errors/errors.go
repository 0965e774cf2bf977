package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code
type ErrorCode int

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrNotFound ErrorCode = iota + 1000
	ErrBadRequest
	ErrInternal
	ErrUpstreamTransport
	ErrUpstreamApplication
	ErrNoPrediction
)

// UpstreamError carries the HTTP status returned by the model service.
type UpstreamError struct {
	AppError
	Status int `json:"status"`
}

// Error constructors
func NewNotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Err:     err,
	}
}

func NewBadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    ErrBadRequest,
		Message: message,
		Err:     err,
	}
}

func NewInternal(err error) *AppError {
	return &AppError{
		Code:    ErrInternal,
		Message: "internal server error",
		Err:     err,
	}
}

// NewUpstreamTransport reports a non-2xx status from the model service.
func NewUpstreamTransport(status int) *UpstreamError {
	return &UpstreamError{
		AppError: AppError{
			Code:    ErrUpstreamTransport,
			Message: fmt.Sprintf("model service returned status %d", status),
		},
		Status: status,
	}
}

// NewUpstreamApplication reports a 2xx response whose body did not carry
// a success status tag.
func NewUpstreamApplication(status string, err error) *AppError {
	return &AppError{
		Code:    ErrUpstreamApplication,
		Message: fmt.Sprintf("model service reported %q", status),
		Err:     err,
	}
}

// NewNoPrediction reports that no prediction has been cached for the session.
func NewNoPrediction() *AppError {
	return &AppError{
		Code:    ErrNoPrediction,
		Message: "no prediction available",
	}
}

// IsUpstreamTransport reports whether err is a transport failure and, if so,
// returns the upstream HTTP status.
func IsUpstreamTransport(err error) (int, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Status, true
	}
	return 0, false
}

// IsCode reports whether err is an AppError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}
