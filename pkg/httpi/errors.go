package httpi

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/vayload/contact-validator/internal/domain"
	"github.com/vayload/contact-validator/pkg/logger"
)

type LogLevel int

const (
	LogLevelDebug LogLevel = iota // Log everything
	LogLevelInfo                  // Log info and above
	LogLevelWarn                  // Log warnings and above (client errors 4xx)
	LogLevelError                 // Log errors only (server errors 5xx)
	LogLevelFatal                 // Log only fatal/critical errors (internal, unavailable, timeout)
	LogLevelNone                  // Disable logging
)

// Default log level - can be changed at runtime
var ErrorHandlerLogLevel = LogLevelWarn

type Err struct {
	Status int            `json:"status"`
	Err    HttpError      `json:"error"`
	Meta   map[string]any `json:"meta,omitempty"` // Additional metadata
	Cause  error          `json:"-"`              // Original error, not included in JSON response
}

// NewErr creates a new standardized HTTP error
func NewErr(status int, code, message string, details any, cause error) *Err {
	return &Err{
		Status: status,
		Err: HttpError{
			Code:    code,
			Message: message,
			Details: details,
		},
		Meta:  map[string]any{},
		Cause: cause,
	}
}

// Error returns the error message (implements error interface)
func (e *Err) Error() string {
	return e.Err.Message
}

// Unwrap returns the underlying cause (for errors.Is / errors.As)
func (e *Err) Unwrap() error {
	return e.Cause
}

func newWithOptionalDetails(status int, code, message string, cause error, details ...any) *Err {
	var d any
	if len(details) > 0 {
		d = details[0]
	}
	return NewErr(status, code, message, d, cause)
}

// 400 - Bad Request
func ErrBadRequest(cause error, details ...any) *Err {
	return newWithOptionalDetails(http.StatusBadRequest, "BAD_REQUEST", "Invalid request", cause, details...)
}

// 404 - Not Found
func ErrNotFound(cause error, details ...any) *Err {
	return newWithOptionalDetails(http.StatusNotFound, "RESOURCE_NOT_FOUND", "Resource not found", cause, details...)
}

// 405 - Method Not Allowed
func ErrMethodNotAllowed(cause error, details ...any) *Err {
	return newWithOptionalDetails(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", cause, details...)
}

// 413 - Request Entity Too Large
func ErrRequestTooLarge(cause error, details ...any) *Err {
	return newWithOptionalDetails(http.StatusRequestEntityTooLarge, "REQUEST_TOO_LARGE", "Request body too large", cause, details...)
}

// 422 - Unprocessable Entity (validation)
func ErrValidation(cause error, details ...any) *Err {
	return newWithOptionalDetails(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", cause, details...)
}

// 500 - Internal Server Error
func ErrInternal(cause error, details ...any) *Err {
	return newWithOptionalDetails(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", cause, details...)
}

// MapFromAppException converts service errors into HTTP errors. Domain
// errors keep their message as details; anything else is a 500.
func MapFromAppException(cause error, details ...any) *Err {
	var httErr *Err
	if errors.As(cause, &httErr) {
		newDetails := httErr.Err.Details
		if len(details) > 0 {
			newDetails = details[0]
		}
		return NewErr(httErr.Status, httErr.Err.Code, httErr.Err.Message, newDetails, cause)
	}

	var de domain.DomainError
	if errors.As(cause, &de) {
		if len(details) == 0 {
			details = []any{de.Message}
		}
		switch de.Kind {
		case domain.ErrorKindNotFound:
			return ErrNotFound(cause, details...)
		case domain.ErrorKindValidation:
			return ErrValidation(cause, details...)
		}
	}

	return ErrInternal(cause, details...)
}

// fromFiberError keeps the status of errors raised by fiber itself (unknown
// route, wrong method, oversized body).
func fromFiberError(e *fiber.Error) *Err {
	switch e.Code {
	case http.StatusNotFound:
		return ErrNotFound(e, e.Message)
	case http.StatusMethodNotAllowed:
		return ErrMethodNotAllowed(e)
	case http.StatusRequestEntityTooLarge:
		return ErrRequestTooLarge(e)
	case http.StatusBadRequest:
		return ErrBadRequest(e, e.Message)
	}
	return NewErr(e.Code, "SYSTEM_ERROR", e.Message, nil, e)
}

func HttpErrorHandler(req HttpRequest, res HttpResponse, err error) error {
	requestCtx := logger.Fields{
		"ip":         req.GetIP(),
		"user_agent": req.GetUserAgent(),
		"method":     req.GetMethod(),
		"path":       req.GetPath(),
	}

	requestId := req.RequestID()
	if req.GetLocal(HTTP_REQUEST_ID_KEY) == nil {
		// Rejected before the middleware chain ran, e.g. an oversized body.
		requestId = AcceptRequestID(requestId)
		req.Locals(HTTP_REQUEST_ID_KEY, requestId)
		res.SetHeader(HTTP_REQUEST_ID_HEADER, requestId)
	}
	requestCtx["request_id"] = requestId

	// Automatic check for nil error (marks as error because it should not happen)
	if err == nil {
		logger.E(errors.New("error handler called with <nil> error"), requestCtx)
		return nil
	}

	var httpErr *Err
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &httpErr):
	case errors.As(err, &fiberErr):
		httpErr = fromFiberError(fiberErr)
	default:
		httpErr = ErrInternal(err)
	}

	if shouldLog(httpErr.Status) {
		cause := httpErr.Cause
		if cause == nil {
			cause = errors.New(httpErr.Err.Message)
		}
		logByStatus(httpErr.Status, cause, requestCtx, logger.Fields{"code": httpErr.Err.Code})
	}

	finalResponse := ErrorResponse{
		Status: "error",
		Error:  httpErr.Err,
		Meta:   map[string]any{"request_id": requestId},
	}

	return res.Status(httpErr.Status).Json(finalResponse)
}

// shouldLog determines if an error should be logged based on status code and configured level
func shouldLog(statusCode int) bool {
	switch ErrorHandlerLogLevel {
	case LogLevelNone:
		return false
	case LogLevelFatal:
		// Only log 500, 503, 504 (internal, unavailable, timeout)
		return statusCode == 500 || statusCode == 503 || statusCode == 504
	case LogLevelError:
		return statusCode >= 500
	case LogLevelWarn:
		return statusCode >= 400
	case LogLevelInfo, LogLevelDebug:
		return true
	default:
		return statusCode >= 500
	}
}

// logByStatus logs using appropriate log level based on status code
func logByStatus(statusCode int, cause error, fields ...logger.Fields) {
	switch {
	case statusCode >= 500:
		logger.E(cause, fields...)
	case statusCode >= 400:
		logger.W(cause.Error(), fields...)
	default:
		logger.I(cause.Error(), fields...)
	}
}
