package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode identifies an application error independently of its HTTP status
type ErrorCode int

const (
	ErrorCode_INTERNAL           ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT   ErrorCode = 1001
	ErrorCode_NOT_FOUND          ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD    ErrorCode = 1003
	ErrorCode_VALIDATION         ErrorCode = 1004
	ErrorCode_METHOD_NOT_ALLOWED ErrorCode = 1005

	ErrorCode_MEETING_NOT_FOUND ErrorCode = 2000
	ErrorCode_REPORT_NOT_FOUND  ErrorCode = 2001

	ErrorCode_AI_SERVICE_FAILED       ErrorCode = 3000
	ErrorCode_AI_TRANSCRIPTION_FAILED ErrorCode = 3001

	ErrorCode_STORAGE_FAILED ErrorCode = 4000

	ErrorCode_EMAIL_NOT_CONFIGURED ErrorCode = 5001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_INTERNAL:                "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:        "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:               "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:         "INVALID_PAYLOAD",
	ErrorCode_VALIDATION:              "VALIDATION",
	ErrorCode_METHOD_NOT_ALLOWED:      "METHOD_NOT_ALLOWED",
	ErrorCode_MEETING_NOT_FOUND:       "MEETING_NOT_FOUND",
	ErrorCode_REPORT_NOT_FOUND:        "REPORT_NOT_FOUND",
	ErrorCode_AI_SERVICE_FAILED:       "AI_SERVICE_FAILED",
	ErrorCode_AI_TRANSCRIPTION_FAILED: "AI_TRANSCRIPTION_FAILED",
	ErrorCode_STORAGE_FAILED:          "STORAGE_FAILED",
	ErrorCode_EMAIL_NOT_CONFIGURED:    "EMAIL_NOT_CONFIGURED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// AppError is the error type rendered at the HTTP boundary.
// Raw is logged server-side and never written to the response body.
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
	Details  map[string]string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrMethodNotAllowed() AppError {
	return AppError{
		HTTPCode: http.StatusMethodNotAllowed,
		Code:     ErrorCode_METHOD_NOT_ALLOWED,
		Message:  "Method not allowed",
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

// ErrValidationFailed carries a field-naming message back to the caller
func ErrValidationFailed(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_VALIDATION,
		Message:  message,
	}
}

// Meeting Errors
func ErrMeetingNotFound(clientID, meetingID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_MEETING_NOT_FOUND,
		Message:  "Meeting not found",
	}.WithDetail("client_id", clientID).
		WithDetail("meeting_id", meetingID)
}

func ErrReportNotFound(clientID, meetingID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_REPORT_NOT_FOUND,
		Message:  "Discovery report not found",
	}.WithDetail("client_id", clientID).
		WithDetail("meeting_id", meetingID)
}

// AI Errors

// ErrAIServiceFailed collapses every provider failure into one message so
// provider internals never reach the caller.
func ErrAIServiceFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_AI_SERVICE_FAILED,
		Message:  "AI service error",
	}
}

func ErrAITranscriptionFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_AI_TRANSCRIPTION_FAILED,
		Message:  "Audio transcription failed",
	}
}

// Integration Errors
func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_STORAGE_FAILED,
		Message:  fmt.Sprintf("Storage operation failed: %s", operation),
	}
}

// Email Errors
func ErrEmailNotConfigured(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_EMAIL_NOT_CONFIGURED,
		Message:  err.Error(),
	}
}
