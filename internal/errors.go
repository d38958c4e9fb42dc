package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeForbidden    ErrorType = "FORBIDDEN"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidMoodRating ErrorCode = "INVALID_MOOD_RATING"
	ErrCodeInvalidWorkload   ErrorCode = "INVALID_WORKLOAD_RATING"
	ErrCodeInvalidStress     ErrorCode = "INVALID_STRESS_LEVEL"
	ErrCodeInvalidDate       ErrorCode = "INVALID_DATE"
	ErrCodeInvalidStatus     ErrorCode = "INVALID_STATUS"
	ErrCodeInvalidPriority   ErrorCode = "INVALID_PRIORITY"

	ErrCodeCheckInNotFound  ErrorCode = "CHECKIN_NOT_FOUND"
	ErrCodeCheckInExists    ErrorCode = "CHECKIN_ALREADY_EXISTS"
	ErrCodeUserNotFound     ErrorCode = "USER_NOT_FOUND"
	ErrCodeTeamNotFound     ErrorCode = "TEAM_NOT_FOUND"
	ErrCodeProjectNotFound  ErrorCode = "PROJECT_NOT_FOUND"
	ErrCodeDuplicateEmail   ErrorCode = "DUPLICATE_EMAIL"
	ErrCodeDuplicateTeam    ErrorCode = "DUPLICATE_TEAM_NAME"
	ErrCodeTeamNotEmpty     ErrorCode = "TEAM_NOT_EMPTY"
	ErrCodeAlreadyAssigned  ErrorCode = "ALREADY_ASSIGNED"
	ErrCodeNotAssigned      ErrorCode = "NOT_ASSIGNED"
	ErrCodeAlreadyMember    ErrorCode = "ALREADY_MEMBER"
	ErrCodeNotMember        ErrorCode = "NOT_MEMBER"
	ErrCodeAccessDenied     ErrorCode = "ACCESS_DENIED"
	ErrCodeAdminRequired    ErrorCode = "ADMIN_REQUIRED"
	ErrCodeUserInactive     ErrorCode = "USER_INACTIVE"
	ErrCodeInvalidToken     ErrorCode = "INVALID_TOKEN"
	ErrCodeTokenExpired     ErrorCode = "TOKEN_EXPIRED"
	ErrCodeBadCredentials   ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeStorageFailure   ErrorCode = "STORAGE_FAILURE"
)

// AppError is the single error shape services return to transport. StatusCode
// and Cause never cross the wire.
type AppError struct {
	Type       ErrorType   `json:"type"`
	Code       ErrorCode   `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	StatusCode int         `json:"-"`
	Cause      error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewForbiddenError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeForbidden,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusForbidden,
	}
}

func NewConflictError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       ErrCodeStorageFailure,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var (
	ErrCheckInNotFound = NewNotFoundError("Check-in not found", ErrCodeCheckInNotFound)
	ErrCheckInExists   = NewConflictError("You already have a check-in for today", ErrCodeCheckInExists)
	ErrUserNotFound    = NewNotFoundError("User not found", ErrCodeUserNotFound)
	ErrTeamNotFound    = NewNotFoundError("Team not found", ErrCodeTeamNotFound)
	ErrProjectNotFound = NewNotFoundError("Project not found", ErrCodeProjectNotFound)

	ErrAccessDenied  = NewForbiddenError("Access denied", ErrCodeAccessDenied)
	ErrAdminRequired = NewForbiddenError("Admin access required", ErrCodeAdminRequired)
	ErrUserInactive  = NewForbiddenError("Valid user access required", ErrCodeUserInactive)

	ErrInvalidCredentials = NewUnauthorizedError("Invalid email or password", ErrCodeBadCredentials)
	ErrInvalidToken       = NewUnauthorizedError("Invalid token", ErrCodeInvalidToken)
	ErrTokenExpired       = NewUnauthorizedError("The token has expired", ErrCodeTokenExpired)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

type Response struct {
	Error *AppError `json:"error"`
}

func (e *AppError) ToHTTPResponse() (int, interface{}) {
	return e.StatusCode, Response{Error: e}
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType   `json:"type"`
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}
