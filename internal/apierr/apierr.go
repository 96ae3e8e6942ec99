// Package apierr maps domain errors to stable machine-readable API responses.
package apierr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"spaceshooter/backend/internal/access"
	"spaceshooter/backend/internal/telegram"
	"spaceshooter/backend/pkg/session"
)

// APIError represents an API error response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeMissingHash     = "MISSING_HASH"
	CodeInvalidHash     = "INVALID_HASH"
	CodeMissingAuthDate = "MISSING_AUTH_DATE"
	CodeAuthDataExpired = "AUTH_DATA_EXPIRED"
	CodeMissingUser     = "MISSING_USER"
	CodeInvalidUser     = "INVALID_USER"
	CodeInvalidToken    = "INVALID_TOKEN"
	CodeExpiredToken    = "EXPIRED_TOKEN"
	CodeAlreadyApproved = "ALREADY_APPROVED"
	CodeRequestPending  = "REQUEST_PENDING"
	CodeRequestNotFound = "REQUEST_NOT_FOUND"
	CodeAlreadyDecided  = "ALREADY_DECIDED"
	CodeUserNotFound    = "USER_NOT_FOUND"
	CodeNotApproved     = "NOT_APPROVED"
	CodeAdminRequired   = "ADMIN_REQUIRED"
	CodeInternalError   = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError.
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// Abort writes the error response for err and aborts the request.
func Abort(c *gin.Context, err error) {
	he := toHTTPError(err)
	c.AbortWithStatusJSON(he.status, ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError.
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Identity assertion failures
	case errors.Is(err, telegram.ErrMissingHash):
		return &httpError{http.StatusUnauthorized, APIError{CodeMissingHash, "Missing initData hash"}}
	case errors.Is(err, telegram.ErrInvalidHash):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidHash, "Invalid initData hash"}}
	case errors.Is(err, telegram.ErrMissingAuthDate):
		return &httpError{http.StatusUnauthorized, APIError{CodeMissingAuthDate, "Missing auth_date"}}
	case errors.Is(err, telegram.ErrExpiredAuthData):
		return &httpError{http.StatusUnauthorized, APIError{CodeAuthDataExpired, "Telegram auth data expired"}}
	case errors.Is(err, telegram.ErrMissingUser):
		return &httpError{http.StatusUnauthorized, APIError{CodeMissingUser, "Missing Telegram user payload"}}
	case errors.Is(err, telegram.ErrInvalidUser):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidUser, "Invalid Telegram user payload"}}

	// Session failures
	case errors.Is(err, session.ErrExpiredToken):
		return &httpError{http.StatusUnauthorized, APIError{CodeExpiredToken, "Session expired"}}
	case errors.Is(err, session.ErrInvalidToken):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidToken, "Invalid session token"}}

	// Authorization workflow failures
	case errors.Is(err, access.ErrAlreadyApproved):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyApproved, "User already approved"}}
	case errors.Is(err, access.ErrRequestAlreadyPending):
		return &httpError{http.StatusConflict, APIError{CodeRequestPending, "Pending request already exists"}}
	case errors.Is(err, access.ErrRequestNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRequestNotFound, "Request not found"}}
	case errors.Is(err, access.ErrAlreadyDecided):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyDecided, "Request already decided"}}
	case errors.Is(err, access.ErrUserNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeUserNotFound, "User not found"}}

	// Anything else, storage transport failures included, is a generic
	// internal error: safe for the caller to retry, nothing leaks.
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error.
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error.
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewNotApprovedError creates the gate error for unapproved users.
func NewNotApprovedError() error {
	return &httpError{http.StatusForbidden, APIError{CodeNotApproved, "User is not approved"}}
}

// NewAdminRequiredError creates the gate error for non-admin callers.
func NewAdminRequiredError() error {
	return &httpError{http.StatusForbidden, APIError{CodeAdminRequired, "Admin access required"}}
}
