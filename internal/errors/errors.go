package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned for unknown email or wrong password.
	// One error for both cases, so responses do not enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountNotActive is returned when a login hits a non-Active account.
	ErrAccountNotActive = errors.New("account is not active")
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrRenterNotFound is returned when a renter profile is not found.
	ErrRenterNotFound = errors.New("renter not found")
	// ErrReportNotFound is returned when a report is not found.
	ErrReportNotFound = errors.New("report not found")
	// ErrAdminProtected is returned when deleting or deactivating an Admin account.
	ErrAdminProtected = errors.New("admin accounts cannot be deleted or deactivated")
	// ErrAccountNotPending is returned when approving an account that is not pending.
	ErrAccountNotPending = errors.New("account is not pending approval")
	// ErrAccountAlreadyActive is returned when reactivating an active account.
	ErrAccountAlreadyActive = errors.New("account is already active")
	// ErrReportTransition is returned on an unsupported report status change.
	ErrReportTransition = errors.New("unsupported report status transition")
	// ErrNoStaffProfile is returned when a caller without a staff profile authors a report.
	ErrNoStaffProfile = errors.New("no staff profile linked to this account")
)

// ErrorResponse is the standardized error body.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Message: e.Message,
		Code:    e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Precondition violations
// (approving a non-pending account, reopening a closed report, touching an
// admin account) map to 403. Unexpected errors map to a generic 500; internal
// error text never reaches the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrAccountNotActive):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "ACCOUNT_NOT_ACTIVE")
	case errors.Is(err, ErrAccountNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ACCOUNT_NOT_FOUND")
	case errors.Is(err, ErrRenterNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "RENTER_NOT_FOUND")
	case errors.Is(err, ErrReportNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "REPORT_NOT_FOUND")
	case errors.Is(err, ErrAdminProtected):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ADMIN_PROTECTED")
	case errors.Is(err, ErrAccountNotPending):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ACCOUNT_NOT_PENDING")
	case errors.Is(err, ErrAccountAlreadyActive):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ACCOUNT_ALREADY_ACTIVE")
	case errors.Is(err, ErrReportTransition):
		return NewHTTPError(http.StatusForbidden, err.Error(), "REPORT_TRANSITION")
	case errors.Is(err, ErrNoStaffProfile):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_STAFF_PROFILE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
