package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avendel/pokerledger/internal/model"
	syncservice "github.com/avendel/pokerledger/internal/services/sync"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidName        = "INVALID_NAME"
	CodeDuplicateName      = "DUPLICATE_NAME"
	CodeInvalidAmount      = "INVALID_AMOUNT"
	CodeInvalidTransaction = "INVALID_TRANSACTION_TYPE"
	CodeCutExceedsChips    = "CUT_EXCEEDS_CHIPS"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodeSnapshotNotFound   = "SNAPSHOT_NOT_FOUND"
	CodeNothingToLoad      = "NOTHING_TO_LOAD"
	CodeSyncInProgress     = "SYNC_IN_PROGRESS"
	CodeRemoteUnavailable  = "REMOTE_UNAVAILABLE"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeAuthNotConfigured  = "AUTH_NOT_CONFIGURED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrEmptyName):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidName, Message: "Player name must not be empty"}}
	case errors.Is(err, model.ErrDuplicateName):
		return &httpError{http.StatusConflict, APIError{Code: CodeDuplicateName, Message: "A player with that name already exists"}}
	case errors.Is(err, model.ErrInvalidAmount):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidAmount, Message: "Amount must be positive"}}
	case errors.Is(err, model.ErrInvalidTransactionType):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidTransaction, Message: "Transaction type must be rebuy or cut"}}
	case errors.Is(err, model.ErrCutExceedsChips):
		return &httpError{http.StatusConflict, APIError{Code: CodeCutExceedsChips, Message: "Cannot cut more than the player's current chips"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{Code: CodePlayerNotFound, Message: "Player not found"}}
	case errors.Is(err, model.ErrSnapshotNotFound):
		return &httpError{http.StatusNotFound, APIError{Code: CodeSnapshotNotFound, Message: "Snapshot not found"}}

	// Map sync errors
	case errors.Is(err, syncservice.ErrNothingToLoad):
		return &httpError{http.StatusNotFound, APIError{Code: CodeNothingToLoad, Message: "No remote session to load"}}
	case errors.Is(err, syncservice.ErrSyncInProgress):
		return &httpError{http.StatusConflict, APIError{Code: CodeSyncInProgress, Message: "A sync operation is already in progress"}}
	case errors.Is(err, syncservice.ErrRemoteUnavailable):
		return &httpError{http.StatusServiceUnavailable, APIError{Code: CodeRemoteUnavailable, Message: "Remote store is not configured"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error", Details: err.Error()}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidRequest, Message: message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{Code: CodeUnauthorized, Message: "Authentication required"}}
}

// NewAuthNotConfiguredError reports missing server-side gate secrets, a
// fault condition distinct from bad credentials
func NewAuthNotConfiguredError() error {
	return &httpError{http.StatusInternalServerError, APIError{Code: CodeAuthNotConfigured, Message: "Authentication secrets are not configured"}}
}

// NewInternalError creates an internal server error with a details string
func NewInternalError(details string) error {
	return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error", Details: details}}
}
