package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/logger"
)

// Response is the envelope every endpoint returns
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ValidationErrorResponse adds per-field messages to a failed envelope
type ValidationErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode first so an encoding failure can still produce a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

func respondSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	respondJSON(w, status, Response{Success: true, Message: message, Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, Response{Success: false, Message: message})
}

// respondServiceError logs err and writes the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(op+" failed", "error", err, "status", status)
	} else {
		log.Warn(op+" refused", "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgUnavailableError   = "The network is congested. Please try again."
	ErrMsgIntegrityError     = "Server refused an inconsistent update"
	ErrMsgNotFoundError      = "Resource not found"
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and a
// message safe to show the player. Specific errors keep their own message;
// the category decides the status.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUsernameTaken), errors.Is(err, domain.ErrTaskAlreadyExists):
		return http.StatusConflict, specificMessage(err)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, domain.ErrMsgInvalidCredentials
	case errors.Is(err, domain.ErrInvalidTaskState), errors.Is(err, domain.ErrItemAlreadyActive):
		return http.StatusConflict, specificMessage(err)
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, specificMessage(err)
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, specificMessage(err)
	case errors.Is(err, domain.ErrConflictRetryExhausted):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	case errors.Is(err, domain.ErrIntegrityViolation):
		return http.StatusInternalServerError, ErrMsgIntegrityError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// specificMessage finds the most specific domain message in err's chain.
// Wrapping layers add storage context that players should not see.
func specificMessage(err error) string {
	for _, target := range knownErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	if errors.Is(err, domain.ErrNotFound) {
		return ErrMsgNotFoundError
	}
	return ErrMsgInvalidInputError
}

var knownErrors = []error{
	domain.ErrInsufficientFunds,
	domain.ErrInsufficientStamina,
	domain.ErrSelfHack,
	domain.ErrNotOwner,
	domain.ErrItemAlreadyActive,
	domain.ErrItemDepleted,
	domain.ErrInvalidTaskState,
	domain.ErrTaskAlreadyExists,
	domain.ErrInvalidChoice,
	domain.ErrInvalidReaction,
	domain.ErrUsernameTaken,
	domain.ErrPlayerNotFound,
	domain.ErrItemNotFound,
	domain.ErrInventoryNotFound,
	domain.ErrTaskNotFound,
	domain.ErrTemplateNotFound,
	domain.ErrQuestionNotFound,
	domain.ErrFeedItemNotFound,
}
