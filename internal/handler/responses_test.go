package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/HackArena_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusBadRequest, domain.ErrMsgInsufficientFunds},
		{"wrapped stamina", fmt.Errorf("hack: %w", domain.ErrInsufficientStamina), http.StatusBadRequest, domain.ErrMsgInsufficientStamina},
		{"self hack", domain.ErrSelfHack, http.StatusBadRequest, domain.ErrMsgSelfHack},
		{"invalid state", domain.ErrInvalidTaskState, http.StatusConflict, domain.ErrMsgInvalidTaskState},
		{"already active", domain.ErrItemAlreadyActive, http.StatusConflict, domain.ErrMsgItemAlreadyActive},
		{"username taken", domain.ErrUsernameTaken, http.StatusConflict, domain.ErrMsgUsernameTaken},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, domain.ErrMsgInvalidCredentials},
		{"invalid input hides detail", fmt.Errorf("%w: username must be 3-32", domain.ErrInvalidInput), http.StatusBadRequest, ErrMsgInvalidInputError},
		{"player not found", fmt.Errorf("failed to get player: %w", domain.ErrPlayerNotFound), http.StatusNotFound, domain.ErrMsgPlayerNotFound},
		{"feed not found", domain.ErrFeedItemNotFound, http.StatusNotFound, domain.ErrMsgFeedItemNotFound},
		{"conflict exhausted", fmt.Errorf("hack: %w", domain.ErrConflictRetryExhausted), http.StatusServiceUnavailable, ErrMsgUnavailableError},
		{"integrity", domain.IntegrityError("player", "creds", -1), http.StatusInternalServerError, ErrMsgIntegrityError},
		{"unknown", errors.New("connection refused"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
