package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HackArena_Go/internal/domain"
)

func TestHandlePreviewHack(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		setupMock      func(*MockHackService)
		expectedStatus int
		verify         func(*testing.T, envelope)
	}{
		{
			name:   "Success",
			target: "/hack/preview?attacker_id=user-004&defender_id=user-001",
			setupMock: func(m *MockHackService) {
				m.On("Preview", mock.Anything, "user-004", "user-001").Return(&domain.HackEmulationResult{
					AttackerPower: 54.33, DefenderPower: 41.05, WinProb: 0.63, StaminaCost: 13,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			verify: func(t *testing.T, env envelope) {
				assert.True(t, env.Success)
				res := decodeData[domain.HackEmulationResult](t, env)
				assert.InDelta(t, 0.63, res.WinProb, 1e-9)
				assert.Equal(t, 13, res.StaminaCost)
			},
		},
		{
			name:           "Missing defender",
			target:         "/hack/preview?attacker_id=user-004",
			setupMock:      func(m *MockHackService) {},
			expectedStatus: http.StatusBadRequest,
			verify: func(t *testing.T, env envelope) {
				assert.False(t, env.Success)
				assert.Contains(t, env.Message, "defender_id")
			},
		},
		{
			name:   "Unknown player",
			target: "/hack/preview?attacker_id=user-004&defender_id=ghost",
			setupMock: func(m *MockHackService) {
				m.On("Preview", mock.Anything, "user-004", "ghost").Return(nil, domain.ErrPlayerNotFound)
			},
			expectedStatus: http.StatusNotFound,
			verify: func(t *testing.T, env envelope) {
				assert.Equal(t, domain.ErrMsgPlayerNotFound, env.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockHackService{}
			tt.setupMock(svc)

			rec := serve(t, http.MethodGet, "/hack/preview", tt.target, HandlePreviewHack(svc), nil)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.verify(t, decodeEnvelope(t, rec))
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleResolveHack(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*MockHackService)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "Win",
			body: HackRequest{AttackerID: "user-004", DefenderID: "user-001"},
			setupMock: func(m *MockHackService) {
				m.On("Hack", mock.Anything, "user-004", "user-001").Return(&domain.HackResult{
					Win: true, Loot: domain.Loot{Creds: 125, XP: 12}, StaminaCost: 13,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    MsgHackWon,
		},
		{
			name: "Loss",
			body: HackRequest{AttackerID: "user-004", DefenderID: "user-001"},
			setupMock: func(m *MockHackService) {
				m.On("Hack", mock.Anything, "user-004", "user-001").Return(&domain.HackResult{StaminaCost: 13}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    MsgHackLost,
		},
		{
			name: "Not enough stamina",
			body: HackRequest{AttackerID: "user-004", DefenderID: "user-001"},
			setupMock: func(m *MockHackService) {
				m.On("Hack", mock.Anything, "user-004", "user-001").Return(nil, domain.ErrInsufficientStamina)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    domain.ErrMsgInsufficientStamina,
		},
		{
			name: "Congested",
			body: HackRequest{AttackerID: "user-004", DefenderID: "user-001"},
			setupMock: func(m *MockHackService) {
				m.On("Hack", mock.Anything, "user-004", "user-001").Return(nil, domain.ErrConflictRetryExhausted)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedMsg:    ErrMsgUnavailableError,
		},
		{
			name:           "Missing attacker",
			body:           map[string]string{"defender_id": "user-001"},
			setupMock:      func(m *MockHackService) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    ErrMsgInvalidRequestSummary,
		},
		{
			name:           "Malformed JSON",
			body:           "{not json",
			setupMock:      func(m *MockHackService) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    ErrMsgInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockHackService{}
			tt.setupMock(svc)

			rec := serve(t, http.MethodPost, "/hack", "/hack", HandleResolveHack(svc), tt.body)

			require.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			env := decodeEnvelope(t, rec)
			assert.Equal(t, tt.expectedMsg, env.Message)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleResolveHack_ValidationFields(t *testing.T) {
	svc := &MockHackService{}
	rec := serve(t, http.MethodPost, "/hack", "/hack", HandleResolveHack(svc), map[string]string{"defender_id": "user-001"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "This field is required", env.Fields["attacker_id"])
	svc.AssertNotCalled(t, "Hack", mock.Anything, mock.Anything, mock.Anything)
}
