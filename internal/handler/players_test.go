package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/player"
)

func TestHandleRegisterPlayer(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*MockPlayerService)
		expectedStatus int
	}{
		{
			name: "Success",
			body: RegisterPlayerRequest{Username: "z3r0_c00l", Password: "hunter22"},
			setupMock: func(m *MockPlayerService) {
				m.On("Register", mock.Anything, player.RegisterRequest{Username: "z3r0_c00l", Password: "hunter22"}).
					Return(&domain.Player{ID: "p-1", Username: "z3r0_c00l", PasswordHash: "secret-hash"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Taken",
			body: RegisterPlayerRequest{Username: "n3o_pwnr", Password: "hunter22"},
			setupMock: func(m *MockPlayerService) {
				m.On("Register", mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Username with space",
			body:           RegisterPlayerRequest{Username: "zero cool", Password: "hunter22"},
			setupMock:      func(m *MockPlayerService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Short password",
			body:           RegisterPlayerRequest{Username: "z3r0_c00l", Password: "abc"},
			setupMock:      func(m *MockPlayerService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockPlayerService{}
			tt.setupMock(svc)

			rec := serve(t, http.MethodPost, "/players", "/players", HandleRegisterPlayer(svc), tt.body)

			require.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "secret-hash")
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleGetPlayer(t *testing.T) {
	svc := &MockPlayerService{}
	svc.On("Get", mock.Anything, "user-001").Return(&domain.Player{ID: "user-001", Username: "n3o_pwnr"}, nil)
	svc.On("Get", mock.Anything, "ghost").Return(nil, domain.ErrPlayerNotFound)

	rec := serve(t, http.MethodGet, "/players/{id}", "/players/user-001", HandleGetPlayer(svc), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	p := decodeData[domain.Player](t, decodeEnvelope(t, rec))
	assert.Equal(t, "n3o_pwnr", p.Username)

	rec = serve(t, http.MethodGet, "/players/{id}", "/players/ghost", HandleGetPlayer(svc), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleListPlayers_EmptyIsArray(t *testing.T) {
	svc := &MockPlayerService{}
	svc.On("List", mock.Anything).Return(nil, nil)

	rec := serve(t, http.MethodGet, "/players", "/players", HandleListPlayers(svc), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))
}

func TestHandleLogin(t *testing.T) {
	svc := &MockPlayerService{}
	svc.On("Login", mock.Anything, "n3o_pwnr", "hunter22").Return(&domain.Player{ID: "user-001", Username: "n3o_pwnr"}, nil)
	svc.On("Login", mock.Anything, "n3o_pwnr", "wrong-pass").Return(nil, domain.ErrInvalidCredentials)

	rec := serve(t, http.MethodPost, "/login", "/login", HandleLogin(svc), LoginRequest{Username: "n3o_pwnr", Password: "hunter22"})
	require.Equal(t, http.StatusOK, rec.Code)
	res := decodeData[LoginResponse](t, decodeEnvelope(t, rec))
	assert.Equal(t, "user-001", res.PlayerID)

	rec = serve(t, http.MethodPost, "/login", "/login", HandleLogin(svc), LoginRequest{Username: "n3o_pwnr", Password: "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, domain.ErrMsgInvalidCredentials, decodeEnvelope(t, rec).Message)
}
