package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"storeapi/internal/service"
)

// MockAuthService is a mock implementation of AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name              string
		body              string
		setupMock         func(*MockAuthService, *MockErrorLogService)
		expectedCode      int
		wantAuthenticated bool
		wantToken         bool
		wantHTTPError     bool
	}{
		{
			name: "successful login",
			body: `{"email":"test@example.com","password":"password123"}`,
			setupMock: func(m *MockAuthService, _ *MockErrorLogService) {
				m.On("Login", mock.Anything, "test@example.com", "password123").Return("signed-token", nil)
			},
			expectedCode:      http.StatusOK,
			wantAuthenticated: true,
			wantToken:         true,
		},
		{
			name: "wrong password",
			body: `{"email":"test@example.com","password":"wrong"}`,
			setupMock: func(m *MockAuthService, _ *MockErrorLogService) {
				m.On("Login", mock.Anything, "test@example.com", "wrong").Return("", service.ErrInvalidCredentials)
			},
			expectedCode:      http.StatusUnauthorized,
			wantAuthenticated: false,
		},
		{
			name:          "malformed email fails schema validation",
			body:          `{"email":"not-an-email","password":"password123"}`,
			setupMock:     func(_ *MockAuthService, _ *MockErrorLogService) {},
			wantHTTPError: true,
		},
		{
			name: "lookup failure is logged and answered generically",
			body: `{"email":"test@example.com","password":"password123"}`,
			setupMock: func(m *MockAuthService, logs *MockErrorLogService) {
				m.On("Login", mock.Anything, "test@example.com", "password123").Return("", errors.New("connection refused"))
				logs.On("Log", mock.Anything, mock.Anything, "/api/auth/login", http.MethodPost, mock.Anything, "AuthHandler").Return()
			},
			expectedCode:      http.StatusInternalServerError,
			wantAuthenticated: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockAuthService)
			mockLogs := new(MockErrorLogService)
			tt.setupMock(mockSvc, mockLogs)

			c, rec := newTestContext(http.MethodPost, "/api/auth/login", tt.body)
			h := NewAuthHandler(mockSvc, mockLogs)

			err := h.Login(c)
			if tt.wantHTTPError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCode, rec.Code)

			var resp LoginResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantAuthenticated, resp.Authenticated)
			if tt.wantToken {
				assert.Equal(t, "signed-token", resp.Token)
				assert.Equal(t, "login successful", resp.Message)
			} else {
				assert.Empty(t, resp.Token)
			}
			mockSvc.AssertExpectations(t)
			mockLogs.AssertExpectations(t)
		})
	}
}
