package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	appmw "storeapi/internal/middleware"
	"storeapi/internal/service"
)

const authHandlerOrigin = "AuthHandler"

// AuthHandler handles the login endpoint.
type AuthHandler struct {
	authService service.AuthService
	logs        service.ErrorLogService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, logs service.ErrorLogService) *AuthHandler {
	return &AuthHandler{authService: authService, logs: logs}
}

// LoginRequest represents a login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a login outcome.
type LoginResponse struct {
	Message       string `json:"message"`
	Authenticated bool   `json:"authenticated"`
	Token         string `json:"token,omitempty"`
}

// Login godoc
// @Summary Authenticate and obtain a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} LoginResponse
// @Failure 500 {object} LoginResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, LoginResponse{
				Message:       "invalid credentials",
				Authenticated: false,
			})
		}
		r := c.Request()
		h.logs.Log(r.Context(), err, r.URL.Path, r.Method, appmw.CapturedBody(c), authHandlerOrigin)
		return c.JSON(http.StatusInternalServerError, LoginResponse{
			Message:       "login processing error",
			Authenticated: false,
		})
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Message:       "login successful",
		Authenticated: true,
		Token:         token,
	})
}
