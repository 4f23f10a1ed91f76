package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "storeapi/internal/errors"
	"storeapi/internal/service"
)

// ErrorTrap is the outermost failure boundary. Any error escaping a handler
// that has not already been translated to an HTTP status is logged with the
// full request metadata and answered with a generic 500 body. Errors the
// framework raised itself (echo.HTTPError, including 401s from the auth
// middleware) pass through untouched.
func ErrorTrap(logs service.ErrorLogService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				return err
			}

			req := c.Request()
			logs.Log(req.Context(), err, req.URL.Path, req.Method, CapturedBody(c), "ErrorTrap")

			if c.Response().Committed {
				return nil
			}
			return c.JSON(http.StatusInternalServerError, apperrors.Internal())
		}
	}
}
