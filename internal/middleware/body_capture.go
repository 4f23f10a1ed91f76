package middleware

import (
	"bytes"
	"io"

	"github.com/labstack/echo/v4"
)

const capturedBodyKey = "captured_request_body"

// CaptureBody reads the raw request body up front and restores it so both
// the handler and the error logger can consume it independently. Requests
// without a declared content length capture the empty string.
func CaptureBody() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			captured := ""
			if req.ContentLength > 0 && req.Body != nil {
				body, err := io.ReadAll(req.Body)
				if err != nil {
					return err
				}
				req.Body = io.NopCloser(bytes.NewReader(body))
				captured = string(body)
			}
			c.Set(capturedBodyKey, captured)
			return next(c)
		}
	}
}

// CapturedBody returns the raw request body buffered by CaptureBody.
func CapturedBody(c echo.Context) string {
	if body, ok := c.Get(capturedBodyKey).(string); ok {
		return body
	}
	return ""
}
