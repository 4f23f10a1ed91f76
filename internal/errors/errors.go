package errors

// InternalErrorMessage is the only detail ever exposed for unexpected
// failures; the specifics go to the error log instead.
const InternalErrorMessage = "an internal error occurred while processing the request"

// ErrorResponse is the generic JSON error body.
type ErrorResponse struct {
	Message string `json:"message"`
}

// NotFoundResponse is returned when a product lookup misses.
type NotFoundResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

// FieldErrors maps request fields to schema validation messages. It is the
// body of a 406 response.
type FieldErrors map[string]string

// Internal returns the generic error body.
func Internal() ErrorResponse {
	return ErrorResponse{Message: InternalErrorMessage}
}
