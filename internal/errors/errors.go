package apierrors

import "fmt"

type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func NewAPIError(code int, message string) *APIError {
	return &APIError{Code: code, Message: message}
}

// HTTP 400 Bad Request.
const (
	ErrInvalidID    = "INVALID_ID"
	ErrInvalidQuery = "INVALID_QUERY"
	ErrInvalidBody  = "INVALID_BODY"
)

// HTTP 401 Unauthorized.
const (
	ErrInvalidCredentials = "INVALID_CREDENTIALS"
	ErrInvalidToken       = "INVALID_TOKEN"
)

// HTTP 403 Forbidden.
const (
	ErrForbidden = "FORBIDDEN"
)

// HTTP 404 Not Found.
const (
	ErrUserNotFound = "USER_NOT_FOUND"
)

// HTTP 429 Too Many Requests.
const (
	ErrTooManyRequests = "TOO_MANY_REQUESTS"
)

// HTTP 500 Internal Server Error.
const (
	ErrInternalServer = "INTERNAL_SERVER_ERROR"
)

var (
	ErrCredentialsRejected       = NewAPIError(401, ErrInvalidCredentials)
	ErrGenerateAccessTokenFailed = NewAPIError(500, "GENERATE_ACCESS_TOKEN_FAILED")
)

// AggregationError reports which counter of a dashboard computation failed.
// Its cause is logged but never sent to the client.
type AggregationError struct {
	Counter string
	Err     error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("aggregation %s failed: %v", e.Counter, e.Err)
}

func (e *AggregationError) Unwrap() error {
	return e.Err
}
