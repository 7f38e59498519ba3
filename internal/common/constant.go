package common

const (
	// AuthorizationHeaderName carries the bearer token on authenticated requests.
	AuthorizationHeaderName = "Authorization"

	// TokenType is reported to clients alongside the access token and used as
	// the Authorization scheme.
	TokenType = "bearer"

	// RequestIDHeaderName correlates a request with its log lines.
	RequestIDHeaderName = "X-Request-ID"
)
