package common

// ErrorResponse is the error body returned by the inscription API and by the proxy routes.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Details any    `json:"details,omitempty"`
}
