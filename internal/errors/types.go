package errors

// ErrorResponse is the wire shape for failed login and callback requests
type ErrorResponse struct {
	Error   string `json:"error"`             // user-facing message
	Details string `json:"details,omitempty"` // optional details (sanitized in production)
}

type ErrorInfo struct {
	category  string
	sanitized string
}
