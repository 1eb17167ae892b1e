package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "CHALLENGE_EXPIRED"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the uniform envelope every API reply uses, success or
// failure. Clients only need "success" and "message" to drive their UI.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
