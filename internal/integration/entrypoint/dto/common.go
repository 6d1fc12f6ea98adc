// Package dto defines data transfer objects for API requests and responses.
package dto

// ErrorResponse represents an error response. CurrentBalance is only set
// on insufficient-funds failures so clients can show what is available.
type ErrorResponse struct {
	Error                 string `json:"error"`
	Code                  string `json:"code,omitempty"`
	CurrentBalance        *int64 `json:"current_balance,omitempty"`
	CurrentBalanceDisplay string `json:"current_balance_display,omitempty"`
}

// MessageResponse represents a simple confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}
