// Package message holds the user-facing response messages.
package message

const (
	Unexpected           = "An unexpected error occurred."
	InvalidInput         = "Invalid input."
	InvalidID            = "Invalid id."
	IDMismatch           = "The id in the path does not match the id in the body."
	Unauthorized         = "Unauthorized."
	UnsupportedMediaType = "Content-Type must be application/json."
	PayloadTooLarge      = "Request body is too large."
	RequestTimeout       = "Request timed out."
	Unhealthy            = "Service unavailable."
	AIDisabled           = "AI assistant is not configured."
	EnvErrFmt            = "environment variable is not set: %s"
)
