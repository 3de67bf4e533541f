// Package web holds the JSON envelope and request helpers shared by the HTTP handlers.
package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/gopherkit/http/response"
)

const (
	HeaderContentType = "Content-Type"
	MimeJSON          = "application/json"
)

// OKResponse is the envelope of every successful JSON response.
type OKResponse[T any] struct {
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}

// ErrorResponse is the envelope of every failed JSON response.
// Errors maps field names to validation messages.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// OK writes data wrapped in an OKResponse with the given status.
// A nil msg or data is left out of the body.
//
//	msg := "Client created."
//	OK(w, http.StatusCreated, &msg, &client)
//
// produces
//
//	{"message": "Client created.", "data": {"id": 1, ...}}
func OK[T any](w http.ResponseWriter, status int, msg *string, data *T) {
	payload := &OKResponse[*T]{}
	if msg != nil {
		payload.Message = *msg
	}

	if data != nil {
		payload.Data = data
	}

	response.JSON(w, status, payload)
}

// Fail writes an ErrorResponse with the given status. Reason is logged and
// never sent to the client.
func Fail(w http.ResponseWriter, status int, reason error, msg string, errs map[string]string) {
	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.Log(context.Background(), level, "request failed", "status", status, "reason", reason)

	payload := &ErrorResponse{
		Message: msg,
		Errors:  errs,
	}
	response.JSON(w, status, payload)
}
