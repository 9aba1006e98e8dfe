package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/gopherkit/http/response"

	"github.com/ferdiebergado/boring/internal/pkg/message"
)

const HeaderLocation = "Location"

// ErrorResponse represents the structure of a JSON-encoded error response.
//
// Error carries a human-readable message. Fields optionally maps request
// fields to the rule they violated and is omitted when empty.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// OK writes data as the JSON body with the given status code.
//
// Success bodies are the raw resource or array, there is no wrapping
// envelope:
//
//	web.OK(w, http.StatusCreated, &item)
func OK[T any](w http.ResponseWriter, status int, data T) {
	response.JSON(w, status, data)
}

// NoContent writes status with an empty body.
func NoContent(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}

// Fail writes a JSON-encoded error response to w with the provided HTTP status code.
//
// The reason is logged with the key "reason": at Error level for server
// errors and at Warn level otherwise. The reason itself never reaches the
// client. The JSON response has the form:
//
//	{
//	  "error": "Invalid input.",
//	  "fields": {
//	    "name": "name must not be blank"
//	  }
//	}
func Fail(w http.ResponseWriter, status int, reason error, msg string, fields map[string]string) {
	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.Log(context.Background(), level, "request failed", "status", status, "reason", reason)

	payload := &ErrorResponse{
		Error:  msg,
		Fields: fields,
	}
	response.JSON(w, status, payload)
}

func RespondBadRequest(w http.ResponseWriter, err error, msg string, fields map[string]string) {
	Fail(w, http.StatusBadRequest, err, msg, fields)
}

func RespondNotFound(w http.ResponseWriter, err error, msg string) {
	Fail(w, http.StatusNotFound, err, msg, nil)
}

func RespondRequestTimeout(w http.ResponseWriter, err error, msg string) {
	Fail(w, http.StatusRequestTimeout, err, msg, nil)
}

func RespondRequestEntityTooLarge(w http.ResponseWriter, err error, msg string) {
	Fail(w, http.StatusRequestEntityTooLarge, err, msg, nil)
}

func RespondUnsupportedMediaType(w http.ResponseWriter, err error, msg string) {
	Fail(w, http.StatusUnsupportedMediaType, err, msg, nil)
}

func RespondBadGateway(w http.ResponseWriter, err error, msg string) {
	Fail(w, http.StatusBadGateway, err, msg, nil)
}

// RespondInternalServerError hides err from the client behind a generic message.
func RespondInternalServerError(w http.ResponseWriter, err error) {
	Fail(w, http.StatusInternalServerError, err, message.ServerError, nil)
}
