package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// maxErrorBody limits how much of a non-JSON error body ends up in a message
const maxErrorBody = 512

// Error is a non-2xx answer from the backend
type Error struct {
	StatusCode int
	Message    string
	Method     string
	Path       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// IsUnauthorized reports whether err is a backend 401
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// StatusCode returns the HTTP status carried by err, or 0 for transport faults
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// Message returns the backend supplied message if err is an *Error, err.Error() otherwise
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// newError builds an *Error from the response status and body. The backend reports
// failures as {"error": "..."} or {"message": "..."}.
func newError(method, path string, code int, body []byte) *Error {
	res := &Error{StatusCode: code, Method: method, Path: path}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Error != "":
			res.Message = payload.Error
		case payload.Message != "":
			res.Message = payload.Message
		}
	}

	if res.Message == "" {
		text := strings.TrimSpace(string(body))
		if len(text) > maxErrorBody {
			text = text[:maxErrorBody]
		}
		res.Message = text
	}
	if res.Message == "" {
		res.Message = http.StatusText(code)
	}
	return res
}
