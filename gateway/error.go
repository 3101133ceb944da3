package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedResponse is returned when a success status carries a body that
// is not a JSON object.
var ErrMalformedResponse = errors.New("malformed response from API")

// APIError is a transport-level failure. It carries the backend's status
// code and the message from the error body when one was present.
type APIError struct {
	StatusCode int
	Path       string
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// errorMessage extracts a human-readable message from an error body, falling
// back to a generic one when the body is silent or unparsable.
func errorMessage(raw []byte, path string) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(raw, &body)

	if body.Message != "" {
		return body.Message
	}
	if body.Error != "" {
		return body.Error
	}
	return fmt.Sprintf("request to %s failed", path)
}
