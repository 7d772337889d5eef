package client

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// AuthError is returned when the API rejects the supplied credentials
// with HTTP 401 or 403. Retrying without a new token will not succeed.
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication rejected (HTTP %d): %s", e.StatusCode, e.Message)
}

// TransientError is returned for any other non-2xx response, such as a
// rate limit or server error. A later retry may succeed.
type TransientError struct {
	StatusCode int
	Message    string
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("request failed (HTTP %d): %s", e.StatusCode, e.Message)
}

// MalformedResponseError is returned when a 2xx response body cannot be
// decoded into the expected structure.
type MalformedResponseError struct {
	URL string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.URL, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// checkResponse maps a non-2xx response to a typed error, surfacing the
// API's own message when the body carries one.
func checkResponse(resp *http.Response, data []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}

	msg := http.StatusText(resp.StatusCode)
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		msg = body.Message
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &AuthError{StatusCode: resp.StatusCode, Message: msg}
	default:
		return &TransientError{StatusCode: resp.StatusCode, Message: msg}
	}
}
