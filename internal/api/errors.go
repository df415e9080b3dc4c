package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var ErrUnexpectedBody = errors.New("unexpected response body")

// Error is a non-2xx answer of the remote API. Message is the server's
// human-readable text, passed on verbatim.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

func IsConflict(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict
}

type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func newError(status int, body []byte) *Error {
	return &Error{StatusCode: status, Message: errorMessage(status, body)}
}

func errorMessage(status int, body []byte) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		if len(parsed.Detail) > 0 {
			var detail string
			if err := json.Unmarshal(parsed.Detail, &detail); err == nil && detail != "" {
				return detail
			}
			return string(parsed.Detail)
		}
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	if len(body) > 0 && len(body) < 512 {
		return string(body)
	}
	return fmt.Sprintf("Unexpected status %d %s", status, http.StatusText(status))
}
