package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Error describes one failed request against the backend. StatusCode is the
// HTTP status of the response, or zero when the request never produced a
// response (timeout, DNS failure, connection refused).
type Error struct {
	StatusCode int
	Message    string
}

// Error renders the single human-readable line shown in the UI banner.
func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("network: %s", e.Message)
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// transportError wraps an error that happened before any response arrived.
func transportError(err error) *Error {
	return &Error{Message: err.Error()}
}

// responseError builds an Error from a non-2xx response. The message is
// extracted best-effort: a structured detail/error/message field wins, then
// the raw body, then the canonical status text.
func responseError(resp *http.Response) *Error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	return &Error{
		StatusCode: resp.StatusCode,
		Message:    extractMessage(body, resp.StatusCode),
	}
}

func extractMessage(body []byte, statusCode int) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return http.StatusText(statusCode)
	}
	var structured struct {
		Detail  string `json:"detail"`
		Err     string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &structured); err == nil {
		for _, candidate := range []string{structured.Detail, structured.Err, structured.Message} {
			if candidate != "" {
				return candidate
			}
		}
	}
	return trimmed
}
