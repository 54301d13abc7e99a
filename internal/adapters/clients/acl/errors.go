package acl

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen/quotekeeper/internal/adapters/clients"
	"github.com/jsamuelsen/quotekeeper/internal/domain"
)

// maxErrorBody bounds how much of an error response is read for its message.
const maxErrorBody = 4 << 10

// ErrorResponse is the error body shape placeholder APIs commonly return.
// Both {"error":{"message":...}} and {"message":...} are accepted.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	Message string      `json:"message,omitempty"`
}

// ErrorDetail is the nested error object.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// GetMessage returns the nested message when present, else the top-level one.
func (e *ErrorResponse) GetMessage() string {
	if e.Error.Message != "" {
		return e.Error.Message
	}

	return e.Message
}

// ParseErrorResponse extracts a human-readable message from an error body.
// JSON bodies yield their message field; short plain-text bodies are used as is.
// Returns "" when nothing useful is found.
func ParseErrorResponse(body io.Reader) string {
	if body == nil {
		return ""
	}

	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var errResp ErrorResponse
	if json.Unmarshal(raw, &errResp) == nil {
		return errResp.GetMessage()
	}

	text := strings.TrimSpace(string(raw))
	if strings.ContainsAny(text, "\n<{") {
		return ""
	}

	return text
}

// MapHTTPError translates a failed remote call into a domain error.
// Exactly one of resp and clientErr is expected to be set.
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation string) error {
	if clientErr != nil {
		return mapClientError(clientErr, serviceName, operation)
	}

	if resp == nil {
		return domain.NewNetworkError(serviceName, operation, errors.New("no response received"))
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	return domain.NewServerError(serviceName, operation, resp.StatusCode, ParseErrorResponse(resp.Body))
}

func mapClientError(err error, serviceName, operation string) error {
	var statusErr *clients.StatusError
	if errors.As(err, &statusErr) {
		return domain.NewServerError(serviceName, operation, statusErr.Code, "retries exhausted")
	}

	return domain.NewNetworkError(serviceName, operation, err)
}
