// Package normalize converts provider HTTP failures into core.ProviderError values.
package normalize

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/petal-labs/easel/core"
)

// RequestIDHeader is the response header carrying the provider request ID.
const RequestIDHeader = "X-Request-Id"

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

// errorEnvelope matches {"error":{"message":"...","type":"...","code":"..."}}.
type errorEnvelope struct {
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// Response reads a non-2xx response and normalizes it.
// The caller still owns resp.Body and must close it.
func Response(provider string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return Envelope(provider, resp.StatusCode, body, resp.Header.Get(RequestIDHeader))
}

// Envelope normalizes an error body in the OpenAI-style envelope. A body
// that is not an envelope is used verbatim as the message.
func Envelope(provider string, status int, body []byte, requestID string) error {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil || env.Error == nil {
		return ProviderError(provider, status, requestID, "", strings.TrimSpace(string(body)), nil)
	}

	code := env.Error.Code
	if code == "" {
		code = env.Error.Type
	}
	return ProviderError(provider, status, requestID, code, env.Error.Message, nil)
}

// NetworkError wraps a failed round trip to the provider.
func NetworkError(provider string, err error) error {
	return &core.ProviderError{
		Provider: provider,
		Code:     "network_error",
		Message:  err.Error(),
		Err:      core.ErrNetwork,
	}
}

// DecodeError wraps an unparseable provider response.
func DecodeError(provider string, err error) error {
	return &core.ProviderError{
		Provider: provider,
		Code:     "decode_error",
		Message:  err.Error(),
		Err:      core.ErrDecode,
	}
}

// ProviderError constructs a normalized ProviderError.
// If message is empty, HTTP status text is used.
// If sentinel is nil, SentinelForStatus is applied.
func ProviderError(provider string, status int, requestID, code, message string, sentinel error) error {
	if message == "" {
		message = http.StatusText(status)
	}
	if sentinel == nil {
		sentinel = SentinelForStatus(status)
	}
	return &core.ProviderError{
		Provider:  provider,
		Status:    status,
		RequestID: requestID,
		Code:      code,
		Message:   message,
		Err:       sentinel,
	}
}

// SentinelForStatus maps an HTTP status code to a core sentinel error.
func SentinelForStatus(status int) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return core.ErrUnauthorized
	case status == http.StatusTooManyRequests:
		return core.ErrRateLimited
	case status >= 500:
		return core.ErrServer
	default:
		return core.ErrBadRequest
	}
}
