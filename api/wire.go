package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/BaSui01/lightx-go/types"
)

// appStatusOK is the envelope statusCode the service sends on success,
// independent of the HTTP status.
const appStatusOK = 2000

// envelope is the application-level wrapper around every JSON response.
type envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Body       json.RawMessage `json:"body"`
}

// applicationMessage renders the service message of a failed envelope.
func applicationMessage(env envelope) string {
	if env.Message != "" {
		return env.Message
	}
	return "service reported failure"
}

// mapHTTPError converts a non-2xx HTTP response into a *types.Error.
// The code is always REMOTE; the retryable flag follows the status.
func mapHTTPError(status int, msg string, endpoint string) *types.Error {
	if msg == "" {
		msg = http.StatusText(status)
	}
	retryable := status == http.StatusTooManyRequests || status >= 500
	return types.NewError(types.ErrRemote, msg).
		WithHTTPStatus(status).
		WithRetryable(retryable).
		WithEndpoint(endpoint)
}

// readErrMsg extracts a human-readable message from an error response
// body. It tries the standard envelope first and falls back to the raw
// text.
func readErrMsg(body io.Reader) string {
	data, err := io.ReadAll(body)
	if err != nil {
		return "failed to read error response"
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Message != "" {
		return env.Message
	}

	return string(data)
}

// closeBody closes an HTTP response body, ignoring the error.
func closeBody(body io.ReadCloser) {
	if body != nil {
		_ = body.Close()
	}
}
