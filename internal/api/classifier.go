// internal/api/classifier.go
package api

import (
	"encoding/json"
	"net/http"
)

// errorEnvelope is the error body shape the backend emits: a field-level
// errors map on validation failures, a message string otherwise.
type errorEnvelope struct {
	Errors  map[string]string `json:"errors"`
	Message string            `json:"message"`
}

// Classify maps a transport error or an HTTP status onto an Outcome.
// A nil response with a non-nil err is a network-class failure (timeout,
// refused connection, DNS), never a server error. 401 and only 401
// classifies as session expiry; what the screen does with that is its
// own policy (the login screen reads it as wrong credentials).
func Classify(resp *http.Response, body []byte, err error) Outcome {
	if err != nil || resp == nil {
		return Outcome{Kind: KindNetworkError}
	}

	out := Outcome{Status: resp.StatusCode, Body: body}

	var env errorEnvelope
	if len(body) > 0 {
		_ = json.Unmarshal(body, &env)
	}
	out.Message = env.Message

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		out.Kind = KindSuccess
	case resp.StatusCode == http.StatusBadRequest:
		out.Kind = KindValidationError
		out.Fields = env.Errors
	case resp.StatusCode == http.StatusUnauthorized:
		out.Kind = KindSessionExpired
	case resp.StatusCode == http.StatusForbidden:
		out.Kind = KindForbidden
	case resp.StatusCode == http.StatusNotFound:
		out.Kind = KindNotFound
	case resp.StatusCode == http.StatusUnprocessableEntity:
		// Generic invalid input, no per-field map.
		out.Kind = KindValidationError
	case resp.StatusCode == http.StatusTooManyRequests:
		out.Kind = KindRateLimited
	case resp.StatusCode == http.StatusInternalServerError,
		resp.StatusCode == http.StatusBadGateway,
		resp.StatusCode == http.StatusServiceUnavailable,
		resp.StatusCode == http.StatusGatewayTimeout:
		out.Kind = KindServerError
	default:
		out.Kind = KindUnknown
	}
	return out
}
