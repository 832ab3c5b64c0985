// internal/api/outcome.go
package api

import (
	"encoding/json"

	xerrors "eventflow-client/internal/pkg/errors"
)

// Kind is the normalized category of an API call result. Every screen
// maps each kind to a user-visible message and a state transition; none
// may be silently dropped.
type Kind int

const (
	KindSuccess Kind = iota
	KindValidationError
	KindSessionExpired
	KindForbidden
	KindNotFound
	KindRateLimited
	KindServerError
	KindNetworkError
	KindMalformed
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindValidationError:
		return "validation_error"
	case KindSessionExpired:
		return "session_expired"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindRateLimited:
		return "rate_limited"
	case KindServerError:
		return "server_error"
	case KindNetworkError:
		return "network_error"
	case KindMalformed:
		return "malformed_response"
	default:
		return "unknown"
	}
}

// Outcome is the classified result of one API call.
type Outcome struct {
	Kind    Kind
	Status  int
	Body    []byte
	Fields  map[string]string // per-field messages from a 400 errors map
	Message string            // backend-supplied message, when present
}

// Err maps the outcome onto the shared sentinel taxonomy, nil on success.
func (o Outcome) Err() error {
	switch o.Kind {
	case KindSuccess:
		return nil
	case KindValidationError:
		return xerrors.ErrInvalidInput
	case KindSessionExpired:
		return xerrors.ErrSessionExpired
	case KindForbidden:
		return xerrors.ErrForbidden
	case KindNotFound:
		return xerrors.ErrNotFound
	case KindRateLimited:
		return xerrors.ErrRateLimited
	case KindServerError:
		return xerrors.ErrServer
	case KindNetworkError:
		return xerrors.ErrNetwork
	case KindMalformed:
		return xerrors.ErrMalformed
	default:
		return xerrors.ErrServer
	}
}

// Decode unmarshals the successful response body into v. An undecodable
// body on a success outcome is a malformed response.
func (o Outcome) Decode(v interface{}) error {
	if err := json.Unmarshal(o.Body, v); err != nil {
		return xerrors.Wrap(xerrors.ErrMalformed, err.Error())
	}
	return nil
}
