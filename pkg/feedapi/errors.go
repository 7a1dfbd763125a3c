package feedapi

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/url"
	"strings"
)

// Kind identifies one classified failure category. The UI only ever shows
// the message, but controllers and tests match on the kind via errors.Is.
type Kind int

const (
	KindUnknown Kind = iota
	KindNetwork
	KindTimeout
	KindBadRequest
	KindInvalidCredentials
	KindForbidden
	KindNotFound
	KindDuplicateEmail
	KindValidation
	KindRateLimited
	KindServer
	KindUnavailable
	KindSessionExpired
	KindInvalidSession
	KindAPI // server-supplied literal message, passed through
)

// APIError is a classified failure with a human-readable message. Two
// APIErrors compare equal under errors.Is when their kinds match, so the
// exported sentinels below double as match targets.
type APIError struct {
	Kind    Kind
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrNetwork            = &APIError{KindNetwork, "no internet connection, check your network and try again"}
	ErrTimeout            = &APIError{KindTimeout, "the connection took too long, check your network and try again"}
	ErrBadRequest         = &APIError{KindBadRequest, "invalid data, check the information and try again"}
	ErrInvalidCredentials = &APIError{KindInvalidCredentials, "incorrect email or password"}
	ErrForbidden          = &APIError{KindForbidden, "you do not have permission to perform this action"}
	ErrNotFound           = &APIError{KindNotFound, "item not found"}
	ErrDuplicateEmail     = &APIError{KindDuplicateEmail, "this email is already registered"}
	ErrValidation         = &APIError{KindValidation, "invalid data, check the information provided"}
	ErrRateLimited        = &APIError{KindRateLimited, "too many attempts, wait a moment and try again"}
	ErrServer             = &APIError{KindServer, "server error, try again in a few moments"}
	ErrUnavailable        = &APIError{KindUnavailable, "service temporarily unavailable, try again soon"}
	ErrSessionExpired     = &APIError{KindSessionExpired, "your session has expired, please sign in again"}
	ErrInvalidSession     = &APIError{KindInvalidSession, "invalid session, please sign in again"}
	ErrUnknown            = &APIError{KindUnknown, "an unexpected error occurred, try again"}
)

// classify turns a non-2xx response into an APIError. The server does not
// return structured error codes, only free-form messages, so this matches
// known substrings of the body's "message" field first, falls back to its
// "error" field verbatim, and finally to a status-code table when the body
// is not JSON at all. Keeping the whole shim in one function means a future
// structured-error contract only has to replace this.
func classify(status int, data []byte) error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Message != "" {
			return classifyMessage(payload.Message)
		}
		if payload.Error != "" {
			return &APIError{KindAPI, payload.Error}
		}
		return ErrUnknown
	}
	return classifyStatus(status)
}

func classifyMessage(message string) error {
	msg := strings.ToLower(message)
	switch {
	case strings.Contains(msg, "email already exists") || strings.Contains(msg, "user with this email"):
		return ErrDuplicateEmail
	case strings.Contains(msg, "invalid credentials") || strings.Contains(msg, "invalid password"):
		return ErrInvalidCredentials
	case strings.Contains(msg, "not found"):
		return ErrNotFound
	case strings.Contains(msg, "unauthorized"):
		return ErrForbidden
	case strings.Contains(msg, "token") && strings.Contains(msg, "expired"):
		return ErrSessionExpired
	case strings.Contains(msg, "token") && strings.Contains(msg, "invalid"):
		return ErrInvalidSession
	default:
		return &APIError{KindAPI, message}
	}
}

func classifyStatus(status int) error {
	switch status {
	case 400:
		return ErrBadRequest
	case 401:
		return ErrInvalidCredentials
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	case 409:
		return ErrDuplicateEmail
	case 422:
		return ErrValidation
	case 429:
		return ErrRateLimited
	case 500:
		return ErrServer
	case 502, 503:
		return ErrUnavailable
	case 504:
		return ErrTimeout
	default:
		return ErrUnknown
	}
}

// classifyTransport reclassifies failures where no response was received.
// Context cancellation propagates unchanged so callers can tell an aborted
// call apart from a dead network.
func classifyTransport(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}
	if strings.Contains(err.Error(), "timeout") {
		return ErrTimeout
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return ErrNetwork
	}
	return err
}
