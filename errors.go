package twist

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotConnected is returned by every operation issued before [Client.Connect].
	ErrNotConnected = errors.New("client not connected - call Connect() first")

	// ErrNoAccessToken is returned when an authenticated call is attempted
	// without a bearer token. No request is sent.
	ErrNoAccessToken = errors.New("no access token set")

	ErrMissingClientCredentials = errors.New("client id and secret must be set")

	ErrInvalidID       = errors.New("invalid id")
	ErrEmptyField      = errors.New("cannot be empty")
	ErrInvalidValue    = errors.New("invalid value")
	ErrNothingToUpdate = errors.New("nothing to update")

	// ErrRequestFailed matches every [RequestError] and [AuthError].
	ErrRequestFailed = errors.New("request failed")
)

// ValidationError reports a bad argument detected before any network call.
type ValidationError struct {
	// Field names the offending argument, e.g. "workspace" or "title".
	Field string
	// Reason is one of ErrInvalidID, ErrEmptyField, ErrInvalidValue or ErrNothingToUpdate.
	Reason error
	// Err is the underlying validation rule error, if any.
	Err error
}

func (e *ValidationError) Error() string {
	switch {
	case errors.Is(e.Reason, ErrInvalidID):
		return fmt.Sprintf("invalid %s id", e.Field)
	case errors.Is(e.Reason, ErrEmptyField):
		return fmt.Sprintf("%s cannot be empty", e.Field)
	case errors.Is(e.Reason, ErrNothingToUpdate):
		return fmt.Sprintf("nothing to update: set at least one of %s", e.Field)
	case e.Err != nil:
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
	default:
		return fmt.Sprintf("invalid %s", e.Field)
	}
}

func (e *ValidationError) Unwrap() []error {
	errs := []error{e.Reason}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	return errs
}

// RequestError is the single error type for transport failures and HTTP
// responses with a status of 300 or above. StatusCode is zero when no
// response was received. A successful response whose body cannot be decoded
// is reported the same way, with its 2xx status.
type RequestError struct {
	Method     string
	Endpoint   string
	StatusCode int
	Body       string
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode < 300 {
		return fmt.Sprintf("%s %s failed: %v", e.Method, e.Endpoint, e.Err)
	}

	body := strings.TrimSpace(e.Body)
	if body == "" {
		body = "(empty error body)"
	}

	return fmt.Sprintf("%s %s failed with status %d: %s", e.Method, e.Endpoint, e.StatusCode, body)
}

func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// AuthError wraps a failed authorization-code exchange.
type AuthError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *AuthError) Error() string {
	var sb strings.Builder
	sb.WriteString("token exchange failed")

	if e.StatusCode != 0 {
		fmt.Fprintf(&sb, ": status code %d", e.StatusCode)
	}

	if e.Body != "" {
		fmt.Fprintf(&sb, ", body: %q", e.Body)
	}

	if e.Err != nil {
		fmt.Fprintf(&sb, ", err: %v", e.Err)
	}

	return sb.String()
}

func (e *AuthError) Is(target error) bool {
	return target == ErrRequestFailed
}

func (e *AuthError) Unwrap() error { return e.Err }
