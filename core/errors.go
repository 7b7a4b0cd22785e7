package core

import (
	"errors"
	"fmt"
)

// ProviderError represents an error returned by a provider with full context.
type ProviderError struct {
	Provider  string
	Status    int
	RequestID string
	Code      string
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("%s: %s (status=%d, code=%s, request_id=%s)",
			e.Provider, e.Message, e.Status, e.Code, e.RequestID)
	}
	return fmt.Sprintf("%s: %s (status=%d, code=%s)",
		e.Provider, e.Message, e.Status, e.Code)
}

// Unwrap returns the underlying error for error chaining.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Sentinel errors for classification.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrRateLimited  = errors.New("rate limited")
	ErrBadRequest   = errors.New("bad request")
	ErrServer       = errors.New("server error")
	ErrNetwork      = errors.New("network error")
	ErrDecode       = errors.New("decode error")
)

// Validation errors with actionable guidance.
var (
	ErrEmptyPrompt   = errors.New("prompt required: describe the image to generate")
	ErrInvalidOption = errors.New("invalid option: run 'easel styles' to list sizes, qualities and styles")
	ErrInvalidCount  = errors.New("invalid count: at least one image must be requested")
	ErrNoImage       = errors.New("provider returned no image reference")
)

// FailureKind classifies a failed generation.
type FailureKind string

const (
	FailureValidation FailureKind = "validation_error"
	FailureProvider   FailureKind = "provider_error"
	FailureTransport  FailureKind = "transport_error"
	FailureDecode     FailureKind = "decode_error"
)

// Failure is the error value produced at the pipeline boundary.
// Every error returned by Build and Pipeline is a *Failure.
type Failure struct {
	Kind    FailureKind
	Message string
	Err     error
}

// Error returns the kind followed by the message.
func (f *Failure) Error() string {
	if f.Message == "" && f.Err != nil {
		return string(f.Kind) + ": " + f.Err.Error()
	}
	return string(f.Kind) + ": " + f.Message
}

// Unwrap returns the underlying cause.
func (f *Failure) Unwrap() error {
	return f.Err
}

// AsFailure extracts a *Failure from err's chain.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// newFailure wraps err with kind, using its message verbatim.
func newFailure(kind FailureKind, err error) *Failure {
	if f, ok := AsFailure(err); ok && f.Kind == kind {
		return f
	}
	return &Failure{Kind: kind, Message: err.Error(), Err: err}
}
