package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/petal-labs/easel/core"
)

// Exit codes
const (
	ExitSuccess    = 0
	ExitValidation = 1
	ExitProvider   = 2
	ExitNetwork    = 3
	ExitDecode     = 4
)

// exitError wraps an error with an exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) ExitCode() int {
	return e.code
}

func (e *exitError) Unwrap() error {
	return e.err
}

func exitWithCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

// exitCodeForKind maps a failure kind to the process exit code.
func exitCodeForKind(kind core.FailureKind) int {
	switch kind {
	case core.FailureValidation:
		return ExitValidation
	case core.FailureTransport:
		return ExitNetwork
	case core.FailureDecode:
		return ExitDecode
	default:
		return ExitProvider
	}
}

// failureExit attaches the exit code matching err's failure kind.
func failureExit(err error) error {
	if f, ok := core.AsFailure(err); ok {
		return exitWithCode(exitCodeForKind(f.Kind), err)
	}
	return exitWithCode(ExitProvider, err)
}

// reportError writes err to stderr as text or, with --json, as an error object.
func (a *App) reportError(err error) {
	if !a.jsonOutput {
		fmt.Fprintf(a.stderr, "Error: %s\n", errorMessage(err))

		var provErr *core.ProviderError
		if errors.As(err, &provErr) && provErr.RequestID != "" {
			fmt.Fprintf(a.stderr, "  Provider: %s, Request ID: %s\n", provErr.Provider, provErr.RequestID)
		}
		return
	}

	body := map[string]any{
		"type":    "error",
		"message": errorMessage(err),
	}
	if f, ok := core.AsFailure(err); ok {
		body["type"] = string(f.Kind)
	}
	var provErr *core.ProviderError
	if errors.As(err, &provErr) {
		body["provider"] = provErr.Provider
		body["code"] = provErr.Code
		body["request_id"] = provErr.RequestID
	}

	enc := json.NewEncoder(a.stderr)
	enc.SetIndent("", "  ")
	enc.Encode(map[string]any{"error": body})
}

// errorMessage prefers the provider's own message so users see what it said.
func errorMessage(err error) string {
	var provErr *core.ProviderError
	if errors.As(err, &provErr) && provErr.Message != "" {
		return provErr.Message
	}
	if f, ok := core.AsFailure(err); ok && f.Message != "" {
		return f.Message
	}
	return err.Error()
}
