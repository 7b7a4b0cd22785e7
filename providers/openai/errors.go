package openai

import "github.com/petal-labs/easel/providers/internal/normalize"

// ProviderID is the name the provider registers under.
const ProviderID = "openai"

// newNetworkError creates a ProviderError for network-related failures.
func newNetworkError(err error) error {
	return normalize.NetworkError(ProviderID, err)
}

// newDecodeError creates a ProviderError for JSON decode failures.
func newDecodeError(err error) error {
	return normalize.DecodeError(ProviderID, err)
}
