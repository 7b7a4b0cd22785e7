// Package providers contains image provider implementations for Easel.
//
// Each provider lives in its own subpackage (e.g., providers/openai) and
// implements core.ImageProvider. Providers register a Factory from init()
// so the CLI can construct them by name.
//
// # Concurrency
//
// Providers SHOULD be safe for concurrent calls. If a provider cannot be
// concurrent-safe, it MUST document this limitation.
//
// # Errors
//
// Providers MUST return a *core.ProviderError wrapping one of the core
// sentinels so the pipeline can classify the failure:
//
//	if errors.Is(err, providers.ErrRateLimited) {
//	    // back off
//	}
package providers

import "github.com/petal-labs/easel/core"

// Re-export core types for convenience.
// Provider implementations can import just the providers package.
type (
	// ImageProvider is the interface that image providers must implement.
	ImageProvider = core.ImageProvider

	// ImageGenerateRequest is the provider-level generation request.
	ImageGenerateRequest = core.ImageGenerateRequest

	// ImageResponse carries the image references returned by a provider.
	ImageResponse = core.ImageResponse

	// ModelID is a string identifier for a model.
	ModelID = core.ModelID

	// ProviderError represents an error returned by a provider.
	ProviderError = core.ProviderError
)

// Re-export sentinel errors.
var (
	ErrUnauthorized = core.ErrUnauthorized
	ErrRateLimited  = core.ErrRateLimited
	ErrBadRequest   = core.ErrBadRequest
	ErrServer       = core.ErrServer
	ErrNetwork      = core.ErrNetwork
	ErrDecode       = core.ErrDecode
)
