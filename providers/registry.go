package providers

import (
	"fmt"
	"net/http"
	"sort"
	"sync"

	"github.com/petal-labs/easel/core"
)

// Settings carries the connection parameters handed to a Factory.
type Settings struct {
	APIKey string

	// BaseURL overrides the provider's default endpoint when non-empty.
	BaseURL string

	// HTTPClient overrides the provider's default client when non-nil.
	HTTPClient *http.Client
}

// Factory creates a provider instance from connection settings.
type Factory func(s Settings) core.ImageProvider

// registry holds registered provider factories.
var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register adds a provider factory to the registry.
// It is typically called from a provider's init() function.
// Registering the same name twice replaces the earlier factory.
//
//	func init() {
//	    providers.Register("openai", func(s providers.Settings) core.ImageProvider {
//	        return New(s.APIKey)
//	    })
//	}
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// Get retrieves a provider factory by name.
// Returns nil if the provider is not registered.
func Get(name string) Factory {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry[name]
}

// Create creates a new provider instance by name.
// Returns an error if the provider is not registered.
func Create(name string, s Settings) (core.ImageProvider, error) {
	factory := Get(name)
	if factory == nil {
		return nil, fmt.Errorf("unknown provider: %s (available: %v)", name, List())
	}
	return factory(s), nil
}

// List returns the names of all registered providers in sorted order.
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered returns true if a provider with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}
