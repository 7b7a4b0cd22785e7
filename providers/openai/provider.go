package openai

import (
	"errors"
	"net/http"
	"os"

	"github.com/petal-labs/easel/core"
)

// DefaultAPIKeyEnvVar is the environment variable name for the OpenAI API key.
const DefaultAPIKeyEnvVar = "OPENAI_API_KEY"

// ErrAPIKeyNotFound is returned when the API key environment variable is not set.
var ErrAPIKeyNotFound = errors.New("openai: OPENAI_API_KEY environment variable not set")

// NewFromEnv creates a new OpenAI provider using the OPENAI_API_KEY environment variable:
//
//	provider, err := openai.NewFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pipeline := core.NewPipeline(provider, assets.NewHTTPFetcher())
func NewFromEnv(opts ...Option) (*OpenAI, error) {
	apiKey := os.Getenv(DefaultAPIKeyEnvVar)
	if apiKey == "" {
		return nil, ErrAPIKeyNotFound
	}
	return New(apiKey, opts...), nil
}

// OpenAI is an image provider implementation for the OpenAI Images API.
// OpenAI is safe for concurrent use.
type OpenAI struct {
	config Config
}

// New creates a new OpenAI provider with the given API key and options.
func New(apiKey string, opts ...Option) *OpenAI {
	cfg := Config{
		APIKey:     core.NewSecret(apiKey),
		BaseURL:    DefaultBaseURL,
		HTTPClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return &OpenAI{config: cfg}
}

// ID returns the provider identifier.
func (p *OpenAI) ID() string {
	return ProviderID
}

// buildHeaders constructs the HTTP headers for an API request.
func (p *OpenAI) buildHeaders() http.Header {
	headers := make(http.Header)

	headers.Set("Authorization", "Bearer "+p.config.APIKey.Expose())
	headers.Set("Content-Type", "application/json")

	if p.config.OrgID != "" {
		headers.Set("OpenAI-Organization", p.config.OrgID)
	}
	if p.config.ProjectID != "" {
		headers.Set("OpenAI-Project", p.config.ProjectID)
	}

	for key, values := range p.config.Headers {
		for _, v := range values {
			headers.Add(key, v)
		}
	}

	return headers
}

// Compile-time check that OpenAI implements ImageProvider.
var _ core.ImageProvider = (*OpenAI)(nil)
