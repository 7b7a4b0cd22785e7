package openai

import (
	"github.com/petal-labs/easel/core"
	"github.com/petal-labs/easel/providers"
)

func init() {
	providers.Register(ProviderID, func(s providers.Settings) core.ImageProvider {
		return New(s.APIKey, WithBaseURL(s.BaseURL), WithHTTPClient(s.HTTPClient))
	})
}
