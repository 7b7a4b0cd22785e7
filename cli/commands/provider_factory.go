package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/petal-labs/easel/cli/config"
	"github.com/petal-labs/easel/cli/keystore"
	"github.com/petal-labs/easel/core"
	"github.com/petal-labs/easel/providers"
	_ "github.com/petal-labs/easel/providers/openai" // register "openai"
)

func defaultProviderFactory() ProviderFactory {
	return func(providerID, apiKey string, cfg *config.Config) (core.ImageProvider, error) {
		if !providers.IsRegistered(providerID) {
			return nil, fmt.Errorf("unsupported provider: %s (available: %v)", providerID, providers.List())
		}
		return providers.Create(providerID, providers.Settings{
			APIKey:  apiKey,
			BaseURL: providerBaseURL(cfg),
		})
	}
}

func providerBaseURL(cfg *config.Config) string {
	if cfg == nil {
		return ""
	}
	return cfg.BaseURL
}

// apiKeyEnvVar returns the fallback variable for a provider, e.g. OPENAI_API_KEY.
func apiKeyEnvVar(providerID string) string {
	return strings.ToUpper(strings.ReplaceAll(providerID, "-", "_")) + "_API_KEY"
}

// resolveAPIKey looks in the keystore first, then the environment.
func (a *App) resolveAPIKey() (core.Secret, error) {
	name := a.provider
	if a.cfg != nil && a.cfg.Provider == a.provider {
		name = a.cfg.KeyName()
	}

	ks, err := a.newKeystore()
	if err == nil {
		key, getErr := ks.Get(name)
		if getErr == nil && key != "" {
			return core.NewSecret(key), nil
		}
		var nf *keystore.ErrKeyNotFound
		if getErr != nil && !errors.As(getErr, &nf) {
			return core.Secret{}, fmt.Errorf("failed to read API key: %w", getErr)
		}
	} else {
		a.logger.Debug("keystore unavailable", "err", err)
	}

	envVar := apiKeyEnvVar(a.provider)
	if key := os.Getenv(envVar); key != "" {
		return core.NewSecret(key), nil
	}

	return core.Secret{}, fmt.Errorf("no API key for %s: run 'easel keys set %s' or set %s", a.provider, name, envVar)
}

// newProvider resolves credentials and constructs the configured provider.
func (a *App) newProvider() (core.ImageProvider, error) {
	if a.provider == "" {
		return nil, exitWithCode(ExitValidation, errors.New("provider required: use --provider flag or set provider in config"))
	}

	key, err := a.resolveAPIKey()
	if err != nil {
		return nil, exitWithCode(ExitValidation, err)
	}

	p, err := a.createProvider(a.provider, key.Expose(), a.cfg)
	if err != nil {
		return nil, exitWithCode(ExitValidation, err)
	}
	return p, nil
}
