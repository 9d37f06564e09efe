package llmprovider

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/elliotchance/pie/v2"

	"github.com/devkan/FirstAidVox/config"
	"github.com/devkan/FirstAidVox/pkg/gemini"
	"github.com/devkan/FirstAidVox/pkg/log"
)

// InitializeProviders builds the enabled providers in ascending priority order.
// A provider that fails to build is logged and left out of the chain.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, errors.New("llmprovider: nil LLM config")
	}

	enabled := pie.Filter(cfg.Providers, func(p config.ProviderConfig) bool { return p.Enabled })
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	slices.SortStableFunc(enabled, func(a, b config.ProviderConfig) int {
		return cmp.Compare(a.Priority, b.Priority)
	})

	var (
		chain    []Provider
		failures []error
	)
	for _, pc := range enabled {
		p, err := createProvider(ctx, pc)
		if err != nil {
			err = fmt.Errorf("%s (priority %d): %w", pc.Name, pc.Priority, err)
			l.Warnf(ctx, "llmprovider.InitializeProviders: skip %v", err)
			failures = append(failures, err)
			continue
		}
		chain = append(chain, p)
	}

	if len(chain) == 0 {
		return nil, fmt.Errorf("llmprovider: no provider could be built: %w", errors.Join(failures...))
	}
	if len(failures) > 0 {
		l.Warnf(ctx, "llmprovider.InitializeProviders: %d of %d provider(s) skipped", len(failures), len(enabled))
	}
	return chain, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(ctx context.Context, cfg config.ProviderConfig) (Provider, error) {
	switch cfg.Name {
	case "vertex":
		return NewVertexAdapter(ctx, VertexConfig{
			ProjectID:       cfg.ProjectID,
			Location:        cfg.Location,
			Model:           cfg.Model,
			CredentialsPath: cfg.CredentialsPath,
		})

	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			APIURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case "openai":
		return NewOpenAIAdapter(OpenAIConfig{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
		})

	case "mock":
		return NewMockProvider(), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
