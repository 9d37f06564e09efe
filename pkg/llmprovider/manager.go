package llmprovider

import (
	"context"
	"fmt"

	"github.com/devkan/FirstAidVox/pkg/log"
)

// Manager walks providers in priority order, falling back on failure when enabled.
// A single provider is never retried.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Providers returns the providers in the order they are tried.
func (m *Manager) Providers() []Provider {
	return m.providers
}

// GenerateContent iterates through providers in priority order with fallback logic.
// Deadline failures are reported as ErrProviderTimeout.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	var lastErr error

	for i, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			if lastErr == nil {
				lastErr = classify(ctx, provider.Name(), err)
			}
			return nil, fmt.Errorf("%w after trying %d provider(s): %w", ErrAllProvidersFailed, i, lastErr)
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		lastErr = classify(ctx, provider.Name(), err)
		m.logFailure(ctx, provider, lastErr)

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Infof(ctx, "LLM generation successful: provider=%s model=%s input_tokens=%d output_tokens=%d",
		provider.Name(), provider.Model(), in, out)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warnf(ctx, "LLM generation failed: provider=%s model=%s error=%v",
		provider.Name(), provider.Model(), err)
}
