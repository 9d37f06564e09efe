package llmprovider

import (
	"context"
	"errors"
	"testing"

	"github.com/devkan/FirstAidVox/config"
)

func TestInitializeProviders(t *testing.T) {
	ctx := context.Background()

	t.Run("sorted by priority, disabled skipped", func(t *testing.T) {
		providers, err := InitializeProviders(ctx, &config.LLMConfig{
			Providers: []config.ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 2, APIKey: "k", Model: "gemini-test"},
				{Name: "mock", Enabled: true, Priority: 1},
				{Name: "openai", Enabled: false, Priority: 3, APIKey: "k"},
			},
		}, &mockLogger{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(providers) != 2 {
			t.Fatalf("expected 2 providers, got %d", len(providers))
		}
		if providers[0].Name() != "mock" || providers[1].Name() != "gemini" {
			t.Errorf("unexpected order: %s, %s", providers[0].Name(), providers[1].Name())
		}
	})

	t.Run("broken provider skipped", func(t *testing.T) {
		l := &mockLogger{}
		providers, err := InitializeProviders(ctx, &config.LLMConfig{
			Providers: []config.ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1},
				{Name: "mock", Enabled: true, Priority: 2},
			},
		}, l)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(providers) != 1 || providers[0].Name() != "mock" {
			t.Errorf("expected only mock provider, got %d", len(providers))
		}
		if len(l.warnMessages) == 0 {
			t.Errorf("expected a warning for the broken provider")
		}
	})

	t.Run("nothing enabled", func(t *testing.T) {
		_, err := InitializeProviders(ctx, &config.LLMConfig{
			Providers: []config.ProviderConfig{{Name: "mock"}},
		}, &mockLogger{})
		if !errors.Is(err, ErrNoProvidersConfigured) {
			t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := InitializeProviders(ctx, &config.LLMConfig{
			Providers: []config.ProviderConfig{{Name: "claude", Enabled: true, Priority: 1}},
		}, &mockLogger{})
		if err == nil {
			t.Fatalf("expected error for unknown provider")
		}
	})
}
