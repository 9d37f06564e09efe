package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Environment: EnvironmentConfig{Name: "development"},
		HTTPServer:  HTTPServerConfig{Port: 8080, Mode: "debug"},
		RateLimit:   RateLimitConfig{RequestsPerMin: 60},
		Upload:      UploadConfig{MaxImageSizeMB: 5, MaxImageDimension: 4096, MaxTextLength: 2000},
		LLM: LLMConfig{
			Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1, APIKey: "key"},
			},
		},
		Retrieval: RetrievalConfig{Provider: "none", MaxResults: 3},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{
			name:    "unknown environment",
			mutate:  func(c *Config) { c.Environment.Name = "qa" },
			wantErr: "invalid config",
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.LLM.Providers[0].Name = "claude" },
			wantErr: "invalid config",
		},
		{
			name:    "unknown retrieval provider",
			mutate:  func(c *Config) { c.Retrieval.Provider = "elastic" },
			wantErr: "invalid config",
		},
		{
			name:    "gemini without key",
			mutate:  func(c *Config) { c.LLM.Providers[0].APIKey = "" },
			wantErr: "api_key is required",
		},
		{
			name: "vertex without project",
			mutate: func(c *Config) {
				c.LLM.Providers[0] = ProviderConfig{Name: "vertex", Enabled: true, Priority: 1}
			},
			wantErr: "project_id is required",
		},
		{
			name: "duplicate priority",
			mutate: func(c *Config) {
				c.LLM.Providers = append(c.LLM.Providers, ProviderConfig{Name: "mock", Enabled: true, Priority: 1})
			},
			wantErr: "duplicate priority",
		},
		{
			name:    "nothing enabled",
			mutate:  func(c *Config) { c.LLM.Providers[0].Enabled = false },
			wantErr: "no enabled LLM providers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("FIRSTAIDVOX_TEST_SECRET", "s3cret")

	if got := expandEnvVar("${FIRSTAIDVOX_TEST_SECRET}"); got != "s3cret" {
		t.Errorf("expected s3cret, got %q", got)
	}
	if got := expandEnvVar("plain"); got != "plain" {
		t.Errorf("expected plain value untouched, got %q", got)
	}
	if got := expandEnvVar(""); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" http://a.test, ,http://b.test ")
	if len(got) != 2 || got[0] != "http://a.test" || got[1] != "http://b.test" {
		t.Errorf("unexpected split: %v", got)
	}
}
