package main

import (
	"github.com/devkan/FirstAidVox/config"
	"github.com/devkan/FirstAidVox/pkg/log"
)

const providerMock = "mock"

// loadConfig reads the service configuration. Offline mode skips it entirely
// and runs against the scripted mock provider without retrieval or Places.
func loadConfig(offline bool) (*config.Config, error) {
	if offline {
		return &config.Config{
			LLM: config.LLMConfig{
				Providers: []config.ProviderConfig{{Name: providerMock, Enabled: true, Priority: 1}},
			},
		}, nil
	}
	return config.Load()
}

func newLogger(verbose bool) log.Logger {
	level := "error"
	if verbose {
		level = "debug"
	}
	return log.Init(log.ZapConfig{
		Level:    level,
		Mode:     log.ModeDevelopment,
		Encoding: log.EncodingConsole,
	})
}
