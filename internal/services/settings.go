package services

import (
	"sync"

	"github.com/Sibyl1122/promptGenerator/config"
)

var (
	settingsMu sync.RWMutex
	settings   *config.Config
)

// Configure installs the application config used for LLM defaults and auth.
func Configure(cfg *config.Config) {
	settingsMu.Lock()
	settings = cfg
	settingsMu.Unlock()
}

// currentConfig returns the installed config, loading it from the
// environment on first use.
func currentConfig() *config.Config {
	settingsMu.RLock()
	cfg := settings
	settingsMu.RUnlock()
	if cfg != nil {
		return cfg
	}

	loaded, err := config.LoadConfig()
	if err != nil {
		loaded = &config.Config{
			DefaultModel:       "gpt-3.5-turbo",
			DefaultTemperature: 0.7,
			DefaultMaxTokens:   1000,
			OpenAIBaseURL:      "https://api.openai.com/v1",
			LLMTimeoutSeconds:  120,
		}
	}
	Configure(loaded)
	return loaded
}
