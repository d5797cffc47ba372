package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Sibyl1122/promptGenerator/internal/models"
	"github.com/Sibyl1122/promptGenerator/internal/utils"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"google.golang.org/genai"
)

// ChatModelFactory builds a chat model for a stored config. Tests replace it
// with a fake.
var ChatModelFactory = NewChatModel

// NewChatModel builds the eino chat model matching cfg.APIType.
func NewChatModel(ctx context.Context, cfg *models.ModelConfig) (model.BaseChatModel, error) {
	settings := currentConfig()
	timeout := time.Duration(settings.LLMTimeoutSeconds) * time.Second
	httpClient := utils.NewHTTPClient(timeout)

	switch models.NormalizeAPIType(string(cfg.APIType)) {
	case models.ModelAPITypeOpenAI:
		return openai.NewChatModel(ctx, &openai.ChatModelConfig{
			APIKey:     cfg.APIKey,
			BaseURL:    cfg.BaseURL,
			Model:      cfg.ModelID,
			Timeout:    timeout,
			HTTPClient: httpClient,
		})
	case models.ModelAPITypeAzure:
		return openai.NewChatModel(ctx, &openai.ChatModelConfig{
			APIKey:     cfg.APIKey,
			BaseURL:    cfg.BaseURL,
			Model:      cfg.ModelID,
			ByAzure:    true,
			APIVersion: cfg.APIVersion,
			Timeout:    timeout,
			HTTPClient: httpClient,
		})
	case models.ModelAPITypeClaude:
		conf := &claude.Config{
			APIKey:    cfg.APIKey,
			Model:     cfg.ModelID,
			MaxTokens: settings.DefaultMaxTokens,
		}
		if cfg.BaseURL != "" {
			baseURL := cfg.BaseURL
			conf.BaseURL = &baseURL
		}
		return claude.NewChatModel(ctx, conf)
	case models.ModelAPITypeGemini:
		clientConfig := &genai.ClientConfig{
			APIKey:     cfg.APIKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: httpClient,
		}
		if cfg.BaseURL != "" {
			clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL, APIVersion: cfg.APIVersion}
		}
		client, err := genai.NewClient(ctx, clientConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return gemini.NewChatModel(ctx, &gemini.Config{
			Client: client,
			Model:  cfg.ModelID,
		})
	}
	return nil, fmt.Errorf("unsupported api type %q", cfg.APIType)
}
