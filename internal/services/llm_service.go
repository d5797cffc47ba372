package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Sibyl1122/promptGenerator/internal/models"
	"github.com/Sibyl1122/promptGenerator/pkg/logger"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// ExecuteInput describes one playground run.
type ExecuteInput struct {
	Prompt        string
	Model         string
	ModelConfigID *uint
	Temperature   *float64
	MaxTokens     int
	PromptID      *uint
}

// ExecuteResult is the model output together with the settings actually used.
type ExecuteResult struct {
	Result        string  `json:"result"`
	Model         string  `json:"model"`
	ModelConfigID uint    `json:"model_config_id"`
	Temperature   float64 `json:"temperature"`
	MaxTokens     int     `json:"max_tokens"`
	ShotID        uint    `json:"shot_id,omitempty"`
}

// completionRequest is a resolved model plus sampling settings.
type completionRequest struct {
	config      *models.ModelConfig
	temperature float64
	maxTokens   int
}

// resolveModel picks the config to run against: an explicit config id wins,
// then a config whose model id or name matches modelName, then the default
// config with modelName as a model override.
func resolveModel(configID *uint, modelName string) (*models.ModelConfig, error) {
	if configID != nil {
		return GetModel(*configID)
	}

	if modelName != "" {
		cfg, err := findModelByName(modelName)
		if err == nil {
			return cfg, nil
		}
		if !errors.Is(err, ErrModelNotFound) {
			return nil, err
		}
	}

	cfg, err := GetDefaultModel()
	if err != nil {
		return nil, err
	}
	if modelName != "" {
		override := *cfg
		override.ModelID = modelName
		return &override, nil
	}
	return cfg, nil
}

func newCompletionRequest(cfg *models.ModelConfig, temperature *float64, maxTokens int) completionRequest {
	settings := currentConfig()
	req := completionRequest{
		config:      cfg,
		temperature: settings.DefaultTemperature,
		maxTokens:   settings.DefaultMaxTokens,
	}
	if temperature != nil {
		req.temperature = *temperature
	}
	if maxTokens > 0 {
		req.maxTokens = maxTokens
	}
	return req
}

func (r completionRequest) options() []model.Option {
	return []model.Option{
		model.WithTemperature(float32(r.temperature)),
		model.WithMaxTokens(r.maxTokens),
	}
}

// complete sends prompt as a single user message and returns the reply text.
func complete(ctx context.Context, req completionRequest, prompt string) (string, error) {
	chatModel, err := ChatModelFactory(ctx, req.config)
	if err != nil {
		return "", fmt.Errorf("failed to create chat model: %w", err)
	}

	msg, err := chatModel.Generate(ctx, []*schema.Message{schema.UserMessage(prompt)}, req.options()...)
	if err != nil {
		return "", fmt.Errorf("model %s: %w", req.config.ModelID, err)
	}
	return msg.Content, nil
}

// streamComplete is complete with the reply delivered piece by piece. emit
// sees every non-empty fragment in order; an error from emit stops the
// stream. The full text is returned.
func streamComplete(ctx context.Context, req completionRequest, prompt string, emit func(string) error) (string, error) {
	chatModel, err := ChatModelFactory(ctx, req.config)
	if err != nil {
		return "", fmt.Errorf("failed to create chat model: %w", err)
	}

	reader, err := chatModel.Stream(ctx, []*schema.Message{schema.UserMessage(prompt)}, req.options()...)
	if err != nil {
		return "", fmt.Errorf("model %s: %w", req.config.ModelID, err)
	}
	defer reader.Close()

	var full []byte
	for {
		msg, err := reader.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return string(full), fmt.Errorf("model %s stream: %w", req.config.ModelID, err)
		}
		if msg == nil || msg.Content == "" {
			continue
		}
		full = append(full, msg.Content...)
		if err := emit(msg.Content); err != nil {
			return string(full), err
		}
	}
	return string(full), nil
}

// ExecutePrompt runs a composed prompt and, when PromptID is set, records
// the exchange as a shot of that prompt.
func ExecutePrompt(ctx context.Context, in ExecuteInput) (*ExecuteResult, error) {
	cfg, err := resolveModel(in.ModelConfigID, in.Model)
	if err != nil {
		return nil, err
	}
	req := newCompletionRequest(cfg, in.Temperature, in.MaxTokens)

	if in.PromptID != nil {
		if _, err := GetPrompt(*in.PromptID); err != nil {
			return nil, err
		}
	}

	output, err := complete(ctx, req, in.Prompt)
	if err != nil {
		logger.Log.Error("Prompt execution failed",
			zap.Uint("model_config_id", cfg.ID), zap.String("model", cfg.ModelID), zap.Error(err))
		return nil, err
	}

	result := &ExecuteResult{
		Result:        output,
		Model:         cfg.ModelID,
		ModelConfigID: cfg.ID,
		Temperature:   req.temperature,
		MaxTokens:     req.maxTokens,
	}

	if in.PromptID != nil {
		params, _ := json.Marshal(map[string]interface{}{
			"model_config_id": cfg.ID,
			"api_type":        cfg.APIType,
		})
		shot := &models.PromptShot{
			PromptID:    *in.PromptID,
			Content:     fmt.Sprintf("Input:\n%s\n\nOutput:\n%s", in.Prompt, output),
			Model:       cfg.ModelID,
			Temperature: req.temperature,
			MaxTokens:   req.maxTokens,
			Params:      datatypes.JSON(params),
		}
		if err := RecordShot(shot); err != nil {
			return nil, fmt.Errorf("failed to record shot: %w", err)
		}
		result.ShotID = shot.ID
	}

	return result, nil
}
