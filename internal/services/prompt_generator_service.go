package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sibyl1122/promptGenerator/internal/models"
	"github.com/Sibyl1122/promptGenerator/pkg/logger"

	"go.uber.org/zap"
)

const DefaultGeneratedPromptName = "Generated Prompt"

// GenerateInput describes one prompt generation request.
type GenerateInput struct {
	Description string
	TemplateID  *uint
	Temperature *float64
	Language    models.Language
	SavePrompt  bool
	PromptName  string
}

// GenerateResult is a generated prompt and, when it was saved, its record.
type GenerateResult struct {
	GeneratedPrompt string         `json:"generated_prompt"`
	SavedPrompt     *models.Prompt `json:"saved_prompt,omitempty"`
}

// BuildGenerationPrompt assembles the system prompt for lang, the optional
// template used as the output format, and the user requirement.
func BuildGenerationPrompt(description string, templateID *uint, lang models.Language) (string, error) {
	var templateContent string
	if templateID != nil {
		tpl, err := GetTemplate(*templateID)
		if err != nil {
			return "", err
		}
		templateContent = tpl.Content
	}

	var b strings.Builder
	b.WriteString(SystemPrompt(lang))
	b.WriteString("\n\n")

	switch {
	case templateContent != "" && lang == models.LanguageEnglish:
		fmt.Fprintf(&b, "Please create a prompt for me based on the following format:\n\n%s\n\nUser requirement: %s", templateContent, description)
	case templateContent != "":
		fmt.Fprintf(&b, "请根据以下格式为我创建一个提示词:\n\n%s\n\n用户需求: %s", templateContent, description)
	case lang == models.LanguageEnglish:
		fmt.Fprintf(&b, "User requirement: %s", description)
	default:
		fmt.Fprintf(&b, "用户需求: %s", description)
	}

	return b.String(), nil
}

func prepareGeneration(in GenerateInput) (completionRequest, string, error) {
	if in.Language == "" {
		in.Language = models.LanguageChinese
	}

	prompt, err := BuildGenerationPrompt(in.Description, in.TemplateID, in.Language)
	if err != nil {
		return completionRequest{}, "", err
	}

	cfg, err := resolveModel(nil, "")
	if err != nil {
		return completionRequest{}, "", err
	}

	temperature := in.Temperature
	if temperature == nil {
		t := 0.7
		temperature = &t
	}
	return newCompletionRequest(cfg, temperature, 0), prompt, nil
}

func saveGenerated(in GenerateInput, content string) (*models.Prompt, error) {
	name := in.PromptName
	if name == "" {
		name = DefaultGeneratedPromptName
	}
	return CreatePrompt(name, content, models.PromptSourceGenerated)
}

// GeneratePrompt generates a prompt in one call to the default model.
func GeneratePrompt(ctx context.Context, in GenerateInput) (*GenerateResult, error) {
	req, prompt, err := prepareGeneration(in)
	if err != nil {
		return nil, err
	}

	generated, err := complete(ctx, req, prompt)
	if err != nil {
		logger.Log.Error("Prompt generation failed", zap.Error(err))
		return nil, err
	}
	if strings.TrimSpace(generated) == "" {
		return nil, ErrEmptyGeneration
	}

	result := &GenerateResult{GeneratedPrompt: generated}
	if in.SavePrompt {
		saved, err := saveGenerated(in, generated)
		if err != nil {
			return nil, fmt.Errorf("failed to save generated prompt: %w", err)
		}
		result.SavedPrompt = saved
	}
	return result, nil
}

// StreamGeneratePrompt generates a prompt and hands every fragment to emit
// as it arrives. Once the model finishes, the full text is saved unless
// SavePrompt is false. The saved prompt is nil when nothing was saved.
func StreamGeneratePrompt(ctx context.Context, in GenerateInput, emit func(string) error) (string, *models.Prompt, error) {
	req, prompt, err := prepareGeneration(in)
	if err != nil {
		return "", nil, err
	}

	full, err := streamComplete(ctx, req, prompt, emit)
	if err != nil {
		logger.Log.Warn("Streamed prompt generation stopped",
			zap.Int("received_bytes", len(full)), zap.Error(err))
		return full, nil, err
	}
	if strings.TrimSpace(full) == "" {
		return "", nil, ErrEmptyGeneration
	}

	if !in.SavePrompt {
		return full, nil, nil
	}
	saved, err := saveGenerated(in, full)
	if err != nil {
		return full, nil, fmt.Errorf("failed to save generated prompt: %w", err)
	}
	return full, saved, nil
}
