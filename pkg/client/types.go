package client

import (
	"encoding/json"
	"time"
)

type Prompt struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	LatestVersion int       `json:"latest_version"`
	Status        string    `json:"status"`
	Source        string    `json:"source"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_time"`
	UpdatedAt     time.Time `json:"updated_time"`
}

type PromptVersion struct {
	ID        uint      `json:"id"`
	PromptID  uint      `json:"prompt_id"`
	Version   int       `json:"version"`
	Content   string    `json:"content"`
	Creator   string    `json:"creator"`
	CreatedAt time.Time `json:"created_time"`
}

// Shot is one recorded execution of a prompt.
type Shot struct {
	ID          uint            `json:"id"`
	PromptID    uint            `json:"prompt_id"`
	Content     string          `json:"content"`
	Model       string          `json:"model"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens"`
	Params      json.RawMessage `json:"params,omitempty"`
	CreatedAt   time.Time       `json:"created_time"`
}

type Template struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	Variables []string  `json:"variables"`
	CreatedAt time.Time `json:"created_time"`
	UpdatedAt time.Time `json:"updated_time"`
}

// ModelConfig as returned by the backend. APIKey is always masked.
type ModelConfig struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	ModelID    string    `json:"model_id"`
	BaseURL    string    `json:"base_url"`
	APIKey     string    `json:"api_key"`
	APIType    string    `json:"api_type"`
	APIVersion string    `json:"api_version"`
	IsDefault  bool      `json:"is_default"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_time"`
	UpdatedAt  time.Time `json:"updated_time"`
}

type CreateModelRequest struct {
	Name       string `json:"name"`
	ModelID    string `json:"model_id"`
	BaseURL    string `json:"base_url,omitempty"`
	APIKey     string `json:"api_key,omitempty"`
	APIType    string `json:"api_type,omitempty"`
	APIVersion string `json:"api_version,omitempty"`
	IsDefault  bool   `json:"is_default"`
}

// UpdateModelRequest changes only the fields that are set.
type UpdateModelRequest struct {
	Name       *string `json:"name,omitempty"`
	ModelID    *string `json:"model_id,omitempty"`
	BaseURL    *string `json:"base_url,omitempty"`
	APIKey     *string `json:"api_key,omitempty"`
	APIType    *string `json:"api_type,omitempty"`
	APIVersion *string `json:"api_version,omitempty"`
	IsDefault  *bool   `json:"is_default,omitempty"`
}

type ExecuteRequest struct {
	Prompt        string   `json:"prompt"`
	Model         string   `json:"model,omitempty"`
	ModelConfigID *uint    `json:"model_config_id,omitempty"`
	Temperature   *float64 `json:"temperature,omitempty"`
	MaxTokens     int      `json:"max_tokens,omitempty"`
	PromptID      *uint    `json:"prompt_id,omitempty"`
}

type ExecuteResult struct {
	Result        string  `json:"result"`
	Model         string  `json:"model"`
	ModelConfigID uint    `json:"model_config_id"`
	Temperature   float64 `json:"temperature"`
	MaxTokens     int     `json:"max_tokens"`
	ShotID        uint    `json:"shot_id,omitempty"`
}

type GenerateResult struct {
	GeneratedPrompt string  `json:"generated_prompt"`
	SavedPrompt     *Prompt `json:"saved_prompt,omitempty"`
}

type Token struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// envelope is the JSON body of every non-streaming response.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}
