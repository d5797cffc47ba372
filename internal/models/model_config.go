package models

import (
	"encoding/json"
	"strings"
	"time"
)

type ModelAPIType string

const (
	ModelAPITypeOpenAI ModelAPIType = "openai"
	ModelAPITypeAzure  ModelAPIType = "azure"
	ModelAPITypeClaude ModelAPIType = "claude"
	ModelAPITypeGemini ModelAPIType = "gemini"
)

type ModelConfigStatus string

const (
	ModelConfigStatusActive  ModelConfigStatus = "active"
	ModelConfigStatusDeleted ModelConfigStatus = "deleted"
)

// NormalizeAPIType maps legacy and alias spellings onto the supported set.
// Unknown values are returned lower-cased so validation can reject them.
func NormalizeAPIType(s string) ModelAPIType {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "", "open_ai":
		return ModelAPITypeOpenAI
	case "azure_openai", "azure-openai":
		return ModelAPITypeAzure
	case "anthropic":
		return ModelAPITypeClaude
	}
	return ModelAPIType(v)
}

// ModelConfig holds the connection details of one language-model endpoint.
// At most one active row has IsDefault set; the services layer keeps that
// invariant inside a transaction.
type ModelConfig struct {
	ID         uint              `gorm:"primarykey" json:"id"`
	Name       string            `gorm:"size:255;not null" json:"name" validate:"required,max=255"`
	ModelID    string            `gorm:"size:255;not null" json:"model_id" validate:"required,max=255"`
	BaseURL    string            `gorm:"size:255;not null" json:"base_url" validate:"omitempty,url"`
	APIKey     string            `gorm:"size:255" json:"api_key"`
	APIType    ModelAPIType      `gorm:"size:50;default:'openai'" json:"api_type" validate:"required,oneof=openai azure claude gemini"`
	APIVersion string            `gorm:"size:50;default:''" json:"api_version" validate:"required_if=APIType azure"`
	IsDefault  bool              `gorm:"index;default:false" json:"is_default"`
	Status     ModelConfigStatus `gorm:"size:50;index;not null;default:'active'" json:"status"`
	CreatedAt  time.Time         `json:"created_time"`
	UpdatedAt  time.Time         `json:"updated_time"`
}

// MaskAPIKey keeps the first and last four characters of a credential.
func MaskAPIKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return "*******"
	}
	return key[:4] + "*******" + key[len(key)-4:]
}

// MarshalJSON never exposes the raw credential.
func (m ModelConfig) MarshalJSON() ([]byte, error) {
	type alias ModelConfig
	out := alias(m)
	out.APIKey = MaskAPIKey(m.APIKey)
	return json.Marshal(out)
}
