package models

import (
	"time"

	"gorm.io/datatypes"
)

// PromptShot records one execution of a prompt against a model. Rows are
// never updated.
type PromptShot struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	PromptID    uint           `gorm:"index;not null" json:"prompt_id"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	Model       string         `gorm:"size:255" json:"model"`
	Temperature float64        `json:"temperature"`
	MaxTokens   int            `json:"max_tokens"`
	Params      datatypes.JSON `gorm:"type:json" json:"params,omitempty" swaggertype:"object"`
	CreatedAt   time.Time      `json:"created_time"`
}

// TableName keeps the table name used by earlier deployments.
func (PromptShot) TableName() string {
	return "prompt_shots"
}
