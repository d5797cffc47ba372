package models

import "time"

type PromptTemplateStatus string

const (
	PromptTemplateStatusActive  PromptTemplateStatus = "active"
	PromptTemplateStatusDeleted PromptTemplateStatus = "deleted"
)

// PromptTemplate is a starter prompt body used to shape generated prompts.
type PromptTemplate struct {
	ID        uint                 `gorm:"primarykey" json:"id"`
	Name      string               `gorm:"size:255;index;not null" json:"name"`
	Content   string               `gorm:"type:text;not null" json:"content"`
	Status    PromptTemplateStatus `gorm:"size:50;index;not null;default:'active'" json:"status"`
	CreatedAt time.Time            `json:"created_time"`
	UpdatedAt time.Time            `json:"updated_time"`
}
