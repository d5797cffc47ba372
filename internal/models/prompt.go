package models

import "time"

type PromptStatus string

const (
	PromptStatusActive  PromptStatus = "active"
	PromptStatusDeleted PromptStatus = "deleted"
)

type PromptSource string

const (
	PromptSourceUser      PromptSource = "user"
	PromptSourceGenerated PromptSource = "generated"
)

// Prompt is a named, versioned prompt. Its text lives in PromptVersion rows;
// Content is filled from the latest version when the prompt is read.
type Prompt struct {
	ID            uint         `gorm:"primarykey" json:"id"`
	Name          string       `gorm:"size:255;not null" json:"name"`
	LatestVersion int          `gorm:"not null;default:1" json:"latest_version"`
	Status        PromptStatus `gorm:"size:50;index;not null;default:'active'" json:"status"`
	Source        PromptSource `gorm:"size:50;not null;default:'user'" json:"source"`
	Content       string       `gorm:"-" json:"content"`
	CreatedAt     time.Time    `json:"created_time"`
	UpdatedAt     time.Time    `json:"updated_time"`
}

// PromptVersion is an append-only snapshot of a prompt's content.
type PromptVersion struct {
	ID        uint         `gorm:"primarykey" json:"id"`
	PromptID  uint         `gorm:"uniqueIndex:idx_prompt_version;not null" json:"prompt_id"`
	Version   int          `gorm:"uniqueIndex:idx_prompt_version;not null" json:"version"`
	Content   string       `gorm:"type:text;not null" json:"content"`
	Creator   string       `gorm:"size:255;default:'system'" json:"creator"`
	Status    PromptStatus `gorm:"size:50;not null;default:'active'" json:"status"`
	CreatedAt time.Time    `json:"created_time"`
	UpdatedAt time.Time    `json:"updated_time"`
}
