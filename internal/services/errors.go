package services

import "errors"

var (
	ErrPromptNotFound     = errors.New("prompt not found")
	ErrTemplateNotFound   = errors.New("template not found")
	ErrModelNotFound      = errors.New("model not found")
	ErrDefaultModelDelete = errors.New("the default model cannot be deleted; set another model as default first")
	ErrNoDefaultModel     = errors.New("no default model configured")
	ErrEmptyGeneration    = errors.New("the generated prompt is empty, please try again")
	ErrAuthDisabled       = errors.New("console authentication is not enabled")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCacheDisabled      = errors.New("redis is not configured")
)
