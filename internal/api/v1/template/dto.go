package template

import (
	"github.com/Sibyl1122/promptGenerator/internal/models"
	"github.com/Sibyl1122/promptGenerator/internal/services"
)

type CreateTemplateRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Content string `json:"content" binding:"required"`
}

// UpdateTemplateRequest changes only the fields that are present.
type UpdateTemplateRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=255"`
	Content *string `json:"content" binding:"omitempty,min=1"`
}

type RenderTemplateRequest struct {
	Variables map[string]string `json:"variables"`
}

type RenderTemplateResponse struct {
	Content string `json:"content"`
}

// TemplateResponse is a template plus the placeholder names it uses.
type TemplateResponse struct {
	models.PromptTemplate
	Variables []string `json:"variables"`
}

func newTemplateResponse(t *models.PromptTemplate) TemplateResponse {
	return TemplateResponse{PromptTemplate: *t, Variables: services.TemplateVariables(t.Content)}
}
