package services

import (
	"errors"
	"regexp"
	"time"

	"github.com/Sibyl1122/promptGenerator/internal/database"
	"github.com/Sibyl1122/promptGenerator/internal/models"
	"github.com/Sibyl1122/promptGenerator/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	ActiveTemplatesCacheKey = "templates:active"
	TemplatesCacheDuration  = 1 * time.Hour
)

var defaultTemplates = []models.PromptTemplate{
	{
		Name:    "Simple Instruction",
		Content: "{{ instruction }}",
	},
	{
		Name:    "Task with Context",
		Content: "Context: {{ context }}\n\nTask: {{ task }}",
	},
	{
		Name:    "Role-Based",
		Content: "You are a {{ role }}.\n\n{{ instruction }}",
	},
}

// ListTemplates returns every active template, oldest first.
func ListTemplates() ([]models.PromptTemplate, error) {
	var templates []models.PromptTemplate
	if cacheGet(ActiveTemplatesCacheKey, &templates) {
		return templates, nil
	}

	templates = []models.PromptTemplate{}
	if err := database.DB.Where("status = ?", models.PromptTemplateStatusActive).
		Order("id asc").Find(&templates).Error; err != nil {
		return nil, err
	}

	cacheSet(ActiveTemplatesCacheKey, templates, TemplatesCacheDuration)
	return templates, nil
}

// GetTemplate retrieves an active template by ID
func GetTemplate(id uint) (*models.PromptTemplate, error) {
	var template models.PromptTemplate
	err := database.DB.Where("id = ? AND status = ?", id, models.PromptTemplateStatusActive).First(&template).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// CreateTemplate creates a new prompt template
func CreateTemplate(name, content string) (*models.PromptTemplate, error) {
	template := &models.PromptTemplate{
		Name:    name,
		Content: content,
		Status:  models.PromptTemplateStatusActive,
	}
	if err := database.DB.Create(template).Error; err != nil {
		return nil, err
	}

	cacheDel(ActiveTemplatesCacheKey)
	return template, nil
}

// UpdateTemplate changes the fields that are non-nil.
func UpdateTemplate(id uint, name, content *string) (*models.PromptTemplate, error) {
	template, err := GetTemplate(id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		template.Name = *name
	}
	if content != nil {
		template.Content = *content
	}

	if err := database.DB.Save(template).Error; err != nil {
		return nil, err
	}

	cacheDel(ActiveTemplatesCacheKey)
	return template, nil
}

// DeleteTemplate marks a template deleted.
func DeleteTemplate(id uint) error {
	result := database.DB.Model(&models.PromptTemplate{}).
		Where("id = ? AND status = ?", id, models.PromptTemplateStatusActive).
		Update("status", models.PromptTemplateStatusDeleted)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTemplateNotFound
	}

	cacheDel(ActiveTemplatesCacheKey)
	return nil
}

// SeedDefaultTemplates inserts the built-in templates that are not present
// yet, matched by name.
func SeedDefaultTemplates() error {
	created := 0
	for _, tpl := range defaultTemplates {
		var count int64
		if err := database.DB.Model(&models.PromptTemplate{}).
			Where("name = ? AND status = ?", tpl.Name, models.PromptTemplateStatusActive).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		row := tpl
		row.Status = models.PromptTemplateStatusActive
		if err := database.DB.Create(&row).Error; err != nil {
			return err
		}
		created++
	}

	if created > 0 {
		cacheDel(ActiveTemplatesCacheKey)
		logger.Log.Info("Seeded default templates", zap.Int("count", created))
	}
	return nil
}

var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// TemplateVariables lists the placeholder names of content in order of first
// appearance.
func TemplateVariables(content string) []string {
	seen := make(map[string]bool)
	vars := []string{}
	for _, m := range placeholderPattern.FindAllStringSubmatch(content, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			vars = append(vars, m[1])
		}
	}
	return vars
}

// RenderTemplate substitutes {{ name }} placeholders. Unknown names render
// as the empty string.
func RenderTemplate(content string, vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(content, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		return vars[name]
	})
}
