package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Sibyl1122/promptGenerator/internal/database"
	"github.com/Sibyl1122/promptGenerator/internal/models"

	"gorm.io/gorm"
)

const (
	PromptCacheKeyPrefix = "prompt:id:"
	PromptCacheDuration  = 24 * time.Hour
)

func promptCacheKey(id uint) string {
	return fmt.Sprintf("%s%d", PromptCacheKeyPrefix, id)
}

// CreatePrompt creates a prompt together with its first version.
func CreatePrompt(name, content string, source models.PromptSource) (*models.Prompt, error) {
	if source == "" {
		source = models.PromptSourceUser
	}

	prompt := &models.Prompt{
		Name:          name,
		LatestVersion: 1,
		Status:        models.PromptStatusActive,
		Source:        source,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(prompt).Error; err != nil {
			return err
		}
		return tx.Create(&models.PromptVersion{
			PromptID: prompt.ID,
			Version:  1,
			Content:  content,
			Creator:  "system",
			Status:   models.PromptStatusActive,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	prompt.Content = content
	return prompt, nil
}

// UpdatePrompt appends a new version holding content. The name is changed
// only when non-empty.
func UpdatePrompt(id uint, content, name string) (*models.Prompt, error) {
	var prompt models.Prompt

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := findActivePrompt(tx, id, &prompt); err != nil {
			return err
		}

		updates := map[string]interface{}{
			"latest_version": gorm.Expr("latest_version + ?", 1),
		}
		if name != "" {
			updates["name"] = name
		}
		if err := tx.Model(&prompt).Updates(updates).Error; err != nil {
			return err
		}
		// Re-read so the version number comes from the row, not from our copy.
		if err := tx.First(&prompt, id).Error; err != nil {
			return err
		}

		return tx.Create(&models.PromptVersion{
			PromptID: prompt.ID,
			Version:  prompt.LatestVersion,
			Content:  content,
			Creator:  "system",
			Status:   models.PromptStatusActive,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	cacheDel(promptCacheKey(id))

	prompt.Content = content
	return &prompt, nil
}

// DeletePrompt marks a prompt deleted. Its versions and shots are kept.
func DeletePrompt(id uint) error {
	result := database.DB.Model(&models.Prompt{}).
		Where("id = ? AND status = ?", id, models.PromptStatusActive).
		Update("status", models.PromptStatusDeleted)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPromptNotFound
	}

	cacheDel(promptCacheKey(id))
	return nil
}

// GetPrompt returns an active prompt with the content of its latest version.
func GetPrompt(id uint) (*models.Prompt, error) {
	var prompt models.Prompt
	if cacheGet(promptCacheKey(id), &prompt) {
		return &prompt, nil
	}

	if err := findActivePrompt(database.DB, id, &prompt); err != nil {
		return nil, err
	}

	var version models.PromptVersion
	err := database.DB.Where("prompt_id = ? AND version = ?", prompt.ID, prompt.LatestVersion).First(&version).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	prompt.Content = version.Content

	cacheSet(promptCacheKey(id), prompt, PromptCacheDuration)
	return &prompt, nil
}

// ListPrompts returns active prompts, newest first, with latest content.
func ListPrompts() ([]models.Prompt, error) {
	var prompts []models.Prompt
	if err := database.DB.Where("status = ?", models.PromptStatusActive).
		Order("created_at desc").Order("id desc").
		Find(&prompts).Error; err != nil {
		return nil, err
	}
	if len(prompts) == 0 {
		return []models.Prompt{}, nil
	}

	ids := make([]uint, len(prompts))
	for i, p := range prompts {
		ids[i] = p.ID
	}

	var latest []models.PromptVersion
	if err := database.DB.
		Where("prompt_id IN ?", ids).
		Where("version = (SELECT latest_version FROM prompts WHERE prompts.id = prompt_versions.prompt_id)").
		Find(&latest).Error; err != nil {
		return nil, err
	}

	content := make(map[uint]string, len(latest))
	for _, v := range latest {
		content[v.PromptID] = v.Content
	}
	for i := range prompts {
		prompts[i].Content = content[prompts[i].ID]
	}

	return prompts, nil
}

// ListPromptVersions returns every version of a prompt, newest first.
func ListPromptVersions(id uint) ([]models.PromptVersion, error) {
	var prompt models.Prompt
	if err := findActivePrompt(database.DB, id, &prompt); err != nil {
		return nil, err
	}

	versions := []models.PromptVersion{}
	if err := database.DB.Where("prompt_id = ?", id).Order("version desc").Find(&versions).Error; err != nil {
		return nil, err
	}
	return versions, nil
}

// ListPromptShots returns the execution history of a prompt, newest first.
func ListPromptShots(id uint) ([]models.PromptShot, error) {
	var prompt models.Prompt
	if err := findActivePrompt(database.DB, id, &prompt); err != nil {
		return nil, err
	}

	shots := []models.PromptShot{}
	if err := database.DB.Where("prompt_id = ?", id).Order("created_at desc").Order("id desc").Find(&shots).Error; err != nil {
		return nil, err
	}
	return shots, nil
}

// RecordShot appends an execution record to an active prompt.
func RecordShot(shot *models.PromptShot) error {
	var prompt models.Prompt
	if err := findActivePrompt(database.DB, shot.PromptID, &prompt); err != nil {
		return err
	}
	return database.DB.Create(shot).Error
}

func findActivePrompt(db *gorm.DB, id uint, prompt *models.Prompt) error {
	err := db.Where("id = ? AND status = ?", id, models.PromptStatusActive).First(prompt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPromptNotFound
	}
	return err
}
