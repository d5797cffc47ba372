package services

import (
	"errors"

	"github.com/Sibyl1122/promptGenerator/internal/database"
	"github.com/Sibyl1122/promptGenerator/internal/models"
	"github.com/Sibyl1122/promptGenerator/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ModelConfigUpdate carries the optional fields of a partial update.
type ModelConfigUpdate struct {
	Name       *string
	ModelID    *string
	BaseURL    *string
	APIKey     *string
	APIType    *string
	APIVersion *string
	IsDefault  *bool
}

// ListModels returns active model configs, the default first.
func ListModels() ([]models.ModelConfig, error) {
	configs := []models.ModelConfig{}
	if err := database.DB.Where("status = ?", models.ModelConfigStatusActive).
		Order("is_default desc").Order("id asc").
		Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

// GetModel retrieves an active model config by ID
func GetModel(id uint) (*models.ModelConfig, error) {
	return findActiveModel(database.DB, id)
}

// CreateModel stores a new model config. When it is marked default every
// other config loses the flag in the same transaction.
func CreateModel(cfg *models.ModelConfig) (*models.ModelConfig, error) {
	if err := models.ValidateModelConfig(cfg); err != nil {
		return nil, err
	}
	cfg.ID = 0
	cfg.Status = models.ModelConfigStatusActive

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if cfg.IsDefault {
			if err := clearDefault(tx); err != nil {
				return err
			}
		}
		return tx.Create(cfg).Error
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// UpdateModel applies a partial update. Setting is_default clears it on every
// other config; clearing it on the current default is ignored so the console
// never ends up without a default.
func UpdateModel(id uint, in ModelConfigUpdate) (*models.ModelConfig, error) {
	var updated *models.ModelConfig

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		cfg, err := findActiveModel(tx, id)
		if err != nil {
			return err
		}

		if in.Name != nil {
			cfg.Name = *in.Name
		}
		if in.ModelID != nil {
			cfg.ModelID = *in.ModelID
		}
		if in.BaseURL != nil {
			cfg.BaseURL = *in.BaseURL
		}
		if in.APIKey != nil {
			cfg.APIKey = *in.APIKey
		}
		if in.APIType != nil {
			cfg.APIType = models.ModelAPIType(*in.APIType)
		}
		if in.APIVersion != nil {
			cfg.APIVersion = *in.APIVersion
		}
		if err := models.ValidateModelConfig(cfg); err != nil {
			return err
		}

		if in.IsDefault != nil && *in.IsDefault && !cfg.IsDefault {
			if err := clearDefault(tx); err != nil {
				return err
			}
			cfg.IsDefault = true
		}

		if err := tx.Save(cfg).Error; err != nil {
			return err
		}
		updated = cfg
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteModel soft deletes a model config. The default config cannot be
// deleted.
func DeleteModel(id uint) error {
	cfg, err := GetModel(id)
	if err != nil {
		return err
	}
	if cfg.IsDefault {
		return ErrDefaultModelDelete
	}

	return database.DB.Model(cfg).Update("status", models.ModelConfigStatusDeleted).Error
}

// SetDefaultModel makes id the only default config.
func SetDefaultModel(id uint) (*models.ModelConfig, error) {
	var cfg *models.ModelConfig

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		cfg, err = findActiveModel(tx, id)
		if err != nil {
			return err
		}
		if err := clearDefault(tx); err != nil {
			return err
		}
		cfg.IsDefault = true
		return tx.Model(cfg).Update("is_default", true).Error
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetDefaultModel returns the default config. With none stored and an OpenAI
// key configured, a "Default Model" config is created from the environment.
func GetDefaultModel() (*models.ModelConfig, error) {
	var cfg models.ModelConfig
	err := database.DB.Where("is_default = ? AND status = ?", true, models.ModelConfigStatusActive).First(&cfg).Error
	if err == nil {
		return &cfg, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings := currentConfig()
	if settings.OpenAIAPIKey == "" {
		return nil, ErrNoDefaultModel
	}

	created, err := CreateModel(&models.ModelConfig{
		Name:      "Default Model",
		ModelID:   settings.DefaultModel,
		BaseURL:   settings.OpenAIBaseURL,
		APIKey:    settings.OpenAIAPIKey,
		APIType:   models.ModelAPITypeOpenAI,
		IsDefault: true,
	})
	if err != nil {
		return nil, err
	}
	logger.Log.Info("Created default model config from environment",
		zap.Uint("id", created.ID), zap.String("model_id", created.ModelID))
	return created, nil
}

// findModelByName returns the active config whose model id or name matches,
// preferring the default.
func findModelByName(name string) (*models.ModelConfig, error) {
	var cfg models.ModelConfig
	err := database.DB.Where("status = ? AND (model_id = ? OR name = ?)", models.ModelConfigStatusActive, name, name).
		Order("is_default desc").Order("id asc").
		First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrModelNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func findActiveModel(db *gorm.DB, id uint) (*models.ModelConfig, error) {
	var cfg models.ModelConfig
	err := db.Where("id = ? AND status = ?", id, models.ModelConfigStatusActive).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrModelNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func clearDefault(tx *gorm.DB) error {
	return tx.Model(&models.ModelConfig{}).
		Where("is_default = ?", true).
		Update("is_default", false).Error
}
