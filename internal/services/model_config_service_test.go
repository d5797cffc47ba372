package services

import (
	"testing"

	"github.com/Sibyl1122/promptGenerator/config"
	"github.com/Sibyl1122/promptGenerator/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countDefaults(t *testing.T) int {
	t.Helper()
	configs, err := ListModels()
	require.NoError(t, err)
	n := 0
	for _, c := range configs {
		if c.IsDefault {
			n++
		}
	}
	return n
}

func TestCreateModelMovesDefault(t *testing.T) {
	setupTestDB(t)

	first := createDefaultModel(t)
	second, err := CreateModel(&models.ModelConfig{Name: "claude", ModelID: "claude-3-5-sonnet", APIType: "anthropic", IsDefault: true})
	require.NoError(t, err)
	assert.Equal(t, models.ModelAPITypeClaude, second.APIType)

	assert.Equal(t, 1, countDefaults(t))

	got, err := GetModel(first.ID)
	require.NoError(t, err)
	assert.False(t, got.IsDefault)

	def, err := GetDefaultModel()
	require.NoError(t, err)
	assert.Equal(t, second.ID, def.ID)
}

func TestCreateModelRejectsInvalid(t *testing.T) {
	setupTestDB(t)

	_, err := CreateModel(&models.ModelConfig{Name: "az", ModelID: "gpt-4o", APIType: "azure"})
	assert.Error(t, err)
}

func TestSetDefaultModelLeavesExactlyOne(t *testing.T) {
	setupTestDB(t)

	createDefaultModel(t)
	other, err := CreateModel(&models.ModelConfig{Name: "mini", ModelID: "gpt-4o-mini"})
	require.NoError(t, err)

	_, err = SetDefaultModel(other.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, countDefaults(t))

	configs, err := ListModels()
	require.NoError(t, err)
	assert.Equal(t, other.ID, configs[0].ID)
	assert.True(t, configs[0].IsDefault)

	_, err = SetDefaultModel(999)
	assert.ErrorIs(t, err, ErrModelNotFound)
	assert.Equal(t, 1, countDefaults(t))
}

func TestUpdateModel(t *testing.T) {
	setupTestDB(t)

	def := createDefaultModel(t)
	other, err := CreateModel(&models.ModelConfig{Name: "mini", ModelID: "gpt-4o-mini"})
	require.NoError(t, err)

	off := false
	updated, err := UpdateModel(def.ID, ModelConfigUpdate{IsDefault: &off})
	require.NoError(t, err)
	assert.True(t, updated.IsDefault)

	on := true
	name := "renamed"
	updated, err = UpdateModel(other.ID, ModelConfigUpdate{IsDefault: &on, Name: &name})
	require.NoError(t, err)
	assert.True(t, updated.IsDefault)
	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, "gpt-4o-mini", updated.ModelID)
	assert.Equal(t, 1, countDefaults(t))

	badType := "cohere"
	_, err = UpdateModel(other.ID, ModelConfigUpdate{APIType: &badType})
	assert.Error(t, err)

	_, err = UpdateModel(999, ModelConfigUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrModelNotFound)
}

func TestDeleteModel(t *testing.T) {
	setupTestDB(t)

	def := createDefaultModel(t)
	other, err := CreateModel(&models.ModelConfig{Name: "mini", ModelID: "gpt-4o-mini"})
	require.NoError(t, err)

	assert.ErrorIs(t, DeleteModel(def.ID), ErrDefaultModelDelete)

	require.NoError(t, DeleteModel(other.ID))
	_, err = GetModel(other.ID)
	assert.ErrorIs(t, err, ErrModelNotFound)

	configs, err := ListModels()
	require.NoError(t, err)
	assert.Len(t, configs, 1)
}

func TestGetDefaultModelFromEnvironment(t *testing.T) {
	setupTestDB(t)

	_, err := GetDefaultModel()
	assert.ErrorIs(t, err, ErrNoDefaultModel)

	Configure(&config.Config{
		DefaultModel:     "gpt-3.5-turbo",
		DefaultMaxTokens: 1000,
		OpenAIAPIKey:     "sk-env-key-123456",
		OpenAIBaseURL:    "https://api.openai.com/v1",
	})

	cfg, err := GetDefaultModel()
	require.NoError(t, err)
	assert.Equal(t, "Default Model", cfg.Name)
	assert.Equal(t, "gpt-3.5-turbo", cfg.ModelID)
	assert.True(t, cfg.IsDefault)

	again, err := GetDefaultModel()
	require.NoError(t, err)
	assert.Equal(t, cfg.ID, again.ID)
}
