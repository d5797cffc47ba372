package services

import (
	"testing"

	"github.com/Sibyl1122/promptGenerator/internal/database"
	"github.com/Sibyl1122/promptGenerator/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetPrompt(t *testing.T) {
	setupTestDB(t)

	created, err := CreatePrompt("greeting", "Say hello", "")
	require.NoError(t, err)
	assert.Equal(t, 1, created.LatestVersion)
	assert.Equal(t, models.PromptSourceUser, created.Source)

	got, err := GetPrompt(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "greeting", got.Name)
	assert.Equal(t, "Say hello", got.Content)
}

func TestUpdatePromptAppendsVersion(t *testing.T) {
	setupTestDB(t)

	created, err := CreatePrompt("greeting", "v1", models.PromptSourceUser)
	require.NoError(t, err)

	updated, err := UpdatePrompt(created.ID, "v2", "")
	require.NoError(t, err)
	assert.Equal(t, 2, updated.LatestVersion)
	assert.Equal(t, "greeting", updated.Name)

	updated, err = UpdatePrompt(created.ID, "v3", "renamed")
	require.NoError(t, err)
	assert.Equal(t, 3, updated.LatestVersion)
	assert.Equal(t, "renamed", updated.Name)

	versions, err := ListPromptVersions(created.ID)
	require.NoError(t, err)
	require.Len(t, versions, 3)
	assert.Equal(t, 3, versions[0].Version)
	assert.Equal(t, "v3", versions[0].Content)
	assert.Equal(t, "v1", versions[2].Content)

	got, err := GetPrompt(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "v3", got.Content)
}

func TestDeletePromptIsSoft(t *testing.T) {
	setupTestDB(t)

	created, err := CreatePrompt("tmp", "x", models.PromptSourceUser)
	require.NoError(t, err)

	require.NoError(t, DeletePrompt(created.ID))

	_, err = GetPrompt(created.ID)
	assert.ErrorIs(t, err, ErrPromptNotFound)
	assert.ErrorIs(t, DeletePrompt(created.ID), ErrPromptNotFound)

	_, err = UpdatePrompt(created.ID, "y", "")
	assert.ErrorIs(t, err, ErrPromptNotFound)

	var stored models.Prompt
	require.NoError(t, database.DB.First(&stored, created.ID).Error)
	assert.Equal(t, models.PromptStatusDeleted, stored.Status)
}

func TestListPromptsCarriesLatestContent(t *testing.T) {
	setupTestDB(t)

	a, err := CreatePrompt("a", "a1", models.PromptSourceUser)
	require.NoError(t, err)
	b, err := CreatePrompt("b", "b1", models.PromptSourceGenerated)
	require.NoError(t, err)
	_, err = UpdatePrompt(a.ID, "a2", "")
	require.NoError(t, err)
	c, err := CreatePrompt("c", "c1", models.PromptSourceUser)
	require.NoError(t, err)
	require.NoError(t, DeletePrompt(c.ID))

	prompts, err := ListPrompts()
	require.NoError(t, err)
	require.Len(t, prompts, 2)

	byID := map[uint]models.Prompt{}
	for _, p := range prompts {
		byID[p.ID] = p
	}
	assert.Equal(t, "a2", byID[a.ID].Content)
	assert.Equal(t, "b1", byID[b.ID].Content)
}

func TestGetPromptUsesCache(t *testing.T) {
	setupTestDB(t)
	mr := setupTestRedis(t)

	created, err := CreatePrompt("cached", "one", models.PromptSourceUser)
	require.NoError(t, err)

	_, err = GetPrompt(created.ID)
	require.NoError(t, err)
	assert.True(t, mr.Exists(promptCacheKey(created.ID)))

	_, err = UpdatePrompt(created.ID, "two", "")
	require.NoError(t, err)
	assert.False(t, mr.Exists(promptCacheKey(created.ID)))

	got, err := GetPrompt(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "two", got.Content)

	require.NoError(t, DeletePrompt(created.ID))
	_, err = GetPrompt(created.ID)
	assert.ErrorIs(t, err, ErrPromptNotFound)
}

func TestRecordShotRequiresActivePrompt(t *testing.T) {
	setupTestDB(t)

	err := RecordShot(&models.PromptShot{PromptID: 99, Content: "x"})
	assert.ErrorIs(t, err, ErrPromptNotFound)

	created, err := CreatePrompt("p", "x", models.PromptSourceUser)
	require.NoError(t, err)
	require.NoError(t, RecordShot(&models.PromptShot{PromptID: created.ID, Content: "first"}))
	require.NoError(t, RecordShot(&models.PromptShot{PromptID: created.ID, Content: "second"}))

	shots, err := ListPromptShots(created.ID)
	require.NoError(t, err)
	require.Len(t, shots, 2)
	assert.Equal(t, "second", shots[0].Content)
}
