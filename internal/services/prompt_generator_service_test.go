package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Sibyl1122/promptGenerator/internal/models"
	"github.com/Sibyl1122/promptGenerator/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGenerationPrompt(t *testing.T) {
	setupTestDB(t)

	tpl, err := CreateTemplate("fmt", "## Role:\n## Goals:")
	require.NoError(t, err)

	zh, err := BuildGenerationPrompt("写诗", nil, models.LanguageChinese)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(zh, systemPromptChinese+"\n\n"))
	assert.True(t, strings.HasSuffix(zh, "用户需求: 写诗"))

	en, err := BuildGenerationPrompt("write poems", &tpl.ID, models.LanguageEnglish)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(en, systemPromptEnglish))
	assert.True(t, strings.HasSuffix(en, "Please create a prompt for me based on the following format:\n\n## Role:\n## Goals:\n\nUser requirement: write poems"))

	zhTpl, err := BuildGenerationPrompt("写诗", &tpl.ID, models.LanguageChinese)
	require.NoError(t, err)
	assert.Contains(t, zhTpl, "请根据以下格式为我创建一个提示词:\n\n## Role:\n## Goals:\n\n用户需求: 写诗")

	missing := uint(99)
	_, err = BuildGenerationPrompt("x", &missing, models.LanguageChinese)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestGeneratePrompt(t *testing.T) {
	setupTestDB(t)
	createDefaultModel(t)
	fake := &testutil.FakeChatModel{Chunks: []string{"## Role: poet"}}
	useFakeChatModel(t, fake)

	result, err := GeneratePrompt(context.Background(), GenerateInput{Description: "poetry helper"})
	require.NoError(t, err)
	assert.Equal(t, "## Role: poet", result.GeneratedPrompt)
	assert.Nil(t, result.SavedPrompt)
	assert.InDelta(t, 0.7, *fake.LastOptions().Temperature, 1e-6)
	assert.True(t, strings.HasSuffix(fake.LastInput()[0].Content, "用户需求: poetry helper"))

	temp := 0.2
	result, err = GeneratePrompt(context.Background(), GenerateInput{Description: "poetry helper", Temperature: &temp, SavePrompt: true})
	require.NoError(t, err)
	require.NotNil(t, result.SavedPrompt)
	assert.Equal(t, DefaultGeneratedPromptName, result.SavedPrompt.Name)
	assert.Equal(t, models.PromptSourceGenerated, result.SavedPrompt.Source)
	assert.InDelta(t, 0.2, *fake.LastOptions().Temperature, 1e-6)
}

func TestGeneratePromptEmptyOutput(t *testing.T) {
	setupTestDB(t)
	createDefaultModel(t)
	useFakeChatModel(t, &testutil.FakeChatModel{Chunks: []string{"  \n"}})

	_, err := GeneratePrompt(context.Background(), GenerateInput{Description: "x"})
	assert.ErrorIs(t, err, ErrEmptyGeneration)
}

func TestStreamGeneratePrompt(t *testing.T) {
	setupTestDB(t)
	createDefaultModel(t)
	useFakeChatModel(t, &testutil.FakeChatModel{Chunks: []string{"你", "", "好"}})

	var got []string
	full, saved, err := StreamGeneratePrompt(context.Background(),
		GenerateInput{Description: "poetry helper", SavePrompt: true, PromptName: "poem"},
		func(s string) error {
			got = append(got, s)
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, []string{"你", "好"}, got)
	assert.Equal(t, "你好", full)
	require.NotNil(t, saved)
	assert.Equal(t, "poem", saved.Name)

	stored, err := GetPrompt(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "你好", stored.Content)
}

func TestStreamGeneratePromptFailureDoesNotSave(t *testing.T) {
	setupTestDB(t)
	createDefaultModel(t)
	useFakeChatModel(t, &testutil.FakeChatModel{Chunks: []string{"part"}, StreamErr: errors.New("connection reset")})

	full, saved, err := StreamGeneratePrompt(context.Background(),
		GenerateInput{Description: "x", SavePrompt: true},
		func(string) error { return nil })
	assert.ErrorContains(t, err, "connection reset")
	assert.Equal(t, "part", full)
	assert.Nil(t, saved)

	prompts, err := ListPrompts()
	require.NoError(t, err)
	assert.Empty(t, prompts)
}

func TestStreamGeneratePromptStopsWhenEmitFails(t *testing.T) {
	setupTestDB(t)
	createDefaultModel(t)
	useFakeChatModel(t, &testutil.FakeChatModel{Chunks: []string{"a", "b", "c"}})

	stop := errors.New("client gone")
	calls := 0
	_, saved, err := StreamGeneratePrompt(context.Background(),
		GenerateInput{Description: "x", SavePrompt: true},
		func(string) error {
			calls++
			return stop
		})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
	assert.Nil(t, saved)
}
