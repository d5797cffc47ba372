package services

import (
	"context"
	"testing"

	"github.com/Sibyl1122/promptGenerator/internal/models"
	"github.com/Sibyl1122/promptGenerator/internal/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/cloudwego/eino/components/model"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	testutil.SetupDB(t)
	Configure(testutil.Config())
}

func setupTestRedis(t *testing.T) *miniredis.Miniredis {
	return testutil.SetupRedis(t)
}

// useFakeChatModel routes every model call to fake and returns a pointer
// that holds the config of the latest call.
func useFakeChatModel(t *testing.T, fake *testutil.FakeChatModel) **models.ModelConfig {
	t.Helper()

	var last *models.ModelConfig
	orig := ChatModelFactory
	ChatModelFactory = func(ctx context.Context, cfg *models.ModelConfig) (model.BaseChatModel, error) {
		last = cfg
		return fake, nil
	}
	t.Cleanup(func() { ChatModelFactory = orig })
	return &last
}

func createDefaultModel(t *testing.T) *models.ModelConfig {
	t.Helper()

	cfg, err := CreateModel(&models.ModelConfig{
		Name:      "gpt",
		ModelID:   "gpt-4o",
		BaseURL:   "https://api.openai.com/v1",
		APIKey:    "sk-test-1234567890",
		APIType:   models.ModelAPITypeOpenAI,
		IsDefault: true,
	})
	require.NoError(t, err)
	return cfg
}
