// Package testutil holds the database, cache and model fakes shared by
// package tests.
package testutil

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/Sibyl1122/promptGenerator/config"
	"github.com/Sibyl1122/promptGenerator/internal/database"
	"github.com/Sibyl1122/promptGenerator/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Config returns the settings tests run with.
func Config() *config.Config {
	return &config.Config{
		DefaultModel:       "gpt-3.5-turbo",
		DefaultTemperature: 0.7,
		DefaultMaxTokens:   1000,
		OpenAIBaseURL:      "https://api.openai.com/v1",
		LLMTimeoutSeconds:  5,
		CORSOrigins:        []string{"http://localhost:5173"},
	}
}

// SetupDB installs a migrated in-memory sqlite database as database.DB.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger.Log = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// Every connection to :memory: is a separate database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	database.DB = db
	database.RedisClient = nil

	t.Cleanup(func() {
		_ = sqlDB.Close()
		database.DB = nil
	})
	return db
}

// SetupRedis points database.RedisClient at a miniredis instance.
func SetupRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	mr := miniredis.RunT(t)
	database.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { database.RedisClient = nil })
	return mr
}

// FakeChatModel replies with fixed chunks and records the last call.
type FakeChatModel struct {
	Chunks []string
	// StreamErr is delivered after the chunks.
	StreamErr error
	// Err fails the call before anything is produced.
	Err error
	// Block, when set, holds the stream open after the chunks until it is
	// closed or the call's context ends.
	Block chan struct{}

	mu      sync.Mutex
	input   []*schema.Message
	options *model.Options
}

func (f *FakeChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	f.record(input, opts)
	if f.Err != nil {
		return nil, f.Err
	}
	return schema.AssistantMessage(strings.Join(f.Chunks, ""), nil), nil
}

func (f *FakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	f.record(input, opts)
	if f.Err != nil {
		return nil, f.Err
	}

	sr, sw := schema.Pipe[*schema.Message](len(f.Chunks) + 1)
	go func() {
		defer sw.Close()
		for _, c := range f.Chunks {
			if closed := sw.Send(schema.AssistantMessage(c, nil), nil); closed {
				return
			}
		}
		if f.Block != nil {
			select {
			case <-f.Block:
			case <-ctx.Done():
				sw.Send(nil, ctx.Err())
				return
			}
		}
		if f.StreamErr != nil {
			sw.Send(nil, f.StreamErr)
		}
	}()
	return sr, nil
}

func (f *FakeChatModel) record(input []*schema.Message, opts []model.Option) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.input = input
	f.options = model.GetCommonOptions(&model.Options{}, opts...)
}

// LastInput returns the messages of the most recent call.
func (f *FakeChatModel) LastInput() []*schema.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.input
}

// LastOptions returns the common options of the most recent call.
func (f *FakeChatModel) LastOptions() *model.Options {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.options
}
