package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/PavaniTiago/vior-insights-api/internal/config"
	"github.com/PavaniTiago/vior-insights-api/internal/infrastructure/cache"
	"github.com/PavaniTiago/vior-insights-api/internal/infrastructure/repository"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSurveyRepository(t *testing.T) {
	repo, closeRepo, err := OpenSurveyRepository(&config.Config{StorageDriver: config.DriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &repository.MemorySurveyRepository{}, repo)
	assert.NoError(t, closeRepo())

	repo, closeRepo, err = OpenSurveyRepository(&config.Config{
		StorageDriver:   config.DriverSupabase,
		SupabaseURL:     "http://127.0.0.1:1",
		SupabaseAnonKey: "anon",
		SurveyTable:     "surveys",
	})
	require.NoError(t, err)
	assert.IsType(t, &repository.SupabaseSurveyRepository{}, repo)
	assert.NoError(t, closeRepo())

	_, _, err = OpenSurveyRepository(&config.Config{StorageDriver: "mongo"})
	assert.Error(t, err)
}

func TestOpenKeyValueStoreLocal(t *testing.T) {
	kv, closeKV, err := OpenKeyValueStore(context.Background(), &config.Config{})
	require.NoError(t, err)
	assert.IsType(t, &cache.Cache{}, kv)
	assert.NoError(t, closeKV())
}

func TestOpenKeyValueStoreRedis(t *testing.T) {
	server := miniredis.RunT(t)
	ctx := context.Background()

	kv, closeKV, err := OpenKeyValueStore(ctx, &config.Config{RedisURL: "redis://" + server.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeKV() })

	require.NoError(t, kv.Set(ctx, "draft:x", []byte("{}"), time.Minute))
	assert.True(t, server.Exists(cache.DefaultPrefix+"draft:x"))
}
