package bootstrap

import (
	"context"
	"fmt"
	"log"

	"github.com/PavaniTiago/vior-insights-api/internal/config"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/repositories"
	"github.com/PavaniTiago/vior-insights-api/internal/infrastructure/cache"
	"github.com/PavaniTiago/vior-insights-api/internal/infrastructure/database"
	"github.com/PavaniTiago/vior-insights-api/internal/infrastructure/repository"
)

// Closer libera conexões abertas na inicialização
type Closer func() error

func noop() error { return nil }

// OpenSurveyRepository escolhe o backend das pesquisas conforme STORAGE_DRIVER
func OpenSurveyRepository(cfg *config.Config) (repositories.SurveyRepository, Closer, error) {
	switch cfg.StorageDriver {
	case config.DriverSupabase:
		client, err := repository.NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("✅ Supabase configurado (tabela %s)", cfg.SurveyTable)
		return repository.NewSupabaseSurveyRepository(client, cfg.SurveyTable), noop, nil

	case config.DriverPostgres:
		db, err := database.SetupDatabase(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		log.Println("✅ Postgres conectado e migrado")
		return repository.NewGormSurveyRepository(db), sqlDB.Close, nil

	case config.DriverMemory:
		log.Println("⚠️ Usando armazenamento em memória: os dados somem ao reiniciar")
		return repository.NewMemorySurveyRepository(), noop, nil
	}
	return nil, nil, fmt.Errorf("STORAGE_DRIVER desconhecido: %q", cfg.StorageDriver)
}

// OpenKeyValueStore usa o Redis quando REDIS_URL está definido; senão, um cache local
func OpenKeyValueStore(ctx context.Context, cfg *config.Config) (repositories.KeyValueStore, Closer, error) {
	if cfg.RedisURL == "" {
		local := cache.New()
		log.Println("⚠️ REDIS_URL não definido: rascunhos e sessões ficam na memória do processo")
		return local, local.Close, nil
	}

	client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	log.Println("✅ Redis conectado")
	return cache.NewRedisCache(client, cache.DefaultPrefix), client.Close, nil
}
