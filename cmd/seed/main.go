package main

import (
	"context"
	"flag"
	"log"

	"github.com/PavaniTiago/vior-insights-api/internal/application/seed"
	"github.com/PavaniTiago/vior-insights-api/internal/application/usecases"
	"github.com/PavaniTiago/vior-insights-api/internal/config"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/catalog"
	"github.com/PavaniTiago/vior-insights-api/internal/infrastructure/bootstrap"

	"github.com/joho/godotenv"
)

func main() {
	count := flag.Int("n", seed.DefaultCount, "quantidade de participantes fictícios")
	randSeed := flag.Uint64("seed", 1, "semente do gerador")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Error loading config: %v", err)
	}
	if cfg.StorageDriver == config.DriverMemory {
		log.Fatal("❌ STORAGE_DRIVER=memory não persiste dados; use supabase ou postgres")
	}

	repo, closeRepo, err := bootstrap.OpenSurveyRepository(cfg)
	if err != nil {
		log.Fatalf("❌ Error setting up storage: %v", err)
	}
	defer closeRepo()

	submission := usecases.NewSubmissionUseCase(repo, cfg.CouponPrefix)
	generator := seed.NewGenerator(catalog.Default(), *randSeed)

	log.Printf("🌱 Inserindo %d participantes fictícios...", *count)
	summary, err := generator.Run(context.Background(), submission, *count)
	if err != nil {
		log.Fatalf("❌ Error seeding: %v", err)
	}
	log.Printf("✅ %d gravados, %d já existiam", summary.Accepted, summary.AlreadyParticipated)
}
