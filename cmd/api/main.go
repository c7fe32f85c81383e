package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PavaniTiago/vior-insights-api/internal/application/draw"
	"github.com/PavaniTiago/vior-insights-api/internal/application/redemption"
	"github.com/PavaniTiago/vior-insights-api/internal/application/usecases"
	"github.com/PavaniTiago/vior-insights-api/internal/config"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/catalog"
	"github.com/PavaniTiago/vior-insights-api/internal/infrastructure/ai"
	"github.com/PavaniTiago/vior-insights-api/internal/infrastructure/bootstrap"
	"github.com/PavaniTiago/vior-insights-api/internal/interfaces/http/middleware"
	"github.com/PavaniTiago/vior-insights-api/internal/interfaces/http/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Error loading config: %v", err)
	}

	ctx := context.Background()

	surveyRepo, closeRepo, err := bootstrap.OpenSurveyRepository(cfg)
	if err != nil {
		log.Fatalf("❌ Error setting up storage: %v", err)
	}
	defer closeRepo()

	kv, closeKV, err := bootstrap.OpenKeyValueStore(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Error setting up session store: %v", err)
	}
	defer closeKV()

	summarizer := ai.NewGeminiSummarizer(ai.Config{
		APIKey:  cfg.GeminiAPIKey,
		BaseURL: cfg.GeminiBaseURL,
		Model:   cfg.GeminiModel,
		Timeout: cfg.AITimeout,
	})
	if !summarizer.IsEnabled() {
		log.Println("⚠️ GEMINI_API_KEY não definida: insights da IA desativados")
	}

	// Use Cases
	registry := catalog.Default()
	submissionUseCase := usecases.NewSubmissionUseCase(surveyRepo, cfg.CouponPrefix)
	intakeUseCase := usecases.NewIntakeUseCase(registry, kv, submissionUseCase, cfg.DraftTTL)
	dashboardUseCase := usecases.NewDashboardUseCase(surveyRepo, registry, draw.NewDrawer(nil, draw.DefaultFrames), redemption.NewTracker(), summarizer)
	adminUseCase := usecases.NewAdminUseCase(cfg.AdminPIN, cfg.SigningSecret(), cfg.AdminSessionTTL, kv)

	// Configure Fiber for better performance
	app := fiber.New(fiber.Config{
		AppName: "Vior Insights API",
		// Increase concurrency for better performance
		Concurrency: 256 * 1024,
		// Desabilitado modo Prefork pois causa instabilidade no container
		Prefork: false,
		// Set reasonable body limit
		BodyLimit: 10 * 1024 * 1024, // 10MB
		// Configure server for better performance
		ReadTimeout: 5 * time.Second,
		// A análise da IA pode levar até AI_TIMEOUT_MS
		WriteTimeout: cfg.AITimeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app, cfg.AllowedOrigins)

	// Setup routes
	routes.SetupRoutes(app, routes.Dependencies{
		Registry:   registry,
		Intake:     intakeUseCase,
		Dashboard:  dashboardUseCase,
		Admin:      adminUseCase,
		PublicURL:  cfg.PublicURL,
		StorageTag: cfg.StorageDriver,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("❌ Error during shutdown: %v", err)
		}
	}()

	// Start server
	log.Printf("🚀 Server is running on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("❌ Server stopped: %v", err)
	}
}
