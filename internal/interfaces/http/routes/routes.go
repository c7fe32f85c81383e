package routes

import (
	"github.com/PavaniTiago/vior-insights-api/internal/application/usecases"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/catalog"
	"github.com/PavaniTiago/vior-insights-api/internal/interfaces/http/handlers"
	"github.com/PavaniTiago/vior-insights-api/internal/interfaces/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
)

// Dependencies reúne os casos de uso montados em cmd/api
type Dependencies struct {
	Registry   *catalog.Registry
	Intake     *usecases.IntakeUseCase
	Dashboard  *usecases.DashboardUseCase
	Admin      *usecases.AdminUseCase
	PublicURL  string
	StorageTag string
}

func SetupRoutes(app *fiber.App, deps Dependencies) {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	app.Use(middleware.PerformanceLogger())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
			"storage": deps.StorageTag,
		})
	})

	// Handlers
	surveyHandler := handlers.NewSurveyHandler(deps.Registry, deps.Intake, deps.PublicURL)
	dashboardHandler := handlers.NewDashboardHandler(deps.Dashboard)
	authHandler := handlers.NewAuthHandler(deps.Admin)

	// Tela inicial (?page=dashboard abre o painel)
	app.Get("/", surveyHandler.GetView)

	// Routes
	groups := middleware.SetupRouteGroups(app, middleware.AdminAuth(deps.Admin))

	// Questionário
	groups.Public.Get("/questions", surveyHandler.GetQuestions)
	groups.Public.Get("/share", surveyHandler.GetShareMessage)
	groups.Public.Post("/surveys", surveyHandler.SubmitSurvey)

	groups.Intake.Post("/", surveyHandler.StartIntake)
	groups.Intake.Get("/:id", surveyHandler.GetIntake)
	groups.Intake.Post("/:id/answer", surveyHandler.AnswerIntake)
	groups.Intake.Post("/:id/back", surveyHandler.BackIntake)
	groups.Intake.Post("/:id/submit", surveyHandler.SubmitIntake)

	// Acesso ao painel
	groups.Public.Post("/admin/login", authHandler.Login)
	groups.Public.Post("/admin/logout", authHandler.Logout)

	// Painel
	groups.Admin.Get("/stats", dashboardHandler.GetStats)
	groups.Admin.Get("/leads", dashboardHandler.GetLeads)
	groups.Admin.Post("/draw", dashboardHandler.Draw)
	groups.Admin.Post("/leads/:id/redeem", dashboardHandler.ToggleRedeem)
	groups.Admin.Get("/leads/:id/redeem", dashboardHandler.GetRedeem)
	groups.Admin.Delete("/surveys/:id", dashboardHandler.DeleteSurvey)
	groups.Admin.Delete("/surveys", dashboardHandler.ResetSurveys)
	groups.Admin.Get("/export/csv", dashboardHandler.ExportCSV)
	groups.Admin.Get("/export/xlsx", dashboardHandler.ExportXLSX)
	groups.Admin.Post("/insights", dashboardHandler.Insights)
}
