package middleware

import (
	"github.com/PavaniTiago/vior-insights-api/internal/application/usecases"
	"github.com/PavaniTiago/vior-insights-api/internal/interfaces/http/handlers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// LocalsAdminSession guarda o id da sessão autenticada em c.Locals
const LocalsAdminSession = "admin_session"

func SetupMiddlewares(app *fiber.App, allowedOrigins string) {
	app.Use(recover.New())

	// CORS configuration
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${method} ${path}\n",
		TimeFormat: "02/01/2006 15:04:05",
		TimeZone:   "America/Sao_Paulo",
	}))
}

// RouteGroups define os grupos de rotas da API
type RouteGroups struct {
	Public fiber.Router
	Intake fiber.Router
	Admin  fiber.Router
}

// SetupRouteGroups configura os grupos de rotas com seus respectivos middlewares
func SetupRouteGroups(app *fiber.App, authMiddleware fiber.Handler) RouteGroups {
	// Grupo público (sem autenticação)
	public := app.Group("/api/v1")

	// Questionário em andamento
	intake := public.Group("/intake")

	// Painel (com autenticação)
	admin := public.Group("/dashboard", authMiddleware)

	return RouteGroups{
		Public: public,
		Intake: intake,
		Admin:  admin,
	}
}

// AdminAuth exige um token de sessão válido do painel
func AdminAuth(admin *usecases.AdminUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := handlers.BearerToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Acesso restrito: informe o PIN",
			})
		}

		sessionID, err := admin.Validate(c.UserContext(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Sessão inválida ou expirada",
			})
		}

		c.Locals(LocalsAdminSession, sessionID)
		return c.Next()
	}
}
