package handlers

import (
	"strings"

	"github.com/PavaniTiago/vior-insights-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler abre e encerra sessões do painel
type AuthHandler struct {
	adminUseCase *usecases.AdminUseCase
}

// NewAuthHandler cria uma nova instância de AuthHandler
func NewAuthHandler(adminUseCase *usecases.AdminUseCase) *AuthHandler {
	return &AuthHandler{adminUseCase: adminUseCase}
}

type loginRequest struct {
	PIN string `json:"pin"`
}

// Login troca o PIN por um token de sessão
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido",
		})
	}

	session, err := h.adminUseCase.Login(c.UserContext(), req.PIN)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(session)
}

// Logout encerra a sessão do token enviado
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.adminUseCase.Logout(c.UserContext(), BearerToken(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// BearerToken extrai o token do cabeçalho Authorization
func BearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
