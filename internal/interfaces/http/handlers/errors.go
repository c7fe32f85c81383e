package handlers

import (
	"errors"
	"log"

	"github.com/PavaniTiago/vior-insights-api/internal/application/intake"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
)

// respondError converte os erros do domínio em status HTTP e mensagem para o usuário
func respondError(c *fiber.Ctx, err error) error {
	var validation *entities.ValidationError
	if errors.As(err, &validation) {
		body := fiber.Map{"error": validation.Message}
		if validation.QuestionID != "" {
			body["question_id"] = validation.QuestionID
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(body)
	}

	status, message := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		log.Printf("❌ %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, entities.ErrMissingIdentity):
		return fiber.StatusBadRequest, "Informe seu WhatsApp para participar."
	case errors.Is(err, entities.ErrUnauthorized):
		return fiber.StatusUnauthorized, "Senha incorreta!"
	case errors.Is(err, entities.ErrSessionNotFound):
		return fiber.StatusNotFound, "Questionário não encontrado ou expirado. Comece novamente."
	case errors.Is(err, entities.ErrRecordNotFound):
		return fiber.StatusNotFound, "Pesquisa não encontrada."
	case errors.Is(err, entities.ErrTogglePending):
		return fiber.StatusConflict, "Aguarde: o resgate deste cupom ainda está sendo salvo."
	case errors.Is(err, entities.ErrEmptyPool):
		return fiber.StatusConflict, "Nenhum participante para sortear."
	case errors.Is(err, entities.ErrSurveyNotCompleted):
		return fiber.StatusConflict, "Responda todas as perguntas antes de enviar."
	case errors.Is(err, intake.ErrFlowCompleted):
		return fiber.StatusConflict, "Este questionário já foi concluído."
	case errors.Is(err, entities.ErrMissingCredential):
		return fiber.StatusServiceUnavailable, "Falha ao buscar insights da IA. Verifique se a chave de API está configurada corretamente."
	case errors.Is(err, entities.ErrService):
		return fiber.StatusBadGateway, "Falha ao buscar insights da IA. Tente novamente em instantes."
	case errors.Is(err, entities.ErrPersistence):
		return fiber.StatusServiceUnavailable, "Houve um erro ao acessar o banco de dados. Por favor, tente novamente."
	default:
		return fiber.StatusInternalServerError, "Erro interno do servidor"
	}
}
