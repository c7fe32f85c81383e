package handlers

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/PavaniTiago/vior-insights-api/internal/application/usecases"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/catalog"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
)

// Mensagens exibidas ao final do questionário
const (
	MsgAccepted            = "Cadastro Confirmado! 🎉 O sorteio será realizado utilizando o seu número de WhatsApp."
	MsgAlreadyParticipated = "Você já participou! Cada WhatsApp concorre uma única vez."
)

// SurveyHandler atende o fluxo público do questionário
type SurveyHandler struct {
	registry  *catalog.Registry
	intake    *usecases.IntakeUseCase
	publicURL string
}

// NewSurveyHandler cria uma nova instância de SurveyHandler
func NewSurveyHandler(registry *catalog.Registry, intake *usecases.IntakeUseCase, publicURL string) *SurveyHandler {
	return &SurveyHandler{
		registry:  registry,
		intake:    intake,
		publicURL: publicURL,
	}
}

// GetView indica qual tela abrir a partir de ?page=
func (h *SurveyHandler) GetView(c *fiber.Ctx) error {
	if c.Query("page") == "dashboard" {
		return c.JSON(fiber.Map{
			"view":         "dashboard",
			"requires_pin": true,
		})
	}
	return c.JSON(fiber.Map{
		"view":      "welcome",
		"questions": h.registry.Len(),
	})
}

// GetQuestions retorna o questionário completo
func (h *SurveyHandler) GetQuestions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"questions": h.registry.Questions(),
		"total":     h.registry.Len(),
	})
}

// GetShareMessage retorna o convite com o link público
func (h *SurveyHandler) GetShareMessage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": catalog.ShareMessage(h.publicURL),
		"link":    h.publicURL,
	})
}

// StartIntake abre um novo questionário
func (h *SurveyHandler) StartIntake(c *fiber.Ctx) error {
	view, err := h.intake.Start(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"intake": view})
}

// GetIntake retorna a pergunta atual de um questionário
func (h *SurveyHandler) GetIntake(c *fiber.Ctx) error {
	view, err := h.intake.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"intake": view})
}

type answerRequest struct {
	Answer json.RawMessage `json:"answer"`
}

// AnswerIntake responde a pergunta atual e avança
func (h *SurveyHandler) AnswerIntake(c *fiber.Ctx) error {
	var req answerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido",
		})
	}

	view, err := h.intake.Answer(c.UserContext(), c.Params("id"), req.Answer)
	return h.intakeResponse(c, view, err)
}

// BackIntake volta uma pergunta
func (h *SurveyHandler) BackIntake(c *fiber.Ctx) error {
	view, err := h.intake.Back(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"intake": view})
}

// SubmitIntake reenvia um questionário concluído cuja gravação falhou
func (h *SurveyHandler) SubmitIntake(c *fiber.Ctx) error {
	view, err := h.intake.Retry(c.UserContext(), c.Params("id"))
	return h.intakeResponse(c, view, err)
}

type submitRequest struct {
	Responses []usecases.RawResponse `json:"responses"`
}

// SubmitSurvey recebe todas as respostas de uma vez
func (h *SurveyHandler) SubmitSurvey(c *fiber.Ctx) error {
	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido",
		})
	}

	outcome, err := h.intake.SubmitDirect(c.UserContext(), req.Responses)
	if err != nil {
		return respondError(c, err)
	}
	return outcomeResponse(c, outcome)
}

// intakeResponse devolve o passo atual junto com o erro de validação, para a tela
// continuar na mesma pergunta
func (h *SurveyHandler) intakeResponse(c *fiber.Ctx, view usecases.IntakeView, err error) error {
	if err != nil {
		if view.ID == "" {
			return respondError(c, err)
		}
		status, message := statusFor(err)
		body := fiber.Map{"intake": view}
		var validation *entities.ValidationError
		if errors.As(err, &validation) {
			status, message = fiber.StatusUnprocessableEntity, validation.Message
			body["question_id"] = validation.QuestionID
		}
		if status >= fiber.StatusInternalServerError {
			log.Printf("❌ %s %s: %v", c.Method(), c.Path(), err)
		}
		body["error"] = message
		return c.Status(status).JSON(body)
	}

	if view.Outcome != nil {
		status := fiber.StatusOK
		if view.Outcome.Status == entities.OutcomeAccepted {
			status = fiber.StatusCreated
		}
		return c.Status(status).JSON(fiber.Map{
			"intake":  view,
			"message": outcomeMessage(*view.Outcome),
		})
	}
	return c.JSON(fiber.Map{"intake": view})
}

func outcomeResponse(c *fiber.Ctx, outcome entities.Outcome) error {
	status := fiber.StatusOK
	if outcome.Status == entities.OutcomeAccepted {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{
		"status":    outcome.Status,
		"record_id": outcome.RecordID,
		"coupon":    outcome.Coupon,
		"message":   outcomeMessage(outcome),
	})
}

func outcomeMessage(outcome entities.Outcome) string {
	if outcome.Status == entities.OutcomeAlreadyParticipated {
		return MsgAlreadyParticipated
	}
	return MsgAccepted
}
