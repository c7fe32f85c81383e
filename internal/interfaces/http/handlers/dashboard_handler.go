package handlers

import (
	"fmt"
	"time"

	"github.com/PavaniTiago/vior-insights-api/internal/application/export"
	"github.com/PavaniTiago/vior-insights-api/internal/application/usecases"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DashboardHandler lida com requisições do painel administrativo
type DashboardHandler struct {
	dashboardUseCase *usecases.DashboardUseCase
}

// NewDashboardHandler cria uma nova instância de DashboardHandler
func NewDashboardHandler(dashboardUseCase *usecases.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
	}
}

// filterFromQuery lê filter_by e filter_value; sem eles o painel mostra tudo
func filterFromQuery(c *fiber.Ctx) entities.Filter {
	return entities.Filter{
		QuestionID: c.Query("filter_by", ""),
		Value:      c.Query("filter_value", entities.FilterAll),
	}
}

// GetStats retorna as estatísticas agregadas do painel
// @Summary Estatísticas do painel
// @Tags dashboard
// @Produce json
// @Param filter_by query string false "ID da pergunta usada como filtro"
// @Param filter_value query string false "ID da opção filtrada (all para todas)"
// @Success 200 {object} entities.AggregateStats
// @Failure 422 {object} map[string]interface{} "Filtro inválido"
// @Router /api/v1/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	startTime := time.Now()
	filter := filterFromQuery(c)

	stats, err := h.dashboardUseCase.Stats(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err)
	}

	c.Set("X-Response-Time", time.Since(startTime).String())
	return c.JSON(fiber.Map{
		"filter": filter,
		"stats":  stats,
	})
}

// GetLeads retorna a lista de participantes
func (h *DashboardHandler) GetLeads(c *fiber.Ctx) error {
	leads, err := h.dashboardUseCase.Leads(c.UserContext(), filterFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"leads": leads,
		"total": len(leads),
	})
}

// Draw sorteia um ganhador
func (h *DashboardHandler) Draw(c *fiber.Ctx) error {
	result, err := h.dashboardUseCase.Draw(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// ToggleRedeem inverte a marca de resgate do cupom
func (h *DashboardHandler) ToggleRedeem(c *fiber.Ctx) error {
	state, err := h.dashboardUseCase.ToggleRedeemed(c.UserContext(), c.Params("id"))
	if err != nil {
		if state.Status == entities.StateFailed {
			status, message := statusFor(err)
			return c.Status(status).JSON(fiber.Map{
				"error":      message,
				"redemption": state,
			})
		}
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"redemption": state})
}

// GetRedeem retorna o estado atual do resgate
func (h *DashboardHandler) GetRedeem(c *fiber.Ctx) error {
	state, err := h.dashboardUseCase.RedemptionState(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"redemption": state})
}

// DeleteSurvey exclui uma pesquisa
func (h *DashboardHandler) DeleteSurvey(c *fiber.Ctx) error {
	if err := h.dashboardUseCase.DeleteRecord(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ResetSurveys apaga todas as pesquisas. Exige ?confirm=true.
func (h *DashboardHandler) ResetSurveys(c *fiber.Ctx) error {
	if c.Query("confirm") != "true" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Confirme a exclusão de TODOS os dados com ?confirm=true",
		})
	}
	if err := h.dashboardUseCase.Reset(c.UserContext()); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportCSV baixa todas as pesquisas em CSV
func (h *DashboardHandler) ExportCSV(c *fiber.Ctx) error {
	content, err := h.dashboardUseCase.ExportCSV(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.CSVFilename))
	return c.SendString(content)
}

// ExportXLSX baixa a planilha de leads
func (h *DashboardHandler) ExportXLSX(c *fiber.Ctx) error {
	content, err := h.dashboardUseCase.ExportSpreadsheet(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.SpreadsheetFilename))
	return c.Send(content)
}

// Insights pede a análise da IA
func (h *DashboardHandler) Insights(c *fiber.Ctx) error {
	insights, err := h.dashboardUseCase.Insights(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(insights)
}
