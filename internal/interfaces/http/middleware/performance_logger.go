package middleware

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
)

// RouteBudget é o tempo acima do qual uma requisição da rota é registrada como lenta
type RouteBudget struct {
	Prefix string
	Slow   time.Duration
}

// DefaultRouteBudgets vale quando PerformanceLogger é chamado sem argumentos.
// Vence a primeira regra cujo prefixo casa; insights espera a resposta da IA.
var DefaultRouteBudgets = []RouteBudget{
	{Prefix: "/api/v1/dashboard/insights", Slow: 15 * time.Second},
	{Prefix: "/api/v1/dashboard", Slow: time.Second},
	{Prefix: "/api/v1/intake", Slow: 300 * time.Millisecond},
	{Prefix: "/api/v1/surveys", Slow: 500 * time.Millisecond},
}

// PerformanceLogger registra as requisições lentas do questionário e do painel
// e, nas leituras do painel, o filtro usado
func PerformanceLogger(budgets ...RouteBudget) fiber.Handler {
	if len(budgets) == 0 {
		budgets = DefaultRouteBudgets
	}

	return func(c *fiber.Ctx) error {
		path := c.Path()
		budget, ok := budgetFor(budgets, path)
		if !ok {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		slow := duration >= budget.Slow
		filter := dashboardFilter(c, path)
		if !slow && filter == "" {
			return err
		}

		var b strings.Builder
		b.WriteString("[PERFORMANCE]")
		if slow {
			fmt.Fprintf(&b, " 🐢 LENTA (limite %v)", budget.Slow)
		}
		fmt.Fprintf(&b, " %s %s - %d - Duration: %v", c.Method(), path, c.Response().StatusCode(), duration)
		if filter != "" {
			fmt.Fprintf(&b, " - Filtro: %s", filter)
		}
		log.Println(b.String())

		return err
	}
}

func budgetFor(budgets []RouteBudget, path string) (RouteBudget, bool) {
	for _, b := range budgets {
		if strings.HasPrefix(path, b.Prefix) {
			return b, true
		}
	}
	return RouteBudget{}, false
}

// dashboardFilter descreve o filtro de stats e leads; vazio quando o painel mostra tudo
func dashboardFilter(c *fiber.Ctx, path string) string {
	if c.Method() != fiber.MethodGet {
		return ""
	}
	if !strings.HasSuffix(path, "/dashboard/stats") && !strings.HasSuffix(path, "/dashboard/leads") {
		return ""
	}
	filter := entities.Filter{
		QuestionID: c.Query("filter_by"),
		Value:      c.Query("filter_value", entities.FilterAll),
	}
	if filter.IsAll() {
		return ""
	}
	return filter.QuestionID + "=" + filter.Value
}
