package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	DefaultModel   = "gemini-2.0-flash"
	DefaultTimeout = 20 * time.Second
)

// Config reúne as configurações do cliente Gemini
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// GeminiSummarizer gera a análise estratégica do dashboard pela API REST do Gemini
type GeminiSummarizer struct {
	cfg Config
}

// NewGeminiSummarizer cria uma nova instância de GeminiSummarizer
func NewGeminiSummarizer(cfg Config) *GeminiSummarizer {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &GeminiSummarizer{cfg: cfg}
}

// IsEnabled indica se há chave configurada
func (g *GeminiSummarizer) IsEnabled() bool {
	return g.cfg.APIKey != ""
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Summarize envia a amostra e o total de respondentes e devolve o HTML gerado
func (g *GeminiSummarizer) Summarize(ctx context.Context, sample []entities.SurveyRecord, total int) (string, error) {
	if !g.IsEnabled() {
		return "", entities.ErrMissingCredential
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", entities.ErrService, err)
	}

	prompt, err := BuildPrompt(sample, total)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entities.ErrService, err)
	}

	timeout := g.cfg.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}

	agent := fiber.Post(g.cfg.BaseURL + "/" + g.cfg.Model + ":generateContent")
	agent.Set("x-goog-api-key", g.cfg.APIKey)
	agent.JSON(geminiRequest{Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}}})
	agent.Timeout(timeout)
	if err := agent.Parse(); err != nil {
		fiber.ReleaseAgent(agent)
		return "", fmt.Errorf("%w: %v", entities.ErrService, err)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return "", fmt.Errorf("%w: %v", entities.ErrService, errs[0])
	}

	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: resposta inválida (status %d): %v", entities.ErrService, code, err)
	}
	if code >= fiber.StatusBadRequest {
		msg := fmt.Sprintf("status %d", code)
		if resp.Error != nil && resp.Error.Message != "" {
			msg = resp.Error.Message
		}
		return "", fmt.Errorf("%w: %s", entities.ErrService, msg)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: resposta vazia do Gemini", entities.ErrService)
	}
	return stripFences(resp.Candidates[0].Content.Parts[0].Text), nil
}

// BuildPrompt monta o pedido de análise com a amostra em JSON
func BuildPrompt(sample []entities.SurveyRecord, total int) (string, error) {
	data, err := json.Marshal(sample)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar amostra: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Você é uma analista sênior de pesquisa de mercado da marca \"Vior Store\". ")
	fmt.Fprintf(&b, "Temos dados de %d respondentes no nicho de Beleza e Cosméticos.\n", total)
	b.WriteString("Segue uma amostra dos dados brutos em JSON (respostas sobre categoria, orçamento, canais de compra etc.):\n")
	b.Write(data)
	b.WriteString("\n\nEscreva uma análise estratégica concisa em português (PT-BR), em HTML (somente o conteúdo de uma <div>, sem <html>).\n")
	b.WriteString("Aborde:\n")
	b.WriteString("1. Top Oportunidades: categorias com alta demanda ou abertura a novidades.\n")
	b.WriteString("2. Persona do Cliente: cliente ideal a partir de idade, gasto e canais.\n")
	b.WriteString("3. Estratégia de Canais: onde concentrar os anúncios.\n")
	b.WriteString("4. Sugestão de Preço: faixa ideal para um kit, com base no ticket médio.\n")
	b.WriteString("Use <h3> para títulos, <ul> para listas e <p> para parágrafos. Seja profissional e prático.")
	return b.String(), nil
}

// stripFences remove o bloco ```html que o modelo às vezes devolve
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```html")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
