package seed

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/PavaniTiago/vior-insights-api/internal/domain/catalog"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
)

// DefaultCount é o tamanho do lote de demonstração
const DefaultCount = 50

var (
	mockProducts = []string{
		"Protetor solar, rímel e lip tint",
		"Hidratante, sérum de vitamina C e protetor",
		"Base, corretivo e pó",
		"Gloss, máscara de cílios e blush",
	}
	mockBrands = []string{
		"Rare Beauty",
		"Boca Rosa",
		"Simple",
		"Sallve e Principia",
		"",
	}
)

// Submitter é a porta de entrada usada para gravar o lote
type Submitter interface {
	Submit(ctx context.Context, responses []entities.Response) (entities.Outcome, error)
}

// Generator monta respondentes fictícios válidos para o questionário
type Generator struct {
	registry *catalog.Registry
	rng      *rand.Rand
}

// NewGenerator cria um gerador; a semente fixa permite repetir o mesmo lote
func NewGenerator(registry *catalog.Registry, seed uint64) *Generator {
	return &Generator{
		registry: registry,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Respondent gera as respostas do i-ésimo participante.
// WhatsApp segue o formato (11) 99999-NNNN com NNNN = 1000+i.
func (g *Generator) Respondent(i int) []entities.Response {
	out := make([]entities.Response, 0, g.registry.Len())
	for _, q := range g.registry.Questions() {
		var ans entities.Answer
		switch {
		case q.ID == catalog.QuestionName:
			ans = entities.TextAnswer(fmt.Sprintf("Participante %d", i))
		case q.ID == catalog.QuestionWhatsapp:
			ans = entities.TextAnswer(fmt.Sprintf("(11) 99999-%d", 1000+i))
		case q.ID == catalog.QuestionProducts:
			ans = entities.TextAnswer(mockProducts[g.rng.IntN(len(mockProducts))])
		case q.ID == catalog.QuestionBrands:
			ans = entities.TextAnswer(mockBrands[g.rng.IntN(len(mockBrands))])
		case q.Type == entities.QuestionRating:
			// maioria 4 ou 5
			ans = entities.RatingAnswer(4 + g.rng.IntN(2))
		case q.Type == entities.QuestionMultipleChoice:
			first := q.Options[g.rng.IntN(len(q.Options))].ID
			second := q.Options[g.rng.IntN(len(q.Options))].ID
			if first == second {
				ans = entities.MultiAnswer(first)
			} else {
				ans = entities.MultiAnswer(first, second)
			}
		case q.IsChoice():
			ans = entities.SingleAnswer(q.Options[g.rng.IntN(len(q.Options))].ID)
		default:
			continue
		}
		out = append(out, entities.Response{QuestionID: q.ID, Answer: ans})
	}
	return out
}

// Summary conta o resultado de um lote
type Summary struct {
	Accepted            int
	AlreadyParticipated int
}

// Run grava count respondentes pela porta de entrada
func (g *Generator) Run(ctx context.Context, submitter Submitter, count int) (Summary, error) {
	var summary Summary
	for i := 0; i < count; i++ {
		outcome, err := submitter.Submit(ctx, g.Respondent(i))
		if err != nil {
			return summary, fmt.Errorf("participante %d: %w", i, err)
		}
		if outcome.Status == entities.OutcomeAccepted {
			summary.Accepted++
		} else {
			summary.AlreadyParticipated++
		}
	}
	return summary, nil
}
