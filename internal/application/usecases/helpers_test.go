package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/PavaniTiago/vior-insights-api/internal/domain/catalog"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
	"github.com/PavaniTiago/vior-insights-api/internal/infrastructure/cache"
	"github.com/PavaniTiago/vior-insights-api/internal/infrastructure/repository"
)

// flakyRepository envolve o repositório em memória e permite simular falhas do backend
type flakyRepository struct {
	*repository.MemorySurveyRepository

	mu         sync.Mutex
	failInsert bool
	failUpdate bool
	failList   bool
}

func newFlakyRepository() *flakyRepository {
	return &flakyRepository{MemorySurveyRepository: repository.NewMemorySurveyRepository()}
}

func (r *flakyRepository) set(insert, update, list bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failInsert, r.failUpdate, r.failList = insert, update, list
}

func (r *flakyRepository) Insert(ctx context.Context, responses []entities.Response) (entities.SurveyRecord, error) {
	r.mu.Lock()
	fail := r.failInsert
	r.mu.Unlock()
	if fail {
		return entities.SurveyRecord{}, fmt.Errorf("%w: insert indisponível", entities.ErrPersistence)
	}
	return r.MemorySurveyRepository.Insert(ctx, responses)
}

func (r *flakyRepository) UpdateResponses(ctx context.Context, id string, responses []entities.Response) error {
	r.mu.Lock()
	fail := r.failUpdate
	r.mu.Unlock()
	if fail {
		return fmt.Errorf("%w: update indisponível", entities.ErrPersistence)
	}
	return r.MemorySurveyRepository.UpdateResponses(ctx, id, responses)
}

func (r *flakyRepository) List(ctx context.Context) ([]entities.SurveyRecord, error) {
	r.mu.Lock()
	fail := r.failList
	r.mu.Unlock()
	if fail {
		return nil, fmt.Errorf("%w: select indisponível", entities.ErrPersistence)
	}
	return r.MemorySurveyRepository.List(ctx)
}

func newTestCache(t *testing.T) *cache.Cache {
	t.Helper()
	c := cache.New()
	t.Cleanup(func() { c.Close() })
	return c
}

// completeAnswers responde todo o questionário padrão com o WhatsApp informado
func completeAnswers(whatsapp string) map[string]json.RawMessage {
	return map[string]json.RawMessage{
		catalog.QuestionCategory:       json.RawMessage(`"makeup"`),
		catalog.QuestionStyle:          json.RawMessage(`"glam"`),
		catalog.QuestionFrequency:      json.RawMessage(`"monthly"`),
		catalog.QuestionLocation:       json.RawMessage(`["shopee","amazon"]`),
		catalog.QuestionTicket:         json.RawMessage(`"medium"`),
		catalog.QuestionProducts:       json.RawMessage(`"Protetor solar, rímel e lip tint"`),
		catalog.QuestionBrands:         json.RawMessage(`""`),
		catalog.QuestionTesting:        json.RawMessage(`"yes"`),
		catalog.QuestionOnlineInterest: json.RawMessage(`5`),
		catalog.QuestionAge:            json.RawMessage(`"25_34"`),
		catalog.QuestionName:           json.RawMessage(`"Ana Clara"`),
		catalog.QuestionWhatsapp:       json.RawMessage(fmt.Sprintf("%q", whatsapp)),
	}
}

func rawResponses(answers map[string]json.RawMessage) []RawResponse {
	out := make([]RawResponse, 0, len(answers))
	for _, q := range catalog.Default().Questions() {
		if raw, ok := answers[q.ID]; ok {
			out = append(out, RawResponse{QuestionID: q.ID, Answer: raw})
		}
	}
	return out
}

func whatsappResponses(whatsapp string, extra ...entities.Response) []entities.Response {
	out := []entities.Response{
		{QuestionID: catalog.QuestionName, Answer: entities.TextAnswer("Ana")},
		{QuestionID: catalog.QuestionWhatsapp, Answer: entities.TextAnswer(whatsapp)},
	}
	return append(out, extra...)
}
