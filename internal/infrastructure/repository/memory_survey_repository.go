package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
	"github.com/google/uuid"
)

// MemorySurveyRepository mantém as pesquisas em memória (desenvolvimento e testes)
type MemorySurveyRepository struct {
	mu      sync.RWMutex
	records []entities.SurveyRecord
	now     func() time.Time
}

// NewMemorySurveyRepository cria uma nova instância de MemorySurveyRepository
func NewMemorySurveyRepository() *MemorySurveyRepository {
	return &MemorySurveyRepository{
		now: time.Now,
	}
}

// WithClock troca o relógio usado em created_at
func (r *MemorySurveyRepository) WithClock(now func() time.Time) *MemorySurveyRepository {
	r.now = now
	return r
}

func (r *MemorySurveyRepository) Insert(ctx context.Context, responses []entities.Response) (entities.SurveyRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := entities.SurveyRecord{
		ID:        uuid.NewString(),
		CreatedAt: r.now(),
		Responses: cloneResponses(responses),
	}
	r.records = append(r.records, record)
	return copyRecord(record), nil
}

func (r *MemorySurveyRepository) List(ctx context.Context) ([]entities.SurveyRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.SurveyRecord, 0, len(r.records))
	for i := len(r.records) - 1; i >= 0; i-- {
		out = append(out, copyRecord(r.records[i]))
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *MemorySurveyRepository) FindByContact(ctx context.Context, whatsapp string) ([]entities.SurveyRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entities.SurveyRecord
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].Contact() == whatsapp {
			out = append(out, copyRecord(r.records[i]))
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *MemorySurveyRepository) UpdateResponses(ctx context.Context, id string, responses []entities.Response) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return entities.ErrRecordNotFound
	}
	r.records[i].Responses = cloneResponses(responses)
	return nil
}

func (r *MemorySurveyRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return entities.ErrRecordNotFound
	}
	r.records = append(r.records[:i], r.records[i+1:]...)
	return nil
}

func (r *MemorySurveyRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = nil
	return nil
}

func (r *MemorySurveyRepository) indexOf(id string) int {
	for i, rec := range r.records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

// sortNewestFirst recebe a lista na ordem inversa de inserção; empates mantêm essa ordem
func sortNewestFirst(records []entities.SurveyRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
}

func copyRecord(rec entities.SurveyRecord) entities.SurveyRecord {
	rec.Responses = cloneResponses(rec.Responses)
	return rec
}

func cloneResponses(in []entities.Response) []entities.Response {
	out := make([]entities.Response, len(in))
	for i, resp := range in {
		if resp.Answer.Options != nil {
			resp.Answer.Options = append([]string{}, resp.Answer.Options...)
		}
		out[i] = resp
	}
	return out
}
