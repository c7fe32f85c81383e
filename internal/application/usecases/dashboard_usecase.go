package usecases

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/PavaniTiago/vior-insights-api/internal/application/analytics"
	"github.com/PavaniTiago/vior-insights-api/internal/application/draw"
	"github.com/PavaniTiago/vior-insights-api/internal/application/export"
	"github.com/PavaniTiago/vior-insights-api/internal/application/redemption"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/catalog"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/repositories"
)

const (
	// InsightsSampleSize limita quantas pesquisas vão para a IA
	InsightsSampleSize = 20
	// MsgNotEnoughData é exibida quando não há pesquisas para analisar
	MsgNotEnoughData = "Não há dados suficientes para análise."
)

// Summarizer gera a análise em texto (HTML) de uma amostra de pesquisas
type Summarizer interface {
	Summarize(ctx context.Context, sample []entities.SurveyRecord, total int) (string, error)
}

// Insights é a resposta da análise por IA
type Insights struct {
	HTML   string `json:"html"`
	Total  int    `json:"total"`
	Sample int    `json:"sample"`
}

// DashboardUseCase implementa os casos de uso do painel administrativo.
// Mantém a última lista de pesquisas lida do backend; toda leitura do painel
// recarrega essa lista e toda alteração a recarrega em seguida.
type DashboardUseCase struct {
	repo       repositories.SurveyRepository
	registry   *catalog.Registry
	drawer     *draw.Drawer
	tracker    *redemption.Tracker
	summarizer Summarizer

	mu       sync.RWMutex
	snapshot []entities.SurveyRecord
}

// NewDashboardUseCase cria uma nova instância de DashboardUseCase
func NewDashboardUseCase(repo repositories.SurveyRepository, registry *catalog.Registry, drawer *draw.Drawer, tracker *redemption.Tracker, summarizer Summarizer) *DashboardUseCase {
	return &DashboardUseCase{
		repo:       repo,
		registry:   registry,
		drawer:     drawer,
		tracker:    tracker,
		summarizer: summarizer,
	}
}

// Load busca todas as pesquisas no backend e atualiza a cópia local
func (u *DashboardUseCase) Load(ctx context.Context) ([]entities.SurveyRecord, error) {
	records, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	u.mu.Lock()
	u.snapshot = records
	u.mu.Unlock()
	return records, nil
}

// ValidateFilter confere se o filtro aponta para uma pergunta de escolha
func (u *DashboardUseCase) ValidateFilter(filter entities.Filter) error {
	if filter.IsAll() {
		return nil
	}
	q, ok := u.registry.Find(filter.QuestionID)
	if !ok || (!q.IsChoice() && q.Type != entities.QuestionMultipleChoice) {
		return entities.NewValidationError(filter.QuestionID, "Filtro inválido: escolha uma pergunta de múltipla escolha.")
	}
	return nil
}

// Stats recalcula as estatísticas a partir das pesquisas atuais
func (u *DashboardUseCase) Stats(ctx context.Context, filter entities.Filter) (entities.AggregateStats, error) {
	if err := u.ValidateFilter(filter); err != nil {
		return entities.AggregateStats{}, err
	}
	records, err := u.Load(ctx)
	if err != nil {
		return entities.AggregateStats{}, err
	}
	return analytics.Aggregate(u.registry, records, filter), nil
}

// Leads retorna a lista de participantes, mais recentes primeiro
func (u *DashboardUseCase) Leads(ctx context.Context, filter entities.Filter) ([]entities.Lead, error) {
	if err := u.ValidateFilter(filter); err != nil {
		return nil, err
	}
	records, err := u.Load(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.ProjectLeads(u.registry, analytics.ApplyFilter(records, filter)), nil
}

// Draw sorteia um ganhador entre todos os participantes
func (u *DashboardUseCase) Draw(ctx context.Context) (draw.Result, error) {
	records, err := u.Load(ctx)
	if err != nil {
		return draw.Result{}, err
	}
	return u.drawer.Draw(analytics.ProjectLeads(u.registry, records))
}

// ToggleRedeemed inverte a marca de resgate do cupom.
// A inversão é aplicada localmente antes da gravação; se a gravação falhar o valor
// anterior é restaurado, se der certo a lista é recarregada do backend.
func (u *DashboardUseCase) ToggleRedeemed(ctx context.Context, recordID string) (entities.RedemptionState, error) {
	record, err := u.find(ctx, recordID)
	if err != nil {
		return entities.RedemptionState{}, err
	}

	current := record.Redeemed()
	state, err := u.tracker.Begin(recordID, current)
	if err != nil {
		return state, err
	}

	updated := record.WithRedeemed(!current)
	if err := u.repo.UpdateResponses(ctx, recordID, updated); err != nil {
		return u.tracker.Fail(recordID), err
	}
	u.replaceCached(recordID, updated)

	persisted := !current
	if _, err := u.Load(ctx); err != nil {
		log.Printf("⚠️ Resgate gravado, mas falhou ao recarregar pesquisas: %v", err)
	} else if rec, ok := u.cached(recordID); ok {
		persisted = rec.Redeemed()
	}
	return u.tracker.Resolve(recordID, persisted), nil
}

// RedemptionState retorna o estado exibido do resgate de uma pesquisa
func (u *DashboardUseCase) RedemptionState(ctx context.Context, recordID string) (entities.RedemptionState, error) {
	record, err := u.find(ctx, recordID)
	if err != nil {
		return entities.RedemptionState{}, err
	}
	return u.tracker.State(recordID, record.Redeemed()), nil
}

// DeleteRecord exclui uma pesquisa
func (u *DashboardUseCase) DeleteRecord(ctx context.Context, recordID string) error {
	if err := u.repo.Delete(ctx, recordID); err != nil {
		return err
	}
	u.tracker.Forget(recordID)
	_, err := u.Load(ctx)
	return err
}

// Reset apaga todas as pesquisas
func (u *DashboardUseCase) Reset(ctx context.Context) error {
	if err := u.repo.DeleteAll(ctx); err != nil {
		return err
	}
	u.tracker.Reset()
	_, err := u.Load(ctx)
	return err
}

// ExportCSV gera o CSV de todas as pesquisas
func (u *DashboardUseCase) ExportCSV(ctx context.Context) (string, error) {
	records, err := u.Load(ctx)
	if err != nil {
		return "", err
	}
	return export.ToCSV(u.registry, records), nil
}

// ExportSpreadsheet gera a planilha de leads
func (u *DashboardUseCase) ExportSpreadsheet(ctx context.Context) ([]byte, error) {
	records, err := u.Load(ctx)
	if err != nil {
		return nil, err
	}
	return export.ToSpreadsheet(analytics.ProjectLeads(u.registry, records))
}

// Insights pede à IA uma análise das pesquisas mais recentes
func (u *DashboardUseCase) Insights(ctx context.Context) (Insights, error) {
	records, err := u.Load(ctx)
	if err != nil {
		return Insights{}, err
	}
	if len(records) == 0 {
		return Insights{}, entities.NewValidationError("", MsgNotEnoughData)
	}
	if u.summarizer == nil {
		return Insights{}, entities.ErrMissingCredential
	}

	sample := records
	if len(sample) > InsightsSampleSize {
		sample = sample[:InsightsSampleSize]
	}

	html, err := u.summarizer.Summarize(ctx, sample, len(records))
	if err != nil {
		if !errors.Is(err, entities.ErrMissingCredential) && !errors.Is(err, entities.ErrService) {
			err = errors.Join(entities.ErrService, err)
		}
		return Insights{}, err
	}
	return Insights{HTML: html, Total: len(records), Sample: len(sample)}, nil
}

// find procura a pesquisa na cópia local; se não achar, recarrega uma vez
func (u *DashboardUseCase) find(ctx context.Context, recordID string) (entities.SurveyRecord, error) {
	if rec, ok := u.cached(recordID); ok {
		return rec, nil
	}
	if _, err := u.Load(ctx); err != nil {
		return entities.SurveyRecord{}, err
	}
	if rec, ok := u.cached(recordID); ok {
		return rec, nil
	}
	return entities.SurveyRecord{}, entities.ErrRecordNotFound
}

func (u *DashboardUseCase) cached(recordID string) (entities.SurveyRecord, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	for _, rec := range u.snapshot {
		if rec.ID == recordID {
			return rec, true
		}
	}
	return entities.SurveyRecord{}, false
}

// replaceCached aplica na cópia local as respostas já gravadas no backend
func (u *DashboardUseCase) replaceCached(recordID string, responses []entities.Response) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for i, rec := range u.snapshot {
		if rec.ID == recordID {
			// nova fatia: quem recebeu a lista em Load continua lendo a versão antiga
			snapshot := make([]entities.SurveyRecord, len(u.snapshot))
			copy(snapshot, u.snapshot)
			rec.Responses = responses
			snapshot[i] = rec
			u.snapshot = snapshot
			return
		}
	}
}
