package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/PavaniTiago/vior-insights-api/internal/application/intake"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/catalog"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/repositories"
	"github.com/google/uuid"
)

const draftKeyPrefix = "draft:"

// IntakeView é o que o participante vê a cada passo do questionário
type IntakeView struct {
	ID        string             `json:"id"`
	Step      int                `json:"step"`
	Total     int                `json:"total"`
	Progress  int                `json:"progress"`
	Question  *entities.Question `json:"question,omitempty"`
	Answer    *entities.Answer   `json:"answer,omitempty"`
	CanGoBack bool               `json:"can_go_back"`
	Completed bool               `json:"completed"`
	Outcome   *entities.Outcome  `json:"outcome,omitempty"`
}

// RawResponse é uma resposta ainda não tipada, como chega na submissão direta
type RawResponse struct {
	QuestionID string          `json:"questionId"`
	Answer     json.RawMessage `json:"answer"`
}

// IntakeUseCase conduz o questionário com rascunhos guardados no KeyValueStore
type IntakeUseCase struct {
	registry   *catalog.Registry
	drafts     repositories.KeyValueStore
	submission *SubmissionUseCase
	ttl        time.Duration
}

// NewIntakeUseCase cria uma nova instância de IntakeUseCase
func NewIntakeUseCase(registry *catalog.Registry, drafts repositories.KeyValueStore, submission *SubmissionUseCase, ttl time.Duration) *IntakeUseCase {
	return &IntakeUseCase{
		registry:   registry,
		drafts:     drafts,
		submission: submission,
		ttl:        ttl,
	}
}

// Start abre um novo rascunho na primeira pergunta
func (u *IntakeUseCase) Start(ctx context.Context) (IntakeView, error) {
	id := uuid.NewString()
	flow := intake.NewFlow(u.registry)
	if err := u.save(ctx, id, flow); err != nil {
		return IntakeView{}, err
	}
	return u.view(id, flow, nil), nil
}

// Get retorna o estado atual de um rascunho
func (u *IntakeUseCase) Get(ctx context.Context, id string) (IntakeView, error) {
	flow, err := u.load(ctx, id)
	if err != nil {
		return IntakeView{}, err
	}
	return u.view(id, flow, nil), nil
}

// Answer responde a pergunta atual. Na última pergunta a pesquisa é submetida;
// se aceita, o rascunho é apagado.
func (u *IntakeUseCase) Answer(ctx context.Context, id string, raw json.RawMessage) (IntakeView, error) {
	flow, err := u.load(ctx, id)
	if err != nil {
		return IntakeView{}, err
	}

	answer, err := intake.ParseAnswer(flow.Current(), raw)
	if err != nil {
		return u.view(id, flow, nil), err
	}

	completed, err := flow.Advance(answer)
	if err != nil {
		return u.view(id, flow, nil), err
	}
	if err := u.save(ctx, id, flow); err != nil {
		return IntakeView{}, err
	}
	if !completed {
		return u.view(id, flow, nil), nil
	}
	return u.finish(ctx, id, flow)
}

// Back volta uma pergunta sem apagar respostas
func (u *IntakeUseCase) Back(ctx context.Context, id string) (IntakeView, error) {
	flow, err := u.load(ctx, id)
	if err != nil {
		return IntakeView{}, err
	}
	if flow.Retreat() {
		if err := u.save(ctx, id, flow); err != nil {
			return IntakeView{}, err
		}
	}
	return u.view(id, flow, nil), nil
}

// Retry reenvia um rascunho concluído cuja gravação falhou
func (u *IntakeUseCase) Retry(ctx context.Context, id string) (IntakeView, error) {
	flow, err := u.load(ctx, id)
	if err != nil {
		return IntakeView{}, err
	}
	if !flow.Complete() {
		return u.view(id, flow, nil), entities.ErrSurveyNotCompleted
	}
	return u.finish(ctx, id, flow)
}

// SubmitDirect valida um conjunto completo de respostas passando por um fluxo novo
// e submete o resultado, sem rascunho.
func (u *IntakeUseCase) SubmitDirect(ctx context.Context, raw []RawResponse) (entities.Outcome, error) {
	byID := make(map[string]json.RawMessage, len(raw))
	for _, r := range raw {
		byID[r.QuestionID] = r.Answer
	}
	if _, ok := byID[entities.QuestionIDWhatsapp]; !ok {
		return entities.Outcome{}, entities.ErrMissingIdentity
	}

	flow := intake.NewFlow(u.registry)
	for !flow.Complete() {
		q := flow.Current()
		answer, err := intake.ParseAnswer(q, byID[q.ID])
		if err != nil {
			return entities.Outcome{}, err
		}
		if _, err := flow.Advance(answer); err != nil {
			return entities.Outcome{}, err
		}
	}

	return u.submission.Submit(ctx, flow.Responses())
}

func (u *IntakeUseCase) finish(ctx context.Context, id string, flow *intake.Flow) (IntakeView, error) {
	outcome, err := u.submission.Submit(ctx, flow.Responses())
	if err != nil {
		// o rascunho concluído fica guardado para nova tentativa
		return u.view(id, flow, nil), err
	}
	if outcome.Status == entities.OutcomeAccepted {
		if err := u.drafts.Delete(ctx, draftKeyPrefix+id); err != nil {
			return u.view(id, flow, &outcome), fmt.Errorf("erro ao limpar rascunho: %w", err)
		}
	}
	return u.view(id, flow, &outcome), nil
}

func (u *IntakeUseCase) load(ctx context.Context, id string) (*intake.Flow, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, entities.ErrSessionNotFound
	}
	data, found, err := u.drafts.Get(ctx, draftKeyPrefix+id)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar rascunho: %w", err)
	}
	if !found {
		return nil, entities.ErrSessionNotFound
	}

	var state intake.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, errors.Join(entities.ErrSessionNotFound, err)
	}
	return intake.Restore(u.registry, state), nil
}

func (u *IntakeUseCase) save(ctx context.Context, id string, flow *intake.Flow) error {
	data, err := json.Marshal(flow.State())
	if err != nil {
		return fmt.Errorf("erro ao serializar rascunho: %w", err)
	}
	if err := u.drafts.Set(ctx, draftKeyPrefix+id, data, u.ttl); err != nil {
		return fmt.Errorf("erro ao salvar rascunho: %w", err)
	}
	return nil
}

func (u *IntakeUseCase) view(id string, flow *intake.Flow, outcome *entities.Outcome) IntakeView {
	v := IntakeView{
		ID:        id,
		Step:      flow.Step(),
		Total:     u.registry.Len(),
		Progress:  flow.Progress(),
		CanGoBack: !flow.Complete() && flow.Step() > 0,
		Completed: flow.Complete(),
		Outcome:   outcome,
	}
	if !flow.Complete() {
		q := flow.Current()
		v.Question = &q
		if ans, ok := flow.Answer(q.ID); ok {
			v.Answer = &ans
		}
	}
	return v
}
