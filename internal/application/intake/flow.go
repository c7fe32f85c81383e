package intake

import (
	"errors"

	"github.com/PavaniTiago/vior-insights-api/internal/domain/catalog"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
)

// ErrFlowCompleted é retornado ao tentar responder depois da conclusão
var ErrFlowCompleted = errors.New("questionário já foi concluído")

// Mensagens exibidas ao participante
const (
	MsgRequired       = "Por favor, responda esta pergunta."
	MsgSelectOne      = "Selecione pelo menos uma opção."
	MsgInvalidOption  = "Opção inválida para esta pergunta."
	MsgInvalidRating  = "Escolha uma nota de 1 a 5."
	MsgUnexpectedType = "Formato de resposta inválido para esta pergunta."
)

// State é o estado serializável de um fluxo, guardado como rascunho entre requisições
type State struct {
	Step      int                 `json:"step"`
	Responses []entities.Response `json:"responses"`
	Completed bool                `json:"completed"`
}

// Flow conduz o participante pelas perguntas, uma por vez, na ordem do registro.
// Não é seguro para uso concorrente: existe um fluxo ativo por sessão.
type Flow struct {
	registry *catalog.Registry
	state    State
}

// NewFlow cria um fluxo posicionado na primeira pergunta
func NewFlow(registry *catalog.Registry) *Flow {
	return &Flow{registry: registry}
}

// Restore reconstrói um fluxo a partir de um rascunho salvo
func Restore(registry *catalog.Registry, state State) *Flow {
	if state.Step < 0 {
		state.Step = 0
	}
	if last := registry.Len() - 1; state.Step > last {
		state.Step = last
	}
	state.Responses = append([]entities.Response(nil), state.Responses...)
	return &Flow{registry: registry, state: state}
}

// State retorna uma cópia do estado atual
func (f *Flow) State() State {
	s := f.state
	s.Responses = f.Responses()
	return s
}

// Current retorna a pergunta atual
func (f *Flow) Current() entities.Question {
	return f.registry.At(f.state.Step)
}

// Step retorna o índice da pergunta atual
func (f *Flow) Step() int {
	return f.state.Step
}

// IsLast indica se a pergunta atual é a última
func (f *Flow) IsLast() bool {
	return f.state.Step == f.registry.Len()-1
}

// Complete indica se a última resposta válida já foi dada
func (f *Flow) Complete() bool {
	return f.state.Completed
}

// Progress retorna o percentual concluído (perguntas anteriores à atual)
func (f *Flow) Progress() int {
	if f.state.Completed {
		return 100
	}
	return f.state.Step * 100 / f.registry.Len()
}

// Responses retorna uma cópia das respostas na ordem em que foram dadas
func (f *Flow) Responses() []entities.Response {
	out := make([]entities.Response, len(f.state.Responses))
	copy(out, f.state.Responses)
	return out
}

// Answer retorna a resposta já guardada para uma pergunta
func (f *Flow) Answer(questionID string) (entities.Answer, bool) {
	for _, r := range f.state.Responses {
		if r.QuestionID == questionID {
			return r.Answer, true
		}
	}
	return entities.Answer{}, false
}

// Advance valida a resposta da pergunta atual, grava (substituindo a anterior) e avança.
// Retorna completed=true quando a resposta conclui o questionário; isso acontece uma única vez.
func (f *Flow) Advance(answer entities.Answer) (completed bool, err error) {
	if f.state.Completed {
		return false, ErrFlowCompleted
	}

	q := f.Current()
	answer, err = Validate(q, answer)
	if err != nil {
		return false, err
	}

	f.upsert(entities.Response{QuestionID: q.ID, Answer: answer})

	if f.IsLast() {
		f.state.Completed = true
		return true, nil
	}
	f.state.Step++
	return false, nil
}

// Retreat volta uma pergunta; as respostas guardadas não mudam
func (f *Flow) Retreat() bool {
	if f.state.Completed || f.state.Step == 0 {
		return false
	}
	f.state.Step--
	return true
}

func (f *Flow) upsert(resp entities.Response) {
	for i, r := range f.state.Responses {
		if r.QuestionID == resp.QuestionID {
			f.state.Responses[i] = resp
			return
		}
	}
	f.state.Responses = append(f.state.Responses, resp)
}

// Validate confere a resposta contra o tipo e a obrigatoriedade da pergunta e
// devolve a variante normalizada (texto vira Single em perguntas de escolha).
func Validate(q entities.Question, answer entities.Answer) (entities.Answer, error) {
	switch q.Type {
	case entities.QuestionSingleChoice, entities.QuestionImageSelect:
		if answer.Kind == entities.KindText {
			answer = entities.SingleAnswer(answer.Text)
		}
		if answer.Kind != entities.KindSingle && answer.Kind != entities.KindNone {
			return answer, entities.NewValidationError(q.ID, MsgUnexpectedType)
		}
		if answer.IsEmpty() {
			if q.Required {
				return answer, entities.NewValidationError(q.ID, MsgRequired)
			}
			return entities.SingleAnswer(""), nil
		}
		if !q.HasOption(answer.Text) {
			return answer, entities.NewValidationError(q.ID, MsgInvalidOption)
		}
		return answer, nil

	case entities.QuestionMultipleChoice:
		if answer.Kind != entities.KindMulti && answer.Kind != entities.KindNone {
			return answer, entities.NewValidationError(q.ID, MsgUnexpectedType)
		}
		if answer.IsEmpty() {
			if q.Required {
				return answer, entities.NewValidationError(q.ID, MsgSelectOne)
			}
			return entities.MultiAnswer(), nil
		}
		seen := make(map[string]bool, len(answer.Options))
		opts := make([]string, 0, len(answer.Options))
		for _, id := range answer.Options {
			if !q.HasOption(id) {
				return answer, entities.NewValidationError(q.ID, MsgInvalidOption)
			}
			if !seen[id] {
				seen[id] = true
				opts = append(opts, id)
			}
		}
		return entities.MultiAnswer(opts...), nil

	case entities.QuestionRating:
		score, ok := answer.Score()
		if !ok {
			if answer.Kind == entities.KindNone {
				return answer, entities.NewValidationError(q.ID, MsgRequired)
			}
			return answer, entities.NewValidationError(q.ID, MsgUnexpectedType)
		}
		if score != float64(int(score)) || score < 1 || score > 5 {
			return answer, entities.NewValidationError(q.ID, MsgInvalidRating)
		}
		return entities.RatingAnswer(int(score)), nil

	default:
		if answer.Kind == entities.KindSingle {
			answer = entities.TextAnswer(answer.Text)
		}
		if answer.Kind != entities.KindText && answer.Kind != entities.KindNone {
			return answer, entities.NewValidationError(q.ID, MsgUnexpectedType)
		}
		if answer.IsEmpty() {
			if q.Required {
				return answer, entities.NewValidationError(q.ID, MsgRequired)
			}
			return entities.TextAnswer(answer.Text), nil
		}
		return answer, nil
	}
}
