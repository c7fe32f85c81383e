package redemption

import (
	"sync"

	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
)

// Tracker guarda o estado otimista do resgate por pesquisa.
// Begin leva a Pending, Resolve volta a Synced e Fail vai a Failed com o valor revertido.
type Tracker struct {
	mu     sync.Mutex
	states map[string]entities.RedemptionState
}

// NewTracker cria uma nova instância de Tracker
func NewTracker() *Tracker {
	return &Tracker{states: make(map[string]entities.RedemptionState)}
}

// Begin aplica a inversão otimista. current é o valor autoritativo conhecido.
// Retorna ErrTogglePending se já existe alteração em andamento para o registro.
func (t *Tracker) Begin(recordID string, current bool) (entities.RedemptionState, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if st, ok := t.states[recordID]; ok && st.Status == entities.StatePending {
		return st, entities.ErrTogglePending
	}

	st := entities.RedemptionState{
		RecordID: recordID,
		Status:   entities.StatePending,
		Value:    !current,
		LastGood: current,
	}
	t.states[recordID] = st
	return st, nil
}

// Resolve confirma o valor lido do backend após a gravação
func (t *Tracker) Resolve(recordID string, persisted bool) entities.RedemptionState {
	t.mu.Lock()
	defer t.mu.Unlock()

	st := entities.RedemptionState{
		RecordID: recordID,
		Status:   entities.StateSynced,
		Value:    persisted,
		LastGood: persisted,
	}
	t.states[recordID] = st
	return st
}

// Fail desfaz a inversão otimista, voltando ao último valor confirmado
func (t *Tracker) Fail(recordID string) entities.RedemptionState {
	t.mu.Lock()
	defer t.mu.Unlock()

	st := t.states[recordID]
	st.RecordID = recordID
	st.Status = entities.StateFailed
	st.Value = st.LastGood
	t.states[recordID] = st
	return st
}

// State retorna o estado exibido; sem histórico local usa o valor autoritativo
func (t *Tracker) State(recordID string, authoritative bool) entities.RedemptionState {
	t.mu.Lock()
	defer t.mu.Unlock()

	if st, ok := t.states[recordID]; ok && st.Status != entities.StateSynced {
		return st
	}
	return entities.RedemptionState{
		RecordID: recordID,
		Status:   entities.StateSynced,
		Value:    authoritative,
		LastGood: authoritative,
	}
}

// Forget descarta o estado local de um registro (ex.: excluído)
func (t *Tracker) Forget(recordID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.states, recordID)
}

// Reset descarta todo o estado local
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.states = make(map[string]entities.RedemptionState)
}
