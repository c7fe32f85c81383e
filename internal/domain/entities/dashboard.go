package entities

import "time"

// FilterAll desativa o filtro do dashboard
const FilterAll = "all"

// Filter restringe o dashboard às pesquisas com uma opção em uma pergunta categórica
type Filter struct {
	QuestionID string `json:"question_id,omitempty"`
	Value      string `json:"value,omitempty"`
}

// IsAll indica ausência de filtro
func (f Filter) IsAll() bool {
	return f.QuestionID == "" || f.Value == "" || f.Value == FilterAll
}

// Lead é a visão derivada de uma pesquisa para a lista de contatos
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Whatsapp  string    `json:"whatsapp"`
	CreatedAt time.Time `json:"created_at"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Category  string    `json:"category,omitempty"`
	Style     string    `json:"style,omitempty"`
	Frequency string    `json:"frequency,omitempty"`
	Ticket    string    `json:"ticket,omitempty"`
	Testing   string    `json:"testing,omitempty"`
	Age       string    `json:"age,omitempty"`
	Coupon    string    `json:"coupon,omitempty"`
	Redeemed  bool      `json:"redeemed"`
}

// LabelCount é uma linha de tabela de frequência
type LabelCount struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Mention é uma marca ou produto citado em texto livre
type Mention struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RatingStats resume as respostas de nota
type RatingStats struct {
	Average   string      `json:"average"`
	Count     int         `json:"count"`
	Histogram map[int]int `json:"histogram"`
}

// DashboardSummary contém os contadores principais do dashboard
type DashboardSummary struct {
	Total         int    `json:"total"`
	AverageRating string `json:"average_rating"`
	TopCategory   string `json:"top_category"`
	Coupons       int    `json:"coupons"`
}

// AggregateStats é o resultado completo da agregação, recalculado a cada requisição
type AggregateStats struct {
	Filter   Filter                  `json:"filter"`
	Summary  DashboardSummary        `json:"summary"`
	Tables   map[string][]LabelCount `json:"tables"`
	Rating   RatingStats             `json:"rating"`
	Brands   []Mention               `json:"brands"`
	Products []Mention               `json:"products"`
	Leads    []Lead                  `json:"leads"`
}

// Counts converte uma tabela em mapa id → contagem
func Counts(table []LabelCount) map[string]int {
	out := make(map[string]int, len(table))
	for _, row := range table {
		out[row.ID] = row.Count
	}
	return out
}

// OutcomeStatus é o resultado de uma submissão
type OutcomeStatus string

const (
	OutcomeAccepted            OutcomeStatus = "accepted"
	OutcomeAlreadyParticipated OutcomeStatus = "already_participated"
)

// Outcome descreve o destino de uma submissão
type Outcome struct {
	Status   OutcomeStatus `json:"status"`
	RecordID string        `json:"record_id,omitempty"`
	Coupon   string        `json:"coupon,omitempty"`
}

// RedemptionStatus é o estado local de sincronização do resgate
type RedemptionStatus string

const (
	StateSynced  RedemptionStatus = "synced"
	StatePending RedemptionStatus = "pending"
	StateFailed  RedemptionStatus = "failed"
)

// RedemptionState é o valor exibido do resgate de um registro.
// Em StateFailed, Value já foi revertido para LastGood.
type RedemptionState struct {
	RecordID string           `json:"record_id"`
	Status   RedemptionStatus `json:"status"`
	Value    bool             `json:"redeemed"`
	LastGood bool             `json:"last_good"`
}
