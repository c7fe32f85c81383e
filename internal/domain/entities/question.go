package entities

// QuestionType identifica o tipo de uma pergunta do questionário
type QuestionType string

const (
	QuestionSingleChoice   QuestionType = "single_choice"
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionRating         QuestionType = "rating"
	QuestionText           QuestionType = "text"
	QuestionImageSelect    QuestionType = "image_select"
)

// Identificadores de perguntas usados fora do registro (deduplicação, leads e cupom)
const (
	QuestionIDName     = "name"
	QuestionIDWhatsapp = "whatsapp"

	// Respostas sintéticas anexadas pelo sistema, nunca exibidas no questionário
	QuestionIDCouponCode     = "coupon_code"
	QuestionIDCouponRedeemed = "coupon_redeemed"
)

// Option representa uma alternativa de uma pergunta de escolha
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Emoji string `json:"emoji,omitempty"`
	Image string `json:"image,omitempty"`
}

// Question representa a definição imutável de uma pergunta
type Question struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type"`
	Text        string       `json:"text"`
	Subtext     string       `json:"subtext,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
	Options     []Option     `json:"options,omitempty"`
	Required    bool         `json:"required"`
}

// IsChoice indica se a resposta esperada é um id de opção
func (q Question) IsChoice() bool {
	return q.Type == QuestionSingleChoice || q.Type == QuestionImageSelect
}

// OptionLabel retorna o rótulo de uma opção, ou false se o id não existir
func (q Question) OptionLabel(optionID string) (string, bool) {
	for _, opt := range q.Options {
		if opt.ID == optionID {
			return opt.Label, true
		}
	}
	return "", false
}

// HasOption verifica se o id pertence às opções da pergunta
func (q Question) HasOption(optionID string) bool {
	_, ok := q.OptionLabel(optionID)
	return ok
}
