package intake

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
)

// ParseAnswer converte o JSON recebido (string | string[] | number) na variante
// esperada pela pergunta. A validação de conteúdo fica com Validate.
func ParseAnswer(q entities.Question, raw json.RawMessage) (entities.Answer, error) {
	var answer entities.Answer
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &answer); err != nil {
			return entities.Answer{}, entities.NewValidationError(q.ID, MsgUnexpectedType)
		}
	}

	switch q.Type {
	case entities.QuestionSingleChoice, entities.QuestionImageSelect:
		if answer.Kind == entities.KindText {
			return entities.SingleAnswer(answer.Text), nil
		}
	case entities.QuestionMultipleChoice:
		// uma única opção enviada como string é aceita como lista de um item
		if answer.Kind == entities.KindText && answer.Text != "" {
			return entities.MultiAnswer(answer.Text), nil
		}
	case entities.QuestionRating:
		if answer.Kind == entities.KindText {
			n, err := strconv.ParseFloat(strings.TrimSpace(answer.Text), 64)
			if err != nil {
				if strings.TrimSpace(answer.Text) == "" {
					return entities.Answer{}, nil
				}
				return entities.Answer{}, entities.NewValidationError(q.ID, MsgInvalidRating)
			}
			return entities.Answer{Kind: entities.KindRating, Number: n}, nil
		}
	}
	return answer, nil
}
