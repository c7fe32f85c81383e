package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// AnswerKind identifica a variante de uma resposta
type AnswerKind int

const (
	KindNone AnswerKind = iota
	KindSingle
	KindMulti
	KindText
	KindRating
)

// Answer é a variante tipada de uma resposta: Single(id), Multi(ids), Text ou Rating.
// No formato persistido é a união JSON string | string[] | number; strings lidas
// do banco chegam como KindText e são interpretadas conforme o tipo da pergunta.
type Answer struct {
	Kind    AnswerKind
	Text    string
	Options []string
	Number  float64
}

// SingleAnswer cria uma resposta de escolha única
func SingleAnswer(optionID string) Answer {
	return Answer{Kind: KindSingle, Text: optionID}
}

// MultiAnswer cria uma resposta de múltipla escolha
func MultiAnswer(optionIDs ...string) Answer {
	return Answer{Kind: KindMulti, Options: append([]string{}, optionIDs...)}
}

// TextAnswer cria uma resposta de texto livre
func TextAnswer(text string) Answer {
	return Answer{Kind: KindText, Text: text}
}

// RatingAnswer cria uma resposta de nota
func RatingAnswer(score int) Answer {
	return Answer{Kind: KindRating, Number: float64(score)}
}

// IsEmpty indica se a resposta não carrega valor utilizável
func (a Answer) IsEmpty() bool {
	switch a.Kind {
	case KindSingle, KindText:
		return strings.TrimSpace(a.Text) == ""
	case KindMulti:
		return len(a.Options) == 0
	case KindRating:
		return false
	default:
		return true
	}
}

// Value retorna o valor textual de respostas simples (id de opção ou texto)
func (a Answer) Value() string {
	if a.Kind == KindSingle || a.Kind == KindText {
		return a.Text
	}
	return ""
}

// Score retorna a nota numérica, se a resposta for numérica
func (a Answer) Score() (float64, bool) {
	if a.Kind != KindRating {
		return 0, false
	}
	return a.Number, true
}

// String formata a resposta para exportação (listas unidas por ";")
func (a Answer) String() string {
	switch a.Kind {
	case KindSingle, KindText:
		return a.Text
	case KindMulti:
		return strings.Join(a.Options, ";")
	case KindRating:
		return strconv.FormatFloat(a.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// MarshalJSON grava a resposta na forma da união persistida
func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case KindSingle, KindText:
		return json.Marshal(a.Text)
	case KindMulti:
		if a.Options == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(a.Options)
	case KindRating:
		if a.Number == math.Trunc(a.Number) && math.Abs(a.Number) < 1<<53 {
			return []byte(strconv.FormatInt(int64(a.Number), 10)), nil
		}
		return json.Marshal(a.Number)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON lê a união string | string[] | number (booleanos viram texto)
func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Answer{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = TextAnswer(s)
	case '[':
		var items []interface{}
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		opts := make([]string, 0, len(items))
		for _, item := range items {
			opts = append(opts, fmt.Sprint(item))
		}
		*a = Answer{Kind: KindMulti, Options: opts}
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*a = TextAnswer(strconv.FormatBool(b))
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("resposta com formato desconhecido: %s", string(data))
		}
		*a = Answer{Kind: KindRating, Number: n}
	}
	return nil
}

// Response associa uma resposta a uma pergunta
type Response struct {
	QuestionID string `json:"questionId"`
	Answer     Answer `json:"answer"`
}

// SurveyRecord representa uma pesquisa completa de um participante
type SurveyRecord struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	Responses []Response `json:"responses"`
}

// Answer retorna a resposta de uma pergunta, se existir
func (r SurveyRecord) Answer(questionID string) (Answer, bool) {
	for _, resp := range r.Responses {
		if resp.QuestionID == questionID {
			return resp.Answer, true
		}
	}
	return Answer{}, false
}

// Value retorna o valor textual da resposta de uma pergunta ("" se ausente)
func (r SurveyRecord) Value(questionID string) string {
	ans, ok := r.Answer(questionID)
	if !ok {
		return ""
	}
	return ans.Value()
}

// Contact retorna o WhatsApp informado, chave de deduplicação
func (r SurveyRecord) Contact() string {
	return ContactOf(r.Responses)
}

// Coupon retorna o código de cupom emitido para o participante
func (r SurveyRecord) Coupon() string {
	return r.Value(QuestionIDCouponCode)
}

// Redeemed indica se o cupom já foi resgatado
func (r SurveyRecord) Redeemed() bool {
	return r.Value(QuestionIDCouponRedeemed) == "true"
}

// WithRedeemed retorna uma cópia das respostas com a marca de resgate anexada ou removida
func (r SurveyRecord) WithRedeemed(redeemed bool) []Response {
	out := make([]Response, 0, len(r.Responses)+1)
	for _, resp := range r.Responses {
		if resp.QuestionID == QuestionIDCouponRedeemed {
			continue
		}
		out = append(out, resp)
	}
	if redeemed {
		out = append(out, Response{QuestionID: QuestionIDCouponRedeemed, Answer: TextAnswer("true")})
	}
	return out
}

// ContactOf extrai o WhatsApp de um conjunto de respostas
func ContactOf(responses []Response) string {
	for _, resp := range responses {
		if resp.QuestionID == QuestionIDWhatsapp {
			return resp.Answer.Value()
		}
	}
	return ""
}
