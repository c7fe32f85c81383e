package catalog

import (
	"strings"

	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
)

// Ids das perguntas do questionário da Vior Store
const (
	QuestionCategory       = "category"
	QuestionStyle          = "style"
	QuestionFrequency      = "frequency"
	QuestionLocation       = "location"
	QuestionTicket         = "ticket"
	QuestionProducts       = "products"
	QuestionBrands         = "brands"
	QuestionTesting        = "testing"
	QuestionOnlineInterest = "online_interest"
	QuestionAge            = "age"
	QuestionName           = entities.QuestionIDName
	QuestionWhatsapp       = entities.QuestionIDWhatsapp

	QuestionCouponCode     = entities.QuestionIDCouponCode
	QuestionCouponRedeemed = entities.QuestionIDCouponRedeemed
)

// SharingMessage é o convite enviado às amigas; [LINK] é trocado pelo endereço público
const SharingMessage = `
Olá! 🌸
A Vior Store quer saber o que você mais ama!
Participe da nossa pesquisa rápida (2 min) e concorra a um **Kit de Cosméticos**! 🎁✨
Responda aqui: [LINK]
`

// ShareMessage substitui o marcador de link da mensagem de convite
func ShareMessage(link string) string {
	return strings.Replace(SharingMessage, "[LINK]", link, 1)
}

// Registry é a lista ordenada e imutável de perguntas
type Registry struct {
	questions []entities.Question
	index     map[string]int
}

// NewRegistry cria um registro a partir de uma lista de perguntas
func NewRegistry(questions []entities.Question) *Registry {
	r := &Registry{
		questions: make([]entities.Question, len(questions)),
		index:     make(map[string]int, len(questions)),
	}
	copy(r.questions, questions)
	for i, q := range r.questions {
		r.index[q.ID] = i
	}
	return r
}

// Questions retorna uma cópia das perguntas na ordem do questionário
func (r *Registry) Questions() []entities.Question {
	out := make([]entities.Question, len(r.questions))
	copy(out, r.questions)
	return out
}

// Len retorna o número de perguntas
func (r *Registry) Len() int {
	return len(r.questions)
}

// At retorna a pergunta na posição i
func (r *Registry) At(i int) entities.Question {
	return r.questions[i]
}

// Find busca uma pergunta pelo id
func (r *Registry) Find(id string) (entities.Question, bool) {
	i, ok := r.index[id]
	if !ok {
		return entities.Question{}, false
	}
	return r.questions[i], true
}

// Index retorna a posição de uma pergunta, ou -1
func (r *Registry) Index(id string) int {
	i, ok := r.index[id]
	if !ok {
		return -1
	}
	return i
}

// Label resolve o rótulo de uma opção; ids desconhecidos são devolvidos sem alteração
func (r *Registry) Label(questionID, optionID string) string {
	q, ok := r.Find(questionID)
	if !ok {
		return optionID
	}
	if label, ok := q.OptionLabel(optionID); ok {
		return label
	}
	return optionID
}

// IsCategorical indica se a pergunta aceita filtro do dashboard (escolha única)
func (r *Registry) IsCategorical(questionID string) bool {
	q, ok := r.Find(questionID)
	return ok && q.IsChoice()
}

var defaultRegistry = NewRegistry([]entities.Question{
	{
		ID:      QuestionCategory,
		Type:    entities.QuestionImageSelect,
		Text:    "Para começar, qual dessas categorias você mais ama comprar? 😍",
		Subtext: "Selecione a sua favorita.",
		Options: []entities.Option{
			{ID: "makeup", Label: "Maquiagem", Emoji: "💄", Image: "/imagens/Maquiagem.png"},
			{ID: "skincare", Label: "Skincare", Emoji: "🧴", Image: "/imagens/Skincare.png"},
			{ID: "accessories", Label: "Acessórios", Emoji: "💍", Image: "/imagens/Acessorios.png"},
			{ID: "perfume", Label: "Perfumes", Emoji: "✨", Image: "/imagens/Perfumes.png"},
		},
		Required: true,
	},
	{
		ID:      QuestionStyle,
		Type:    entities.QuestionSingleChoice,
		Text:    "Como você definiria seu estilo hoje?",
		Subtext: "Pergunta rápida e divertida!",
		Options: []entities.Option{
			{ID: "clean_girl", Label: "Clean Girl / Natural", Emoji: "🌿"},
			{ID: "glam", Label: "Full Glam / Poderosa", Emoji: "💎"},
			{ID: "creative", Label: "Criativa / Colorida", Emoji: "🎨"},
			{ID: "classic", Label: "Clássica / Elegante", Emoji: "👠"},
		},
		Required: true,
	},
	{
		ID:   QuestionFrequency,
		Type: entities.QuestionSingleChoice,
		Text: "Com que frequência você costuma se presentear com esses produtos?",
		Options: []entities.Option{
			{ID: "weekly", Label: "Toda semana (viciada!)", Emoji: "📅"},
			{ID: "monthly", Label: "Uma vez por mês", Emoji: "🗓️"},
			{ID: "quarterly", Label: "A cada 3 meses", Emoji: "🍂"},
			{ID: "rarely", Label: "Só quando acaba", Emoji: "🛑"},
		},
		Required: true,
	},
	{
		ID:      QuestionLocation,
		Type:    entities.QuestionMultipleChoice,
		Text:    "Onde você costuma encontrar seus produtinhos?",
		Subtext: "Pode marcar mais de um.",
		Options: []entities.Option{
			{ID: "shopee", Label: "Shopee", Emoji: "🛍️"},
			{ID: "shein", Label: "Shein", Emoji: "👗"},
			{ID: "instagram", Label: "Lojas no Instagram", Emoji: "📸"},
			{ID: "amazon", Label: "Amazon", Emoji: "📦"},
			{ID: "mercadolivre", Label: "Mercado Livre", Emoji: "🤝"},
			{ID: "physical", Label: "Loja Física / Shopping", Emoji: "🏢"},
			{ID: "drugstore", Label: "Farmácia", Emoji: "💊"},
		},
		Required: true,
	},
	{
		ID:   QuestionTicket,
		Type: entities.QuestionSingleChoice,
		Text: "Em média, quanto você investe por mês em beleza?",
		Options: []entities.Option{
			{ID: "low", Label: "Até R$ 50,00", Emoji: "🪙"},
			{ID: "medium", Label: "Entre R$ 50 e R$ 150", Emoji: "💵"},
			{ID: "high", Label: "Entre R$ 150 e R$ 300", Emoji: "💳"},
			{ID: "premium", Label: "Mais de R$ 300", Emoji: "💎"},
		},
		Required: true,
	},
	{
		ID:          QuestionProducts,
		Type:        entities.QuestionText,
		Text:        "Quais são os 3 produtos que você usa TODO dia?",
		Placeholder: "Ex: Protetor solar, rímel e lip tint...",
		Required:    true,
	},
	{
		ID:          QuestionBrands,
		Type:        entities.QuestionText,
		Text:        "Tem alguma marca do coração? ❤️",
		Subtext:     "Opcional, mas adoramos saber!",
		Placeholder: "Ex: Rare Beauty, Boca Rosa, Simple...",
		Required:    false,
	},
	{
		ID:   QuestionTesting,
		Type: entities.QuestionSingleChoice,
		Text: "Você gosta de testar novidades e marcas diferentes?",
		Options: []entities.Option{
			{ID: "yes", Label: "Sim! Adoro ser a primeira a testar", Emoji: "🚀"},
			{ID: "maybe", Label: "Depende, se tiver boas reviews", Emoji: "⭐"},
			{ID: "no", Label: "Não, prefiro os meus clássicos", Emoji: "🔒"},
		},
		Required: true,
	},
	{
		ID:       QuestionOnlineInterest,
		Type:     entities.QuestionRating,
		Text:     "De 1 a 5, o quanto você prefere comprar online vs loja física?",
		Subtext:  "1 = Só loja física, 5 = Só compro online",
		Required: true,
	},
	{
		ID:   QuestionAge,
		Type: entities.QuestionSingleChoice,
		Text: "Para finalizar, qual sua faixa etária?",
		Options: []entities.Option{
			{ID: "under_18", Label: "Menos de 18 anos", Emoji: "🎓"},
			{ID: "18_24", Label: "18 - 24 anos", Emoji: "🎒"},
			{ID: "25_34", Label: "25 - 34 anos", Emoji: "💼"},
			{ID: "35_plus", Label: "35+ anos", Emoji: "🥂"},
		},
		Required: true,
	},
	{
		ID:          QuestionName,
		Type:        entities.QuestionText,
		Text:        "Qual seu nome completo?",
		Subtext:     "Para identificarmos você no sorteio.",
		Placeholder: "Ex: Ana Clara da Silva",
		Required:    true,
	},
	{
		ID:          QuestionWhatsapp,
		Type:        entities.QuestionText,
		Text:        "Qual seu WhatsApp com DDD?",
		Subtext:     "⚠️ Atenção: O sorteio será realizado por este número. Preencha corretamente!",
		Placeholder: "(00) 99999-9999",
		Required:    true,
	},
})

// Default retorna o questionário da Vior Store
func Default() *Registry {
	return defaultRegistry
}
