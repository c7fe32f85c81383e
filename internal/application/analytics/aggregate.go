package analytics

import (
	"math"
	"strconv"

	"github.com/PavaniTiago/vior-insights-api/internal/domain/catalog"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
)

// TopCategoryPlaceholder é exibido quando nenhuma categoria foi respondida
const TopCategoryPlaceholder = "-"

// CategoricalQuestions são as perguntas de escolha única com tabela de frequência
var CategoricalQuestions = []string{
	catalog.QuestionCategory,
	catalog.QuestionAge,
	catalog.QuestionStyle,
	catalog.QuestionFrequency,
	catalog.QuestionTicket,
	catalog.QuestionTesting,
}

// MultiSelectQuestions contam uma vez por opção marcada
var MultiSelectQuestions = []string{
	catalog.QuestionLocation,
}

const (
	ratingQuestion = catalog.QuestionOnlineInterest
	minScore       = 1
	maxScore       = 5
)

// Matches indica se a pesquisa passa no filtro. Em perguntas de múltipla escolha basta conter a opção.
func Matches(rec entities.SurveyRecord, filter entities.Filter) bool {
	if filter.IsAll() {
		return true
	}
	ans, ok := rec.Answer(filter.QuestionID)
	if !ok {
		return false
	}
	if ans.Kind == entities.KindMulti {
		for _, opt := range ans.Options {
			if opt == filter.Value {
				return true
			}
		}
		return false
	}
	return ans.Value() == filter.Value
}

// ApplyFilter devolve as pesquisas que passam no filtro, mantendo a ordem
func ApplyFilter(records []entities.SurveyRecord, filter entities.Filter) []entities.SurveyRecord {
	if filter.IsAll() {
		return records
	}
	out := make([]entities.SurveyRecord, 0, len(records))
	for _, rec := range records {
		if Matches(rec, filter) {
			out = append(out, rec)
		}
	}
	return out
}

// frequency conta ids de opção preservando a ordem da primeira aparição
type frequency struct {
	order  []string
	counts map[string]int
}

func newFrequency() *frequency {
	return &frequency{counts: make(map[string]int)}
}

func (f *frequency) add(id string) {
	if id == "" {
		return
	}
	if _, seen := f.counts[id]; !seen {
		f.order = append(f.order, id)
	}
	f.counts[id]++
}

// table resolve os rótulos: opções conhecidas na ordem do registro, ids desconhecidos depois
func (f *frequency) table(registry *catalog.Registry, questionID string) []entities.LabelCount {
	out := make([]entities.LabelCount, 0, len(f.counts))
	known := make(map[string]bool)
	if q, ok := registry.Find(questionID); ok {
		for _, opt := range q.Options {
			known[opt.ID] = true
			if n := f.counts[opt.ID]; n > 0 {
				out = append(out, entities.LabelCount{ID: opt.ID, Label: opt.Label, Count: n})
			}
		}
	}
	for _, id := range f.order {
		if known[id] {
			continue
		}
		out = append(out, entities.LabelCount{ID: id, Label: id, Count: f.counts[id]})
	}
	return out
}

type ratingAccumulator struct {
	sum       float64
	count     int
	histogram map[int]int
}

func newRatingAccumulator() *ratingAccumulator {
	h := make(map[int]int, maxScore)
	for s := minScore; s <= maxScore; s++ {
		h[s] = 0
	}
	return &ratingAccumulator{histogram: h}
}

func (r *ratingAccumulator) add(score float64) {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return
	}
	r.sum += score
	r.count++
	bucket := int(math.Round(score))
	if bucket >= minScore && bucket <= maxScore {
		r.histogram[bucket]++
	}
}

func (r *ratingAccumulator) stats() entities.RatingStats {
	return entities.RatingStats{
		Average:   FormatAverage(r.sum, r.count),
		Count:     r.count,
		Histogram: r.histogram,
	}
}

// FormatAverage arredonda a média para uma casa decimal; sem notas retorna "0"
func FormatAverage(sum float64, count int) string {
	if count == 0 {
		return "0"
	}
	mean := math.Round(sum/float64(count)*10) / 10
	return strconv.FormatFloat(mean, 'f', 1, 64)
}

// Aggregate calcula todas as estatísticas do dashboard em uma única passada.
// É uma função pura: mesma entrada, mesmo resultado, sem cache entre chamadas.
func Aggregate(registry *catalog.Registry, records []entities.SurveyRecord, filter entities.Filter) entities.AggregateStats {
	if filter.IsAll() {
		filter = entities.Filter{}
	}

	tables := make(map[string]*frequency, len(CategoricalQuestions)+len(MultiSelectQuestions))
	for _, qid := range CategoricalQuestions {
		tables[qid] = newFrequency()
	}
	for _, qid := range MultiSelectQuestions {
		tables[qid] = newFrequency()
	}
	rating := newRatingAccumulator()
	brands := newMentionCounter()
	products := newMentionCounter()

	var (
		total   int
		coupons int
		leads   []entities.Lead
	)

	for _, rec := range records {
		if !Matches(rec, filter) {
			continue
		}
		total++

		seen := make(map[string]bool, len(rec.Responses))
		for _, resp := range rec.Responses {
			// só a primeira resposta de cada pergunta conta, como em SurveyRecord.Answer
			if seen[resp.QuestionID] {
				continue
			}
			seen[resp.QuestionID] = true

			switch {
			case resp.QuestionID == ratingQuestion:
				if score, ok := resp.Answer.Score(); ok {
					rating.add(score)
				}
			case resp.QuestionID == catalog.QuestionBrands:
				brands.add(resp.Answer.Value())
			case resp.QuestionID == catalog.QuestionProducts:
				products.add(resp.Answer.Value())
			case resp.Answer.Kind == entities.KindMulti:
				if t, ok := tables[resp.QuestionID]; ok {
					for _, opt := range resp.Answer.Options {
						t.add(opt)
					}
				}
			default:
				if t, ok := tables[resp.QuestionID]; ok {
					t.add(resp.Answer.Value())
				}
			}
		}

		if rec.Coupon() != "" {
			coupons++
		}
		leads = append(leads, ProjectLead(registry, rec))
	}
	sortLeads(leads)
	if leads == nil {
		leads = []entities.Lead{}
	}

	stats := entities.AggregateStats{
		Filter:   filter,
		Tables:   make(map[string][]entities.LabelCount, len(tables)),
		Rating:   rating.stats(),
		Brands:   brands.top(TopMentions),
		Products: products.top(TopMentions),
		Leads:    leads,
	}
	for qid, t := range tables {
		stats.Tables[qid] = t.table(registry, qid)
	}

	stats.Summary = entities.DashboardSummary{
		Total:         total,
		AverageRating: stats.Rating.Average,
		TopCategory:   tables[catalog.QuestionCategory].top(registry, catalog.QuestionCategory),
		Coupons:       coupons,
	}
	return stats
}

// top retorna o rótulo mais frequente; empates ficam com o que apareceu primeiro
func (f *frequency) top(registry *catalog.Registry, questionID string) string {
	best := ""
	for _, id := range f.order {
		if best == "" || f.counts[id] > f.counts[best] {
			best = id
		}
	}
	if best == "" {
		return TopCategoryPlaceholder
	}
	return registry.Label(questionID, best)
}
