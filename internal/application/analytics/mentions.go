package analytics

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// TopMentions é o tamanho do ranking de marcas e produtos
	TopMentions = 5
	// minMentionLength descarta fragmentos como "e", "da", "ok"
	minMentionLength = 3
)

// mentionSeparator divide o texto livre em vírgula, ponto e vírgula, barra, quebra de linha
// e nas conjunções "e"/"and" entre espaços
var mentionSeparator = regexp.MustCompile(`(?i)[,;/\n]|\s+(?:e|and)\s+`)

// SplitMentions quebra um texto livre em menções normalizadas, na ordem em que aparecem
func SplitMentions(text string) []string {
	parts := mentionSeparator.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		name := NormalizeMention(part)
		if utf8.RuneCountInString(name) < minMentionLength {
			continue
		}
		out = append(out, name)
	}
	return out
}

// NormalizeMention remove espaços extras e deixa cada palavra com inicial maiúscula.
// cases.Caser guarda estado, por isso um novo é criado a cada chamada.
func NormalizeMention(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	return cases.Title(language.BrazilianPortuguese).String(s)
}

// mentionCounter acumula menções preservando a ordem da primeira aparição
type mentionCounter struct {
	order  []string
	counts map[string]int
}

func newMentionCounter() *mentionCounter {
	return &mentionCounter{counts: make(map[string]int)}
}

func (m *mentionCounter) add(text string) {
	for _, name := range SplitMentions(text) {
		if _, seen := m.counts[name]; !seen {
			m.order = append(m.order, name)
		}
		m.counts[name]++
	}
}

// top ordena por contagem decrescente; empates mantêm a ordem da primeira aparição
func (m *mentionCounter) top(n int) []entities.Mention {
	out := make([]entities.Mention, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, entities.Mention{Name: name, Count: m.counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// ExtractMentions conta as menções de uma lista de textos livres e devolve o top N
func ExtractMentions(texts []string, n int) []entities.Mention {
	counter := newMentionCounter()
	for _, text := range texts {
		counter.add(text)
	}
	return counter.top(n)
}
