package export

import (
	"strings"

	"github.com/PavaniTiago/vior-insights-api/internal/domain/catalog"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
)

// CSVFilename é o nome sugerido no download
const CSVFilename = "pesquisa_vior_store.csv"

// ToCSV gera o CSV das pesquisas: cabeçalho com o texto das perguntas na ordem do
// registro e uma linha por pesquisa. Toda célula vai entre aspas e listas são unidas por ";".
// Sem pesquisas, o resultado é só o cabeçalho.
func ToCSV(registry *catalog.Registry, records []entities.SurveyRecord) string {
	questions := registry.Questions()

	var b strings.Builder
	for i, q := range questions {
		if i > 0 {
			b.WriteByte(',')
		}
		writeQuoted(&b, q.Text)
	}

	for _, rec := range records {
		b.WriteByte('\n')
		for i, q := range questions {
			if i > 0 {
				b.WriteByte(',')
			}
			ans, _ := rec.Answer(q.ID)
			writeQuoted(&b, ans.String())
		}
	}
	return b.String()
}

func writeQuoted(b *strings.Builder, value string) {
	b.WriteByte('"')
	b.WriteString(strings.ReplaceAll(value, `"`, `""`))
	b.WriteByte('"')
}
