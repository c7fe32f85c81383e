package catalog

import (
	"testing"

	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultQuestionnaire(t *testing.T) {
	r := Default()

	require.Equal(t, 12, r.Len())
	assert.Equal(t, QuestionCategory, r.At(0).ID)
	assert.Equal(t, QuestionWhatsapp, r.At(r.Len()-1).ID)

	seen := map[string]bool{}
	for i, q := range r.Questions() {
		assert.False(t, seen[q.ID], "id repetido: %s", q.ID)
		seen[q.ID] = true
		assert.Equal(t, i, r.Index(q.ID))
		if q.IsChoice() || q.Type == entities.QuestionMultipleChoice {
			assert.NotEmpty(t, q.Options, q.ID)
		}
	}

	whatsapp, ok := r.Find(QuestionWhatsapp)
	require.True(t, ok)
	assert.True(t, whatsapp.Required)
	brands, _ := r.Find(QuestionBrands)
	assert.False(t, brands.Required)
}

func TestLabel(t *testing.T) {
	r := Default()

	assert.Equal(t, "Maquiagem", r.Label(QuestionCategory, "makeup"))
	assert.Equal(t, "hair", r.Label(QuestionCategory, "hair"))
	assert.Equal(t, "x", r.Label("desconhecida", "x"))
	assert.Equal(t, -1, r.Index("desconhecida"))
}

func TestRegistryIsImmutable(t *testing.T) {
	r := Default()

	qs := r.Questions()
	qs[0].ID = "alterado"

	assert.Equal(t, QuestionCategory, r.At(0).ID)
}

func TestShareMessage(t *testing.T) {
	msg := ShareMessage("https://vior.example")

	assert.Contains(t, msg, "https://vior.example")
	assert.NotContains(t, msg, "[LINK]")
}

func TestIsCategorical(t *testing.T) {
	r := Default()

	assert.True(t, r.IsCategorical(QuestionTicket))
	assert.False(t, r.IsCategorical(QuestionBrands))
	assert.False(t, r.IsCategorical(QuestionOnlineInterest))
}
