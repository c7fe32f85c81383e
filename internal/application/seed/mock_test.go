package seed

import (
	"context"
	"testing"

	"github.com/PavaniTiago/vior-insights-api/internal/application/intake"
	"github.com/PavaniTiago/vior-insights-api/internal/application/usecases"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/catalog"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
	"github.com/PavaniTiago/vior-insights-api/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondentAnswersAreValid(t *testing.T) {
	registry := catalog.Default()
	gen := NewGenerator(registry, 7)

	for i := 0; i < 20; i++ {
		responses := gen.Respondent(i)
		for _, r := range responses {
			q, ok := registry.Find(r.QuestionID)
			require.True(t, ok, r.QuestionID)
			_, err := intake.Validate(q, r.Answer)
			assert.NoError(t, err, "participante %d, pergunta %s", i, r.QuestionID)
		}
	}
}

func TestRespondentIdentity(t *testing.T) {
	gen := NewGenerator(catalog.Default(), 1)

	assert.Equal(t, "(11) 99999-1003", entities.ContactOf(gen.Respondent(3)))
}

func TestSameSeedSameBatch(t *testing.T) {
	a := NewGenerator(catalog.Default(), 42)
	b := NewGenerator(catalog.Default(), 42)

	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Respondent(i), b.Respondent(i))
	}
}

func TestRunIsIdempotentPerWhatsapp(t *testing.T) {
	repo := repository.NewMemorySurveyRepository()
	submission := usecases.NewSubmissionUseCase(repo, "VIOR")
	ctx := context.Background()

	summary, err := NewGenerator(catalog.Default(), 1).Run(ctx, submission, DefaultCount)
	require.NoError(t, err)
	assert.Equal(t, Summary{Accepted: DefaultCount}, summary)

	summary, err = NewGenerator(catalog.Default(), 2).Run(ctx, submission, DefaultCount)
	require.NoError(t, err)
	assert.Equal(t, Summary{AlreadyParticipated: DefaultCount}, summary)

	records, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, DefaultCount)
}
