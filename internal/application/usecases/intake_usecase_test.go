package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/PavaniTiago/vior-insights-api/internal/application/intake"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/catalog"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIntake(t *testing.T, repo *flakyRepository) *IntakeUseCase {
	t.Helper()
	submission := NewSubmissionUseCase(repo, "")
	return NewIntakeUseCase(catalog.Default(), newTestCache(t), submission, time.Hour)
}

// answerAll responde todas as perguntas a partir da atual e retorna o último passo
func answerAll(t *testing.T, u *IntakeUseCase, id string, answers map[string]json.RawMessage) (IntakeView, error) {
	t.Helper()
	ctx := context.Background()
	view, err := u.Get(ctx, id)
	require.NoError(t, err)
	for !view.Completed {
		require.NotNil(t, view.Question)
		view, err = u.Answer(ctx, id, answers[view.Question.ID])
		if err != nil {
			return view, err
		}
	}
	return view, nil
}

func TestIntakeCompleteFlow(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepository()
	u := newIntake(t, repo)

	start, err := u.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, start.Step)
	assert.Equal(t, catalog.Default().Len(), start.Total)
	assert.Equal(t, catalog.QuestionCategory, start.Question.ID)
	assert.False(t, start.CanGoBack)

	view, err := answerAll(t, u, start.ID, completeAnswers("(11) 99999-1000"))
	require.NoError(t, err)

	assert.True(t, view.Completed)
	assert.Equal(t, 100, view.Progress)
	require.NotNil(t, view.Outcome)
	assert.Equal(t, entities.OutcomeAccepted, view.Outcome.Status)
	assert.NotEmpty(t, view.Outcome.Coupon)

	// rascunho aceito é apagado
	_, err = u.Get(ctx, start.ID)
	assert.ErrorIs(t, err, entities.ErrSessionNotFound)

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "(11) 99999-1000", records[0].Contact())
	assert.Equal(t, view.Outcome.Coupon, records[0].Coupon())
}

func TestIntakeSecondParticipationWithSameWhatsapp(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepository()
	u := newIntake(t, repo)

	first, err := u.Start(ctx)
	require.NoError(t, err)
	_, err = answerAll(t, u, first.ID, completeAnswers("(11) 99999-1000"))
	require.NoError(t, err)

	second, err := u.Start(ctx)
	require.NoError(t, err)
	view, err := answerAll(t, u, second.ID, completeAnswers("(11) 99999-1000"))
	require.NoError(t, err)

	require.NotNil(t, view.Outcome)
	assert.Equal(t, entities.OutcomeAlreadyParticipated, view.Outcome.Status)

	records, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestIntakeValidationKeepsStep(t *testing.T) {
	ctx := context.Background()
	u := newIntake(t, newFlakyRepository())

	start, err := u.Start(ctx)
	require.NoError(t, err)

	view, err := u.Answer(ctx, start.ID, json.RawMessage(`"hair"`))
	var validation *entities.ValidationError
	require.True(t, errors.As(err, &validation))
	assert.Equal(t, intake.MsgInvalidOption, validation.Message)
	assert.Equal(t, catalog.QuestionCategory, validation.QuestionID)
	assert.Equal(t, 0, view.Step)
	assert.Equal(t, start.ID, view.ID)

	view, err = u.Answer(ctx, start.ID, nil)
	require.Error(t, err)
	assert.Equal(t, 0, view.Step)
}

func TestIntakeBackKeepsAnswer(t *testing.T) {
	ctx := context.Background()
	u := newIntake(t, newFlakyRepository())

	start, err := u.Start(ctx)
	require.NoError(t, err)
	view, err := u.Answer(ctx, start.ID, json.RawMessage(`"skincare"`))
	require.NoError(t, err)
	assert.Equal(t, 1, view.Step)
	assert.True(t, view.CanGoBack)

	view, err = u.Back(ctx, start.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, view.Step)
	require.NotNil(t, view.Answer)
	assert.Equal(t, "skincare", view.Answer.Value())

	// voltar na primeira pergunta não faz nada
	view, err = u.Back(ctx, start.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, view.Step)
}

func TestIntakeUnknownSession(t *testing.T) {
	ctx := context.Background()
	u := newIntake(t, newFlakyRepository())

	_, err := u.Get(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, entities.ErrSessionNotFound)

	_, err = u.Get(ctx, "5b1f7a8e-2c1d-4e5f-9a0b-1c2d3e4f5a6b")
	assert.ErrorIs(t, err, entities.ErrSessionNotFound)
}

func TestIntakeRetryAfterPersistenceFailure(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepository()
	u := newIntake(t, repo)

	start, err := u.Start(ctx)
	require.NoError(t, err)

	repo.set(true, false, false)
	view, err := answerAll(t, u, start.ID, completeAnswers("(11) 97777-7777"))
	assert.ErrorIs(t, err, entities.ErrPersistence)
	assert.True(t, view.Completed)
	assert.Nil(t, view.Outcome)

	// o rascunho concluído continua disponível
	view, err = u.Get(ctx, start.ID)
	require.NoError(t, err)
	assert.True(t, view.Completed)

	repo.set(false, false, false)
	view, err = u.Retry(ctx, start.ID)
	require.NoError(t, err)
	require.NotNil(t, view.Outcome)
	assert.Equal(t, entities.OutcomeAccepted, view.Outcome.Status)
}

func TestIntakeRetryBeforeCompletion(t *testing.T) {
	ctx := context.Background()
	u := newIntake(t, newFlakyRepository())

	start, err := u.Start(ctx)
	require.NoError(t, err)

	_, err = u.Retry(ctx, start.ID)
	assert.ErrorIs(t, err, entities.ErrSurveyNotCompleted)
}

func TestSubmitDirect(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepository()
	u := newIntake(t, repo)

	outcome, err := u.SubmitDirect(ctx, rawResponses(completeAnswers("(31) 93333-3333")))
	require.NoError(t, err)
	assert.Equal(t, entities.OutcomeAccepted, outcome.Status)

	outcome, err = u.SubmitDirect(ctx, rawResponses(completeAnswers("(31) 93333-3333")))
	require.NoError(t, err)
	assert.Equal(t, entities.OutcomeAlreadyParticipated, outcome.Status)
}

func TestSubmitDirectValidation(t *testing.T) {
	ctx := context.Background()
	u := newIntake(t, newFlakyRepository())

	answers := completeAnswers("(31) 93333-3333")
	delete(answers, catalog.QuestionWhatsapp)
	_, err := u.SubmitDirect(ctx, rawResponses(answers))
	assert.ErrorIs(t, err, entities.ErrMissingIdentity)

	answers = completeAnswers("(31) 93333-3333")
	answers[catalog.QuestionOnlineInterest] = json.RawMessage(`9`)
	_, err = u.SubmitDirect(ctx, rawResponses(answers))
	var validation *entities.ValidationError
	require.True(t, errors.As(err, &validation))
	assert.Equal(t, catalog.QuestionOnlineInterest, validation.QuestionID)
}
