package usecases

import (
	"context"
	"strings"

	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/repositories"
	"github.com/google/uuid"
)

// DefaultCouponPrefix é usado quando COUPON_PREFIX não está definido
const DefaultCouponPrefix = "VIOR"

// SubmissionUseCase é a porta de entrada das pesquisas concluídas: deduplica pelo
// WhatsApp, grava e emite o cupom do participante.
//
// A verificação e a gravação são duas chamadas independentes ao backend, sem trava:
// duas submissões simultâneas com o mesmo WhatsApp podem ser gravadas.
type SubmissionUseCase struct {
	repo      repositories.SurveyRepository
	newCoupon func() string
}

// NewSubmissionUseCase cria uma nova instância de SubmissionUseCase
func NewSubmissionUseCase(repo repositories.SurveyRepository, couponPrefix string) *SubmissionUseCase {
	if couponPrefix == "" {
		couponPrefix = DefaultCouponPrefix
	}
	return &SubmissionUseCase{
		repo:      repo,
		newCoupon: func() string { return NewCouponCode(couponPrefix) },
	}
}

// WithCouponGenerator troca o gerador de cupons (testes)
func (u *SubmissionUseCase) WithCouponGenerator(gen func() string) *SubmissionUseCase {
	u.newCoupon = gen
	return u
}

// NewCouponCode gera um código PREFIXO-XXXXXX com letras maiúsculas e dígitos
func NewCouponCode(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + strings.ToUpper(raw[:6])
}

// Submit grava a pesquisa se o WhatsApp ainda não participou
func (u *SubmissionUseCase) Submit(ctx context.Context, responses []entities.Response) (entities.Outcome, error) {
	contact := entities.ContactOf(responses)
	if strings.TrimSpace(contact) == "" {
		return entities.Outcome{}, entities.ErrMissingIdentity
	}

	existing, err := u.repo.FindByContact(ctx, contact)
	if err != nil {
		return entities.Outcome{}, err
	}
	if len(existing) > 0 {
		return entities.Outcome{Status: entities.OutcomeAlreadyParticipated}, nil
	}

	coupon := u.newCoupon()
	record, err := u.repo.Insert(ctx, withCoupon(responses, coupon))
	if err != nil {
		return entities.Outcome{}, err
	}

	return entities.Outcome{
		Status:   entities.OutcomeAccepted,
		RecordID: record.ID,
		Coupon:   coupon,
	}, nil
}

// withCoupon descarta respostas sintéticas enviadas pelo cliente e anexa o cupom emitido
func withCoupon(responses []entities.Response, coupon string) []entities.Response {
	out := make([]entities.Response, 0, len(responses)+1)
	for _, r := range responses {
		if r.QuestionID == entities.QuestionIDCouponCode || r.QuestionID == entities.QuestionIDCouponRedeemed {
			continue
		}
		out = append(out, r)
	}
	return append(out, entities.Response{
		QuestionID: entities.QuestionIDCouponCode,
		Answer:     entities.TextAnswer(coupon),
	})
}
