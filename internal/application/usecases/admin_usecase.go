package usecases

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/repositories"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const adminSessionPrefix = "admin:"

// AdminSession é o token entregue após o PIN correto
type AdminSession struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AdminUseCase controla o acesso ao painel por um PIN compartilhado.
// O JWT carrega o id da sessão; a sessão em si fica no KeyValueStore para permitir logout.
type AdminUseCase struct {
	pin      string
	secret   []byte
	ttl      time.Duration
	sessions repositories.KeyValueStore
	now      func() time.Time
}

// NewAdminUseCase cria uma nova instância de AdminUseCase
func NewAdminUseCase(pin string, secret []byte, ttl time.Duration, sessions repositories.KeyValueStore) *AdminUseCase {
	return &AdminUseCase{
		pin:      pin,
		secret:   secret,
		ttl:      ttl,
		sessions: sessions,
		now:      time.Now,
	}
}

// Login confere o PIN e abre uma sessão
func (u *AdminUseCase) Login(ctx context.Context, pin string) (AdminSession, error) {
	if subtle.ConstantTimeCompare([]byte(pin), []byte(u.pin)) != 1 {
		return AdminSession{}, entities.ErrUnauthorized
	}

	sessionID := uuid.NewString()
	now := u.now()
	expiresAt := now.Add(u.ttl)

	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return AdminSession{}, fmt.Errorf("erro ao assinar token: %w", err)
	}

	if err := u.sessions.Set(ctx, adminSessionPrefix+sessionID, []byte(expiresAt.Format(time.RFC3339)), u.ttl); err != nil {
		return AdminSession{}, fmt.Errorf("erro ao salvar sessão: %w", err)
	}

	return AdminSession{Token: token, ExpiresAt: expiresAt}, nil
}

// Validate confere a assinatura, a validade e se a sessão não foi encerrada
func (u *AdminUseCase) Validate(ctx context.Context, tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return u.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(u.now))
	if err != nil || !token.Valid || claims.ID == "" {
		return "", entities.ErrUnauthorized
	}

	_, found, err := u.sessions.Get(ctx, adminSessionPrefix+claims.ID)
	if err != nil {
		return "", fmt.Errorf("erro ao consultar sessão: %w", err)
	}
	if !found {
		return "", entities.ErrUnauthorized
	}
	return claims.ID, nil
}

// Logout encerra a sessão do token
func (u *AdminUseCase) Logout(ctx context.Context, tokenString string) error {
	sessionID, err := u.Validate(ctx, tokenString)
	if err != nil {
		return err
	}
	return u.sessions.Delete(ctx, adminSessionPrefix+sessionID)
}
