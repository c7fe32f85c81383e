package repositories

import (
	"context"
	"time"

	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
)

// SurveyRepository é a fronteira com o backend de armazenamento da coleção "surveys".
// Implementações convertem qualquer falha do backend em entities.ErrPersistence.
type SurveyRepository interface {
	// Insert grava uma nova pesquisa e retorna o registro com id e data preenchidos
	Insert(ctx context.Context, responses []entities.Response) (entities.SurveyRecord, error)
	// List retorna todas as pesquisas ordenadas por created_at decrescente
	List(ctx context.Context) ([]entities.SurveyRecord, error)
	// FindByContact retorna as pesquisas cujo WhatsApp é exatamente igual ao informado
	FindByContact(ctx context.Context, whatsapp string) ([]entities.SurveyRecord, error)
	// UpdateResponses substitui as respostas de uma pesquisa
	UpdateResponses(ctx context.Context, id string, responses []entities.Response) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// KeyValueStore guarda estado de sessão (rascunhos do questionário e sessões de admin)
type KeyValueStore interface {
	// Get retorna found=false quando a chave não existe ou expirou
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
