package repository

import (
	"context"
	"fmt"

	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
	postgrest "github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

// DefaultSurveyTable é a coleção usada pelo questionário
const DefaultSurveyTable = "surveys"

// zeroUUID nunca é gerado pelo banco; filtrar por id diferente dele seleciona todas as linhas
const zeroUUID = "00000000-0000-0000-0000-000000000000"

// SupabaseSurveyRepository acessa a tabela de pesquisas pela API REST do Supabase (PostgREST)
type SupabaseSurveyRepository struct {
	client *supabase.Client
	table  string
}

type surveyInsert struct {
	Responses []entities.Response `json:"responses"`
}

// NewSupabaseClient cria o cliente do Supabase a partir da URL e da chave anônima
func NewSupabaseClient(url, anonKey string) (*supabase.Client, error) {
	client, err := supabase.NewClient(url, anonKey, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente supabase: %w", err)
	}
	return client, nil
}

// NewSupabaseSurveyRepository cria uma nova instância de SupabaseSurveyRepository
func NewSupabaseSurveyRepository(client *supabase.Client, table string) *SupabaseSurveyRepository {
	if table == "" {
		table = DefaultSurveyTable
	}
	return &SupabaseSurveyRepository{client: client, table: table}
}

// Insert grava uma nova pesquisa e devolve a linha criada
func (r *SupabaseSurveyRepository) Insert(ctx context.Context, responses []entities.Response) (entities.SurveyRecord, error) {
	if err := ctx.Err(); err != nil {
		return entities.SurveyRecord{}, fmt.Errorf("%w: %v", entities.ErrPersistence, err)
	}

	var created []entities.SurveyRecord
	_, err := r.client.From(r.table).
		Insert(surveyInsert{Responses: responses}, false, "", "representation", "").
		ExecuteTo(&created)
	if err != nil {
		return entities.SurveyRecord{}, fmt.Errorf("%w: erro ao inserir pesquisa: %v", entities.ErrPersistence, err)
	}
	if len(created) == 0 {
		return entities.SurveyRecord{}, fmt.Errorf("%w: inserção sem retorno", entities.ErrPersistence)
	}
	return created[0], nil
}

// List retorna todas as pesquisas, mais recentes primeiro
func (r *SupabaseSurveyRepository) List(ctx context.Context) ([]entities.SurveyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrPersistence, err)
	}

	var records []entities.SurveyRecord
	_, err := r.client.From(r.table).
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&records)
	if err != nil {
		return nil, fmt.Errorf("%w: erro ao buscar pesquisas: %v", entities.ErrPersistence, err)
	}
	return records, nil
}

// FindByContact usa contenção JSONB (responses @> [{questionId, answer}]) para achar o participante
func (r *SupabaseSurveyRepository) FindByContact(ctx context.Context, whatsapp string) ([]entities.SurveyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrPersistence, err)
	}

	probe := []entities.Response{{QuestionID: entities.QuestionIDWhatsapp, Answer: entities.TextAnswer(whatsapp)}}

	var records []entities.SurveyRecord
	_, err := r.client.From(r.table).
		Select("*", "", false).
		ContainsObject("responses", probe).
		ExecuteTo(&records)
	if err != nil {
		return nil, fmt.Errorf("%w: erro ao buscar participante: %v", entities.ErrPersistence, err)
	}
	return records, nil
}

// UpdateResponses substitui as respostas de uma pesquisa
func (r *SupabaseSurveyRepository) UpdateResponses(ctx context.Context, id string, responses []entities.Response) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", entities.ErrPersistence, err)
	}

	var updated []entities.SurveyRecord
	_, err := r.client.From(r.table).
		Update(surveyInsert{Responses: responses}, "representation", "").
		Eq("id", id).
		ExecuteTo(&updated)
	if err != nil {
		return fmt.Errorf("%w: erro ao atualizar pesquisa: %v", entities.ErrPersistence, err)
	}
	if len(updated) == 0 {
		return entities.ErrRecordNotFound
	}
	return nil
}

// Delete remove uma pesquisa
func (r *SupabaseSurveyRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", entities.ErrPersistence, err)
	}

	var deleted []entities.SurveyRecord
	_, err := r.client.From(r.table).
		Delete("representation", "").
		Eq("id", id).
		ExecuteTo(&deleted)
	if err != nil {
		return fmt.Errorf("%w: erro ao excluir pesquisa: %v", entities.ErrPersistence, err)
	}
	if len(deleted) == 0 {
		return entities.ErrRecordNotFound
	}
	return nil
}

// DeleteAll remove todas as pesquisas. O PostgREST recusa DELETE sem filtro.
func (r *SupabaseSurveyRepository) DeleteAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", entities.ErrPersistence, err)
	}

	_, _, err := r.client.From(r.table).
		Delete("minimal", "").
		Neq("id", zeroUUID).
		Execute()
	if err != nil {
		return fmt.Errorf("%w: erro ao limpar pesquisas: %v", entities.ErrPersistence, err)
	}
	return nil
}
