package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
	"gorm.io/gorm"
)

// GormSurveyRepository guarda as pesquisas em um Postgres próprio via GORM
type GormSurveyRepository struct {
	db *gorm.DB
}

// NewGormSurveyRepository cria uma nova instância de GormSurveyRepository
func NewGormSurveyRepository(db *gorm.DB) *GormSurveyRepository {
	return &GormSurveyRepository{db: db}
}

// Insert grava uma nova pesquisa
func (r *GormSurveyRepository) Insert(ctx context.Context, responses []entities.Response) (entities.SurveyRecord, error) {
	row := entities.SurveyRow{Responses: responses}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.SurveyRecord{}, fmt.Errorf("%w: erro ao inserir pesquisa: %v", entities.ErrPersistence, err)
	}
	return row.Record(), nil
}

// List retorna todas as pesquisas, mais recentes primeiro
func (r *GormSurveyRepository) List(ctx context.Context) ([]entities.SurveyRecord, error) {
	var rows []entities.SurveyRow
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: erro ao buscar pesquisas: %v", entities.ErrPersistence, err)
	}
	return toRecords(rows), nil
}

// FindByContact busca pesquisas pelo WhatsApp exato.
// No Postgres usa contenção JSONB, igual ao filtro do Supabase; nos demais dialetos usa a coluna whatsapp.
func (r *GormSurveyRepository) FindByContact(ctx context.Context, whatsapp string) ([]entities.SurveyRecord, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")

	if r.db.Dialector.Name() == "postgres" {
		probe, err := json.Marshal([]entities.Response{{QuestionID: entities.QuestionIDWhatsapp, Answer: entities.TextAnswer(whatsapp)}})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", entities.ErrPersistence, err)
		}
		query = query.Where("responses @> ?::jsonb", string(probe))
	} else {
		query = query.Where("whatsapp = ?", whatsapp)
	}

	var rows []entities.SurveyRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: erro ao buscar participante: %v", entities.ErrPersistence, err)
	}
	return toRecords(rows), nil
}

// UpdateResponses substitui as respostas de uma pesquisa
func (r *GormSurveyRepository) UpdateResponses(ctx context.Context, id string, responses []entities.Response) error {
	result := r.db.WithContext(ctx).
		Model(&entities.SurveyRow{ID: id}).
		Select("responses", "whatsapp").
		Updates(&entities.SurveyRow{Responses: responses, Whatsapp: entities.ContactOf(responses)})
	if result.Error != nil {
		return fmt.Errorf("%w: erro ao atualizar pesquisa: %v", entities.ErrPersistence, result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrRecordNotFound
	}
	return nil
}

// Delete remove uma pesquisa
func (r *GormSurveyRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&entities.SurveyRow{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("%w: erro ao excluir pesquisa: %v", entities.ErrPersistence, result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrRecordNotFound
	}
	return nil
}

// DeleteAll remove todas as pesquisas
func (r *GormSurveyRepository) DeleteAll(ctx context.Context) error {
	err := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entities.SurveyRow{}).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: erro ao limpar pesquisas: %v", entities.ErrPersistence, err)
	}
	return nil
}

func toRecords(rows []entities.SurveyRow) []entities.SurveyRecord {
	records := make([]entities.SurveyRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.Record())
	}
	return records
}
