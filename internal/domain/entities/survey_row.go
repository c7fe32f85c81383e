package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SurveyRow é a linha da tabela "surveys" usada pelo backend Postgres (gorm).
// A coluna whatsapp duplica a resposta de contato para permitir índice.
type SurveyRow struct {
	ID        string     `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at"`
	Responses []Response `json:"responses" gorm:"column:responses;serializer:json;type:jsonb"`
	Whatsapp  string     `json:"-" gorm:"column:whatsapp"`
}

// TableName mantém o nome da coleção compartilhado com o Supabase
func (SurveyRow) TableName() string {
	return "surveys"
}

// BeforeCreate gera o id e sincroniza a coluna de contato
func (r *SurveyRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	r.Whatsapp = ContactOf(r.Responses)
	return nil
}

// Record converte a linha para o modelo de domínio
func (r SurveyRow) Record() SurveyRecord {
	return SurveyRecord{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
		Responses: r.Responses,
	}
}
