package migrations

import (
	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"

	"gorm.io/gorm"
)

// Migrate cria ou atualiza a tabela de pesquisas
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&entities.SurveyRow{})
}
