package migrations

import (
	"log"

	"gorm.io/gorm"
)

// OptimizePerformanceIndexes adiciona índices específicos do Postgres.
// Em outros dialetos (SQLite nos testes) não faz nada.
func OptimizePerformanceIndexes(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	log.Println("Adicionando índices de performance otimizados...")

	// Índice GIN para o filtro de contenção responses @> '[{"questionId":"whatsapp",...}]'
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_surveys_responses_gin ON surveys USING GIN (responses jsonb_path_ops)`).Error; err != nil {
		return err
	}

	// Índice BRIN para consultas por período (inserções são sequenciais no tempo)
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_surveys_created_at_brin ON surveys USING BRIN (created_at)`).Error; err != nil {
		return err
	}

	return nil
}
