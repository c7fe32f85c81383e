package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes adiciona os índices usados pelo dashboard e pela checagem de duplicidade
func AddIndexes(db *gorm.DB) error {
	// Listagem do dashboard (ORDER BY created_at DESC)
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_surveys_created_at ON surveys (created_at DESC)").Error; err != nil {
		return err
	}

	// Checagem de participação por WhatsApp.
	// Não é UNIQUE: a deduplicação continua sendo checagem seguida de inserção.
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_surveys_whatsapp ON surveys (whatsapp)").Error; err != nil {
		return err
	}

	return nil
}
