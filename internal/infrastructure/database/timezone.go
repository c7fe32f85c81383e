package database

import (
	"context"

	"gorm.io/gorm"
)

// DefaultTimezone é o fuso usado nas sessões do Postgres
const DefaultTimezone = "America/Sao_Paulo"

// marca no contexto para o callback não disparar a si mesmo
type timezoneKey struct{}

// timezoneCallback ajusta o fuso da sessão antes de cada consulta
func timezoneCallback(zone string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		if _, ok := db.Statement.Context.Value(timezoneKey{}).(bool); ok {
			return
		}

		ctx := context.WithValue(db.Statement.Context, timezoneKey{}, true)
		db.Session(&gorm.Session{NewDB: true, Context: ctx}).Exec("SELECT set_config('TimeZone', ?, false)", zone)
	}
}

// RegisterMiddlewares registra os callbacks do GORM. O ajuste de fuso só existe no Postgres.
func RegisterMiddlewares(db *gorm.DB) {
	if db.Dialector.Name() != "postgres" {
		return
	}

	_ = db.Callback().Query().Before("gorm:query").Register("set_timezone_before_query", timezoneCallback(DefaultTimezone))
}
