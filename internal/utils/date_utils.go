package utils

import (
	"sync"
	"time"
)

var (
	brasilOnce     sync.Once
	brasilLocation *time.Location
)

// GetBrasilLocation retorna a localização de São Paulo.
// Deve ser usada em todo o projeto para exibir datas no fuso brasileiro.
func GetBrasilLocation() *time.Location {
	brasilOnce.Do(func() {
		loc, err := time.LoadLocation("America/Sao_Paulo")
		if err != nil {
			// Sem tzdata no container: UTC-3 fixo
			loc = time.FixedZone("BRT", -3*60*60)
		}
		brasilLocation = loc
	})
	return brasilLocation
}

// FormatDateBR formata a data como no navegador em pt-BR (dd/mm/aaaa)
func FormatDateBR(t time.Time) string {
	return t.In(GetBrasilLocation()).Format("02/01/2006")
}

// FormatTimeBR formata a hora como no navegador em pt-BR (HH:MM:SS)
func FormatTimeBR(t time.Time) string {
	return t.In(GetBrasilLocation()).Format("15:04:05")
}
