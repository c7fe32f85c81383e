package analytics

import (
	"sort"

	"github.com/PavaniTiago/vior-insights-api/internal/domain/catalog"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
	"github.com/PavaniTiago/vior-insights-api/internal/utils"
)

// MissingValue é exibido quando o participante não informou nome ou WhatsApp
const MissingValue = "N/A"

// ProjectLead monta a visão de lead de uma pesquisa
func ProjectLead(registry *catalog.Registry, rec entities.SurveyRecord) entities.Lead {
	label := func(qid string) string {
		v := rec.Value(qid)
		if v == "" {
			return ""
		}
		return registry.Label(qid, v)
	}

	lead := entities.Lead{
		ID:        rec.ID,
		Name:      orMissing(rec.Value(catalog.QuestionName)),
		Whatsapp:  orMissing(rec.Contact()),
		CreatedAt: rec.CreatedAt,
		Date:      utils.FormatDateBR(rec.CreatedAt),
		Time:      utils.FormatTimeBR(rec.CreatedAt),
		Category:  label(catalog.QuestionCategory),
		Style:     label(catalog.QuestionStyle),
		Frequency: label(catalog.QuestionFrequency),
		Ticket:    label(catalog.QuestionTicket),
		Testing:   label(catalog.QuestionTesting),
		Age:       label(catalog.QuestionAge),
		Coupon:    rec.Coupon(),
		Redeemed:  rec.Redeemed(),
	}
	return lead
}

// ProjectLeads gera um lead por pesquisa, mais recentes primeiro
func ProjectLeads(registry *catalog.Registry, records []entities.SurveyRecord) []entities.Lead {
	leads := make([]entities.Lead, 0, len(records))
	for _, rec := range records {
		leads = append(leads, ProjectLead(registry, rec))
	}
	sortLeads(leads)
	return leads
}

func sortLeads(leads []entities.Lead) {
	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].CreatedAt.After(leads[j].CreatedAt)
	})
}

func orMissing(s string) string {
	if s == "" {
		return MissingValue
	}
	return s
}
