package analytics

import (
	"testing"
	"time"

	"github.com/PavaniTiago/vior-insights-api/internal/domain/catalog"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectLead(t *testing.T) {
	rec := entities.SurveyRecord{
		ID:        "rec-1",
		CreatedAt: time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC),
		Responses: []entities.Response{
			text(catalog.QuestionName, "Ana Clara"),
			text(catalog.QuestionWhatsapp, "(11) 99999-1000"),
			single(catalog.QuestionCategory, "skincare"),
			single(catalog.QuestionTicket, "premium"),
			text(catalog.QuestionCouponCode, "VIOR-1A2B3C"),
			text(catalog.QuestionCouponRedeemed, "true"),
		},
	}

	lead := ProjectLead(catalog.Default(), rec)

	assert.Equal(t, "rec-1", lead.ID)
	assert.Equal(t, "Ana Clara", lead.Name)
	assert.Equal(t, "(11) 99999-1000", lead.Whatsapp)
	assert.Equal(t, "Skincare", lead.Category)
	assert.Equal(t, "Mais de R$ 300", lead.Ticket)
	assert.Equal(t, "VIOR-1A2B3C", lead.Coupon)
	assert.True(t, lead.Redeemed)
	// 15:04 UTC é 12:04 em Brasília
	assert.Equal(t, "10/03/2025", lead.Date)
	assert.Equal(t, "12:04:05", lead.Time)
}

func TestProjectLeadMissingIdentity(t *testing.T) {
	lead := ProjectLead(catalog.Default(), entities.SurveyRecord{ID: "x", CreatedAt: baseTime})

	assert.Equal(t, MissingValue, lead.Name)
	assert.Equal(t, MissingValue, lead.Whatsapp)
	assert.Empty(t, lead.Coupon)
	assert.False(t, lead.Redeemed)
}

func TestProjectLeadsOrder(t *testing.T) {
	records := []entities.SurveyRecord{
		record("b", 5),
		record("c", 10),
		record("a", 0),
	}

	leads := ProjectLeads(catalog.Default(), records)

	require.Len(t, leads, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{leads[0].ID, leads[1].ID, leads[2].ID})
}
