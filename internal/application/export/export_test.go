package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/PavaniTiago/vior-insights-api/internal/domain/catalog"
	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func smallRegistry() *catalog.Registry {
	return catalog.NewRegistry([]entities.Question{
		{ID: "name", Type: entities.QuestionText, Text: "Seu nome"},
		{ID: "shops", Type: entities.QuestionMultipleChoice, Text: "Onde compra?"},
		{ID: "score", Type: entities.QuestionRating, Text: `Nota "geral"`},
	})
}

func TestToCSVEmptyIsHeaderOnly(t *testing.T) {
	out := ToCSV(smallRegistry(), nil)
	assert.Equal(t, `"Seu nome","Onde compra?","Nota ""geral"""`, out)
}

func TestToCSVRows(t *testing.T) {
	records := []entities.SurveyRecord{
		{Responses: []entities.Response{
			{QuestionID: "name", Answer: entities.TextAnswer(`Ana "Aninha"`)},
			{QuestionID: "shops", Answer: entities.MultiAnswer("shopee", "amazon")},
			{QuestionID: "score", Answer: entities.RatingAnswer(5)},
		}},
		{Responses: []entities.Response{
			{QuestionID: "score", Answer: entities.RatingAnswer(3)},
		}},
	}

	lines := strings.Split(ToCSV(smallRegistry(), records), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, `"Ana ""Aninha""","shopee;amazon","5"`, lines[1])
	assert.Equal(t, `"","","3"`, lines[2])
}

func TestToSpreadsheet(t *testing.T) {
	leads := []entities.Lead{
		{Date: "10/03/2025", Time: "12:00:00", Name: "Ana", Whatsapp: "(11) 99999-1000", Coupon: "VIOR-AAAAAA", Redeemed: true},
		{Date: "09/03/2025", Time: "08:30:00", Name: "Bia", Whatsapp: "(11) 99999-1001", Coupon: "VIOR-BBBBBB"},
	}

	data, err := ToSpreadsheet(leads)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(LeadsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, SpreadsheetHeader, rows[0])
	assert.Equal(t, []string{"10/03/2025", "12:00:00", "Ana", "(11) 99999-1000", "VIOR-AAAAAA", StatusRedeemed}, rows[1])
	assert.Equal(t, StatusPending, rows[2][5])
}

func TestToSpreadsheetEmpty(t *testing.T) {
	data, err := ToSpreadsheet(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(LeadsSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{SpreadsheetHeader}, rows)
}

func TestLeadRowUsesLeadProjection(t *testing.T) {
	lead := entities.Lead{CreatedAt: time.Now(), Date: "01/01/2025", Time: "00:00:00", Name: "N/A", Whatsapp: "N/A"}
	assert.Equal(t, []string{"01/01/2025", "00:00:00", "N/A", "N/A", "", StatusPending}, LeadRow(lead))
}
