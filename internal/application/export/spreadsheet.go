package export

import (
	"fmt"

	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
	"github.com/xuri/excelize/v2"
)

const (
	// SpreadsheetFilename é o nome sugerido no download
	SpreadsheetFilename = "leads_vior_store.xlsx"
	// LeadsSheet é o nome da aba com os leads
	LeadsSheet = "Leads"

	StatusRedeemed = "Resgatado"
	StatusPending  = "Pendente"
)

// SpreadsheetHeader são as colunas fixas da planilha de leads
var SpreadsheetHeader = []string{"Data", "Hora", "Nome", "WhatsApp", "Cupom", "Status"}

// LeadRow converte um lead nas células da planilha
func LeadRow(lead entities.Lead) []string {
	status := StatusPending
	if lead.Redeemed {
		status = StatusRedeemed
	}
	return []string{lead.Date, lead.Time, lead.Name, lead.Whatsapp, lead.Coupon, status}
}

// ToSpreadsheet gera o XLSX com um lead por linha. Sem leads, só o cabeçalho.
func ToSpreadsheet(leads []entities.Lead) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), LeadsSheet); err != nil {
		return nil, fmt.Errorf("erro ao nomear aba: %w", err)
	}

	if err := setRow(f, 1, SpreadsheetHeader); err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar estilo: %w", err)
	}
	if err := f.SetRowStyle(LeadsSheet, 1, 1, headerStyle); err != nil {
		return nil, fmt.Errorf("erro ao aplicar estilo: %w", err)
	}

	for i, lead := range leads {
		if err := setRow(f, i+2, LeadRow(lead)); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(LeadsSheet, "A", "B", 12); err != nil {
		return nil, fmt.Errorf("erro ao ajustar colunas: %w", err)
	}
	if err := f.SetColWidth(LeadsSheet, "C", "D", 28); err != nil {
		return nil, fmt.Errorf("erro ao ajustar colunas: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar planilha: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("erro ao calcular célula: %w", err)
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(LeadsSheet, cell, &cells); err != nil {
		return fmt.Errorf("erro ao escrever linha %d: %w", row, err)
	}
	return nil
}
