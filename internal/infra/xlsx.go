package infra

import (
	"fmt"
	"time"

	"github.com/erickbalderas17/rastro-pollos/internal/dto"

	"github.com/xuri/excelize/v2"
)

const hojaEstadoCuenta = "Estado de cuenta"

// EstadoCuentaXLSX builds a one-sheet workbook with the statement rows and
// the final balance. Amounts are written as numbers with a currency format.
func EstadoCuentaXLSX(estado *dto.EstadoCuentaResponse, generado time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", hojaEstadoCuenta); err != nil {
		return nil, err
	}
	sh := hojaEstadoCuenta

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	moneyFmt := "$#,##0.00"
	money, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return nil, err
	}

	_ = f.SetCellValue(sh, "A1", nombreNegocio)
	_ = f.SetCellValue(sh, "A2", "Cliente")
	_ = f.SetCellValue(sh, "B2", estado.Cliente)
	_ = f.SetCellValue(sh, "A3", "Generado")
	_ = f.SetCellValue(sh, "B3", generado.Format("2006-01-02 15:04"))
	_ = f.SetCellStyle(sh, "A1", "A3", bold)

	headers := []string{"Fecha", "Tipo", "Referencia", "Monto", "Saldo"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 5)
		_ = f.SetCellValue(sh, cell, h)
	}
	_ = f.SetCellStyle(sh, "A5", "E5", bold)

	row := 6
	for _, m := range estado.Movimientos {
		monto, _ := m.Monto.Float64()
		saldo, _ := m.Saldo.Float64()
		values := []interface{}{m.FechaHora, m.Tipo, m.ReferenciaID, monto, saldo}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(sh, cell, v); err != nil {
				return nil, fmt.Errorf("xlsx: %s: %w", cell, err)
			}
		}
		row++
	}
	if row > 6 {
		_ = f.SetCellStyle(sh, "D6", fmt.Sprintf("E%d", row-1), money)
	}

	total, _ := estado.Saldo.Float64()
	_ = f.SetCellValue(sh, fmt.Sprintf("D%d", row+1), "Saldo")
	_ = f.SetCellValue(sh, fmt.Sprintf("E%d", row+1), total)
	_ = f.SetCellStyle(sh, fmt.Sprintf("D%d", row+1), fmt.Sprintf("D%d", row+1), bold)
	_ = f.SetCellStyle(sh, fmt.Sprintf("E%d", row+1), fmt.Sprintf("E%d", row+1), money)
	_ = f.SetColWidth(sh, "A", "A", 26)
	_ = f.SetColWidth(sh, "B", "E", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
