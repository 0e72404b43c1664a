package infra

// pdf.go: ticket and account statement rendering with go-pdf/fpdf.
// Tickets use a narrow custom page close to thermal receipt paper; statements
// use Letter. Files are written to storagePath and the path is returned.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/erickbalderas17/rastro-pollos/internal/dto"
	"github.com/erickbalderas17/rastro-pollos/internal/model"

	"github.com/go-pdf/fpdf"
)

const nombreNegocio = "Rastro San Pablito"

// GenerateTicketPDF renders the settlement ticket of a sale.
// venta should have Boleta, Cliente and Producto preloaded.
func GenerateTicketPDF(venta *model.Venta, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	filePath := filepath.Join(storagePath, fmt.Sprintf("ticket_%d.pdf", venta.ID))

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 120},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 7, tr(nombreNegocio), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Ticket de venta", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Venta No. %d  /  Boleta No. %d", venta.ID, venta.BoletaID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, venta.FechaHora.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	cliente := "OTRO"
	if venta.Cliente != nil {
		cliente = venta.Cliente.Nombre
	}
	pdf.CellFormat(contentW, 4, tr("Cliente: "+cliente), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Detail ───────────────────────────────────────────────────────────────
	labelW := contentW * 0.55
	valueW := contentW * 0.45
	row := func(label, value string) {
		pdf.CellFormat(labelW, 5, tr(label), "", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, 5, tr(value), "", 1, "R", false, 0, "")
	}

	producto := ""
	if venta.Producto != nil {
		producto = venta.Producto.Nombre
	}
	pdf.SetFont("Helvetica", "", 7)
	row("Producto", producto)
	if venta.Boleta != nil {
		row("Tipo de venta", venta.Boleta.TipoVenta)
		row("Pollos", fmt.Sprintf("%d", venta.Boleta.NumPollos))
		row("Cajas", fmt.Sprintf("%d", venta.Boleta.NumCajas))
		row("Peso bruto", venta.Boleta.PesoTotalKg.StringFixed(3)+" kg")
	}
	row("Peso neto", venta.PesoNetoKg.StringFixed(3)+" kg")
	row("Precio por kg", "$"+venta.PrecioPorKg.StringFixed(2))

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Total ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(labelW, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(valueW, 6, "$"+venta.Total.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	row("Pago", etiquetaPago(venta.MetodoPago))

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, tr("¡Gracias por su compra!"), "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}

// GenerateEstadoCuentaPDF renders a customer's statement with running balance.
func GenerateEstadoCuentaPDF(estado *dto.EstadoCuentaResponse, generado time.Time, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	fileName := fmt.Sprintf("estado_cuenta_%d_%s.pdf", estado.ClienteID, generado.Format("20060102_150405"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr(nombreNegocio), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr("Estado de cuenta: "+estado.Cliente), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Generado: "+generado.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	widths := []float64{40, 30, 30, 40, 40}
	headers := []string{"Fecha", "Tipo", "Referencia", "Monto", "Saldo"}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		align := "L"
		if i >= 3 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, h, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, m := range estado.Movimientos {
		fecha := m.FechaHora
		if t, err := time.Parse(time.RFC3339, m.FechaHora); err == nil {
			fecha = t.Format("02/01/2006 15:04")
		}
		ref := ""
		if m.ReferenciaID != 0 {
			ref = fmt.Sprintf("%d", m.ReferenciaID)
		}
		pdf.CellFormat(widths[0], 6, fecha, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, m.Tipo, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, ref, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, "$"+m.Monto.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, "$"+m.Saldo.StringFixed(2), "1", 1, "R", false, 0, "")
	}
	if len(estado.Movimientos) == 0 {
		pdf.CellFormat(0, 6, "Sin movimientos", "1", 1, "C", false, 0, "")
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3], 8, "SALDO ACTUAL:", "", 0, "R", false, 0, "")
	pdf.CellFormat(widths[4], 8, "$"+estado.Saldo.StringFixed(2), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}

func etiquetaPago(metodo string) string {
	switch metodo {
	case model.PagoEfectivo:
		return "Efectivo"
	case model.PagoTarjeta:
		return "Tarjeta"
	case model.PagoCreditoCliente:
		return "Crédito cliente"
	default:
		return metodo
	}
}
