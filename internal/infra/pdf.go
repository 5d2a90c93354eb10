package infra

// pdf.go: movement report rendering using go-pdf/fpdf.
// Produces a landscape A4 table with the same columns and rows as the CSV
// export, written directly to the HTTP response.

import (
	"io"

	"github.com/go-pdf/fpdf"
)

// Column widths in mm; the ID column is wide enough for a UUID.
var pdfColWidths = []float64{52, 35, 35, 20, 28, 28, 30, 22, 25}

// GenerateMovimentacoesPDF writes the loan movement report as a PDF table.
// headers and rows come pre-formatted from the relatorio service so both
// exports always agree.
func GenerateMovimentacoesPDF(w io.Writer, headers []string, rows [][]string) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	// Core fonts are cp1252; the report text carries Portuguese accents.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 12, 10)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr("Movimentações de Empréstimos de EPI"), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// Header row
	pdf.SetFont("Helvetica", "B", 7)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(pdfColWidths[i], 6, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 6.5)
	for _, row := range rows {
		for i, cell := range row {
			pdf.CellFormat(pdfColWidths[i], 5, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
