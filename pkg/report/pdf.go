package report

import (
	"errors"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/dmitrymomot/vehiclekit/pkg/vehicle"
)

// ErrRenderPDF is returned when the PDF document cannot be produced.
var ErrRenderPDF = errors.New("failed to render PDF report")

// Column widths in millimeters, landscape A4.
var pdfWidths = []float64{12, 24, 48, 30, 42, 32, 14, 28, 28}

// WritePDF renders the record set as a landscape A4 PDF table with a bold
// header row and alternating row fill.
func WritePDF(w io.Writer, records []vehicle.Record) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Vehicle Report")
	pdf.Ln(14)

	writePDFHeader(pdf)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(245, 245, 245)
	for i, r := range records {
		// Repeat the header after a page break.
		if pdf.GetY() > 185 {
			pdf.AddPage()
			writePDFHeader(pdf)
			pdf.SetFont("Helvetica", "", 8)
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFillColor(245, 245, 245)
		}
		fill := i%2 == 1
		for c, cell := range Row(r) {
			pdf.CellFormat(pdfWidths[c], 6, cell, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return errors.Join(ErrRenderPDF, err)
	}
	return nil
}

func writePDFHeader(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFillColor(41, 128, 185)
	for c, name := range Columns {
		pdf.CellFormat(pdfWidths[c], 7, name, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}
