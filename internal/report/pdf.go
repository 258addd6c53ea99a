package report

import (
	"bytes"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/go-pdf/fpdf"

	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/model"
)

// Fixed table geometry of the printed statement, in points on a letter page.
var columnWidths = [6]float64{65, 160, 65, 65, 75, 75}

var columnHeaders = [6]string{"Tanggal", "Keterangan", "Tipe", "Metode", "Jumlah", "Saldo"}

const (
	pageWidth  = 612.0 // letter
	rowHeight  = 14.0
	cellFont   = 8.0
	breakBelow = 740.0 // start a new page before drawing past this y
)

// RenderPDF renders the compiled report as PDF bytes: centered title and
// subtitle, the six-column table with a filled header row and bold totals
// rows, the dateline and the two-party signature block. The layout is fixed;
// organizational paperwork expects these documents to look identical from
// one run to the next.
func RenderPDF(rep model.Report) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 22, rep.Title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 14, "Sumber Dana: "+rep.Partition, "", 1, "C", false, 0, "")
	pdf.Ln(20)

	tableLeft := (pageWidth - tableWidth()) / 2

	pdf.SetDrawColor(128, 128, 128) // grey grid
	pdf.SetLineWidth(0.5)

	writeHeader(pdf, tableLeft)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", cellFont)
	for _, row := range rep.Rows {
		if pdf.GetY()+rowHeight > breakBelow {
			pdf.AddPage()
			writeHeader(pdf, tableLeft)
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont("Helvetica", "", cellFont)
		}
		writeRow(pdf, tableLeft, [6]string{
			row.Date, row.Description, row.Kind, row.Method, row.Amount, row.Balance,
		}, false)
	}

	// Totals rows, bold, in fixed order.
	pdf.SetFont("Helvetica", "B", cellFont)
	writeRow(pdf, tableLeft, [6]string{"", "TOTAL MASUK", "", "", humanize.Comma(rep.TotalIncome), ""}, false)
	writeRow(pdf, tableLeft, [6]string{"", "TOTAL KELUAR", "", "", humanize.Comma(rep.TotalExpense), ""}, false)
	writeRow(pdf, tableLeft, [6]string{"", "SALDO AKHIR", "", "", "", humanize.Comma(rep.ClosingBalance)}, false)

	writeClosingBlock(pdf, rep)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func tableWidth() float64 {
	var w float64
	for _, cw := range columnWidths {
		w += cw
	}
	return w
}

func writeHeader(pdf *fpdf.Fpdf, left float64) {
	pdf.SetX(left)
	pdf.SetFillColor(30, 144, 255)  // dodger blue
	pdf.SetTextColor(245, 245, 245) // white smoke
	pdf.SetFont("Helvetica", "", cellFont)
	for i, h := range columnHeaders {
		last := i == len(columnHeaders)-1
		ln := 0
		if last {
			ln = 1
		}
		pdf.CellFormat(columnWidths[i], rowHeight, h, "1", ln, "C", true, 0, "")
	}
}

func writeRow(pdf *fpdf.Fpdf, left float64, cells [6]string, fill bool) {
	pdf.SetX(left)
	for i, c := range cells {
		last := i == len(cells)-1
		ln := 0
		if last {
			ln = 1
		}
		pdf.CellFormat(columnWidths[i], rowHeight, c, "1", ln, "C", fill, 0, "")
	}
}

// writeClosingBlock emits the dateline and the two-party signature area.
func writeClosingBlock(pdf *fpdf.Fpdf, rep model.Report) {
	if pdf.GetY()+160 > 792 {
		pdf.AddPage()
	}

	pdf.Ln(40)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 14, rep.Dateline, "", 1, "C", false, 0, "")
	pdf.Ln(15)

	const signColumn = 250.0
	left := (pageWidth - 2*signColumn) / 2

	pdf.SetX(left)
	pdf.CellFormat(signColumn, 14, "Yang Menyerahkan,", "", 0, "C", false, 0, "")
	pdf.CellFormat(signColumn, 14, "Yang Menerima,", "", 1, "C", false, 0, "")

	pdf.Ln(45) // room for the actual signatures

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetX(left)
	pdf.CellFormat(signColumn, 14, "("+rep.IssuerName+")", "", 0, "C", false, 0, "")
	pdf.CellFormat(signColumn, 14, "("+rep.ReceiverName+")", "", 1, "C", false, 0, "")
}

// Filename returns the download filename for a partition's report.
func Filename(partition string) string {
	return "Laporan_" + partition + ".pdf"
}
