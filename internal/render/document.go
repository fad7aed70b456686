// Package render lays out hour reports, invoices and the weekly distribution
// chart as PDF documents.
package render

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// document is an A4 page set with the "Page n/N" footer used by every output.
type document struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newDocument(orientation string) *document {
	pdf := fpdf.New(orientation, "mm", "A4", "")
	d := &document{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetFooterFunc(func() {
		// Position at 1.5 cm from bottom.
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AliasNbPages("")
	pdf.AddPage()
	return d
}

// cell writes one line of text. ln follows fpdf: 0 moves right, 1 to the next
// line, 2 below the cell.
func (d *document) cell(w, h float64, txt string, border bool, ln int, align string, fill bool) {
	b := ""
	if border {
		b = "1"
	}
	d.pdf.CellFormat(w, h, d.tr(txt), b, ln, align, fill, 0, "")
}

func (d *document) multiCell(w, h float64, txt, align string, fill bool) {
	d.pdf.MultiCell(w, h, d.tr(txt), "", align, fill)
}

func (d *document) font(style string, size float64) {
	d.pdf.SetFont("Arial", style, size)
}

// rule draws the full-width black separator line.
func (d *document) rule() {
	d.pdf.SetFillColor(0, 0, 0)
	d.cell(190, 2, "", false, 2, "C", true)
}

func (d *document) output(w io.Writer) error {
	if err := d.pdf.Error(); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}
