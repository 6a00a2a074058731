package gofpdf

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"buildsafe/go_backend/internal/domain/quote"
	"buildsafe/go_backend/internal/domain/quote/pdf"
)

type Generator struct{}

var _ pdf.Generator = (*Generator)(nil)

func New() *Generator { return &Generator{} }

// Generate renders a persisted quote as an A4 PDF: header block, the
// sectioned items table with per-section subtotals, then the summary with
// subtotal, VAT and total. Currency formatting happens here only.
func (g *Generator) Generate(q quote.Quote) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Quotation", false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Quotation")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	date := q.QuoteDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", date))
	pdf.Ln(6)
	if q.CreatedByName != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Prepared by: %s", q.CreatedByName)))
		pdf.Ln(6)
	}
	if q.ProjectLocation != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Project location: %s", q.ProjectLocation)))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	sections := q.Sections
	if len(sections) == 0 && len(q.Items) > 0 {
		// Legacy flat quotes render as a single untitled section.
		sections = []quote.PersistedSection{{Items: q.Items}}
	}

	for _, section := range sections {
		if strings.TrimSpace(section.Title) != "" {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.Cell(0, 7, tr(section.Title))
			pdf.Ln(8)
		}

		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(15, 7, "Item")
		pdf.Cell(110, 7, "Description")
		pdf.Cell(15, 7, "Qty")
		pdf.Cell(25, 7, "Amount")
		pdf.Ln(7)

		pdf.SetFont("Helvetica", "", 10)
		for _, it := range section.Items {
			pdf.Cell(15, 6, tr(it.Number))
			pdf.Cell(110, 6, tr(trim(it.Description, 70)))
			pdf.Cell(15, 6, fmt.Sprintf("%d", it.Quantity()))
			pdf.Cell(25, 6, tr(priceCell(it.Price)))
			pdf.Ln(6)
		}

		if len(section.Items) > 0 {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.Cell(0, 7, tr(fmt.Sprintf("Section Subtotal: %s", gbp(sectionSubtotal(section)))))
			pdf.Ln(9)
		} else {
			pdf.Ln(3)
		}
	}

	subtotal := quoteSubtotal(q)
	total := q.Amount
	vat := total - subtotal
	if vat < 0 {
		vat = 0
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 11)
	subtotalLabel := "Subtotal"
	if q.IsSubtotalOverridden {
		subtotalLabel = "Manual Subtotal"
	}
	pdf.Cell(0, 7, tr(fmt.Sprintf("%s: %s", subtotalLabel, gbp(subtotal))))
	pdf.Ln(7)
	if vat > 0 {
		pdf.Cell(0, 7, tr(fmt.Sprintf("VAT: %s", gbp(vat))))
		pdf.Ln(7)
	}
	pdf.Cell(0, 7, tr(fmt.Sprintf("Total: %s", gbp(total))))
	pdf.Ln(10)

	if q.Notes != "" {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(0, 6, "Notes")
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, tr(q.Notes), "", "L", false)
		pdf.Ln(3)
	}
	if q.PaymentTerms != "" {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(0, 6, "Payment Terms")
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, tr(q.PaymentTerms), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("quote pdf: output failed: %v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

func sectionSubtotal(s quote.PersistedSection) float64 {
	if s.ManualPrice != nil {
		return *s.ManualPrice
	}
	var sum float64
	for _, it := range s.Items {
		if it.Price != nil {
			sum += *it.Price * float64(it.Quantity())
		}
	}
	return sum
}

func quoteSubtotal(q quote.Quote) float64 {
	if q.IsSubtotalOverridden && q.OverrideSubtotal != nil {
		return *q.OverrideSubtotal
	}
	var sum float64
	if len(q.Sections) > 0 {
		for _, s := range q.Sections {
			sum += sectionSubtotal(s)
		}
		return sum
	}
	for _, it := range q.Items {
		if it.Price != nil {
			sum += *it.Price * float64(it.Quantity())
		}
	}
	return sum
}

func priceCell(p *float64) string {
	if p == nil {
		return "-"
	}
	return gbp(*p)
}

func gbp(v float64) string {
	return fmt.Sprintf("£%.2f", v)
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
