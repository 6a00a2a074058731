package gofpdf

import (
	"bytes"
	"log"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"buildsafe/go_backend/internal/domain/inspection"
)

type Generator struct{}

func New() *Generator { return &Generator{} }

// Generate renders an inspection record: a heading, the details block,
// then the checklist table. PPE records show the rating column instead of
// pass/fail status.
func (g *Generator) Generate(r inspection.Record, details map[string]string, order []string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(inspection.Title(r.Kind), false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(inspection.Title(r.Kind)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	for _, k := range order {
		v := details[k]
		if v == "" {
			v = "-"
		}
		pdf.Cell(0, 6, tr(k+": "+v))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	isPPE := r.Kind == inspection.KindPPE
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(90, 7, "Item")
	if isPPE {
		pdf.Cell(25, 7, "Rating")
		pdf.Cell(30, 7, "Date Ordered")
	} else {
		pdf.Cell(25, 7, "Status")
	}
	pdf.Cell(0, 7, "Notes")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 9)
	for _, it := range r.Items {
		pdf.Cell(90, 6, tr(trim(it.Name, 55)))
		if isPPE {
			pdf.Cell(25, 6, strings.ToUpper(orDash(it.Rating)))
			pdf.Cell(30, 6, orDash(it.DateOrdered))
		} else {
			pdf.Cell(25, 6, strings.ToUpper(orDash(it.Status)))
		}
		pdf.Cell(0, 6, tr(trim(orDash(it.Notes), 35)))
		pdf.Ln(6)
	}

	if r.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(0, 6, "Notes")
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, tr(r.Notes), "", "L", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 8)
	pdf.Cell(0, 5, "Generated: "+time.Now().Format(time.RFC3339))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("inspection pdf: output failed: %v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
