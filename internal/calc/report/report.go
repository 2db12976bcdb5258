// Package report renders sized members as a PDF calculation sheet.
package report

import (
	"fmt"
	"io"
	"time"

	"Timberline/internal/calc/sizing"
	"Timberline/internal/calc/validate"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project    string           `json:"project"`
	Author     string           `json:"author"`
	Title      string           `json:"title"`
	Notes      string           `json:"notes"`
	Members    []sizing.Result  `json:"members"`
	Validation *validate.Report `json:"validation,omitempty"`
}

// Render writes the report. date is printed in the title block.
func Render(w io.Writer, in Input, date time.Time) error {
	if in.Title == "" {
		in.Title = "Member Sizing Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", in.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", date.Format("2006-01-02")))
	pdf.Ln(10)

	for _, m := range in.Members {
		memberTable(pdf, m)
	}

	if in.Validation != nil {
		pdf.SetFont("Helvetica", "B", 12)
		status := "PASS"
		if !in.Validation.Valid {
			status = "FAIL"
		}
		pdf.Cell(0, 8, fmt.Sprintf("Structure check: %s", status))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		for _, msg := range in.Validation.Messages {
			pdf.MultiCell(0, 5, "- "+msg, "", "L", false)
		}
		pdf.Ln(4)
	}

	if in.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, in.Notes, "", "L", false)
	}
	return pdf.Output(w)
}

func memberTable(pdf *gofpdf.Fpdf, m sizing.Result) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("%s  %.0f x %.0f mm  (%s, FRL %s)", m.MemberType, m.WidthMM, m.DepthMM, m.Grade, m.FireRating))
	pdf.Ln(8)

	u := m.Detail.Utilization
	rows := [][2]string{
		{"Span / height", fmt.Sprintf("%.2f m", m.SpanM)},
		{"Governing criterion", string(m.Governing)},
		{"Required section (gross)", fmt.Sprintf("%.0f x %.0f mm", m.Detail.RequiredWidthMM, m.Detail.RequiredDepthMM)},
		{"Fire allowance per face", fmt.Sprintf("%.1f mm", m.Detail.FireAllowanceMM)},
		{"Utilisation bending / shear", fmt.Sprintf("%.2f / %.2f", u.Bending, u.Shear)},
		{"Utilisation deflection / compression", fmt.Sprintf("%.2f / %.2f", u.Deflection, u.Compression)},
	}
	if m.Detail.AllowableDeflectionMM > 0 {
		rows = append(rows, [2]string{"Deflection (actual / allowable)",
			fmt.Sprintf("%.1f / %.1f mm (L/%.0f)", m.Detail.ActualDeflectionMM, m.Detail.AllowableDeflectionMM, m.Detail.DeflectionLimit)})
	}
	if m.Detail.AxialLoadKN > 0 {
		rows = append(rows, [2]string{"Axial load / capacity",
			fmt.Sprintf("%.1f / %.1f kN", m.Detail.AxialLoadKN, m.Detail.CompressiveCapacityKN)})
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(80, 6, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, row[1], "1", 1, "L", false, 0, "")
	}
	for _, warn := range m.Warnings {
		pdf.MultiCell(0, 5, "Warning: "+warn, "", "L", false)
	}
	if m.UsingFallback {
		pdf.MultiCell(0, 5, "Sized from standard fallback sizes.", "", "L", false)
	}
	pdf.Ln(4)
}
