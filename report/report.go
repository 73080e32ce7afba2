// Package report lays out already-produced analysis text as a paginated PDF.
package report

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/go-pdf/fpdf"
)

const reportTitle = "Legal AI Analysis Report"

// Fields holds the three text sections of the downloadable report. The facts
// and risk fields arrive as HTML fragments from the AI; the filled document
// is plain text.
type Fields struct {
	KeyFacts       string
	RiskAnalysis   string
	FilledDocument string
}

var tagPattern = regexp.MustCompile(`<[^<]+?>`)

// Render produces the PDF bytes for the report.
func Render(f Fields) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 15)
		pdf.CellFormat(0, 10, reportTitle, "", 1, "C", false, 0, "")
		pdf.Ln(5)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	writeSectionTitle(pdf, "1. Key Facts & Figures")
	writeHTMLContent(pdf, f.KeyFacts)

	writeSectionTitle(pdf, "2. Risk Analysis")
	writeHTMLContent(pdf, f.RiskAnalysis)

	writeSectionTitle(pdf, "3. Auto-Filled Document Text")
	pdf.SetFont("Courier", "", 9)
	pdf.MultiCell(0, 5, Sanitize(f.FilledDocument), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 10, Sanitize(title), "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func writeHTMLContent(pdf *fpdf.Fpdf, content string) {
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range strings.Split(StripHTML(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		pdf.MultiCell(0, 5, Sanitize(line), "", "", false)
	}
	pdf.Ln(-1)
}

// StripHTML removes markup tags and decodes HTML entities.
func StripHTML(content string) string {
	return tagPattern.ReplaceAllString(html.UnescapeString(content), "")
}

// Sanitize re-encodes text as single-byte latin-1, which is how the PDF's
// core fonts read strings. Characters outside that range become a visible
// placeholder.
func Sanitize(text string) string {
	var builder strings.Builder
	builder.Grow(len(text))
	for _, r := range text {
		if r > 0xFF {
			builder.WriteByte('?')
			continue
		}
		builder.WriteByte(byte(r))
	}
	return builder.String()
}
