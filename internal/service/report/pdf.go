package report

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/twinkal0201/cardio-70-AI/internal/model"
)

type rgb struct{ r, g, b int }

var (
	headerFill = rgb{0, 188, 212}
	titleColor = rgb{0, 28, 60}
	bodyColor  = rgb{50, 50, 50}
	ruleColor  = rgb{200, 200, 200}

	riskGreen  = rgb{76, 175, 80}
	riskOrange = rgb{255, 152, 0}
	riskRed    = rgb{255, 82, 82}
)

func riskColor(level string) rgb {
	switch level {
	case model.RiskHigh:
		return riskRed
	case model.RiskModerate:
		return riskOrange
	default:
		return riskGreen
	}
}

type pdfRenderer struct {
	pdf *fpdf.Fpdf
}

func (r *pdfRenderer) Lines(text string, width, fontSize float64) int {
	r.pdf.SetFont("Helvetica", "", fontSize)
	return len(r.pdf.SplitText(text, width))
}

// RenderPDF lays the sections out and draws them through the PDF library.
func RenderPDF(sections []Section) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	r := &pdfRenderer{pdf: pdf}
	for _, p := range Layout(sections, r) {
		switch s := p.Section.(type) {
		case *HeaderSection:
			r.drawHeader(s)
		case *KeyValueSection:
			r.drawKeyValue(s, p.Y)
		case *SummarySection:
			r.drawSummary(s, p.Y)
		case *TextSection:
			r.drawText(s, p.Y)
		case *DisclaimerSection:
			r.drawDisclaimer(s, p.Y)
		case *FooterSection:
			r.drawFooter(s, p.Y)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pdfRenderer) drawHeader(s *HeaderSection) {
	pdf := r.pdf
	pdf.SetFillColor(headerFill.r, headerFill.g, headerFill.b)
	pdf.Rect(0, 0, pageWidth, 40, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 22)
	pdf.Text(marginX, 20, s.Brand)

	pdf.SetFont("Helvetica", "", 14)
	pdf.Text(marginX, 30, s.Subtitle)

	pdf.SetTextColor(240, 240, 240)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(marginX, 38, s.Meta)
}

func (r *pdfRenderer) drawSectionTitle(title string, y float64) {
	pdf := r.pdf
	pdf.SetTextColor(titleColor.r, titleColor.g, titleColor.b)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(marginX, y, title)
	pdf.SetDrawColor(ruleColor.r, ruleColor.g, ruleColor.b)
	pdf.Line(marginX, y+2, pageWidth-marginX, y+2)
}

func (r *pdfRenderer) drawKeyValue(s *KeyValueSection, y float64) {
	pdf := r.pdf
	r.drawSectionTitle(s.Title, y)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(bodyColor.r, bodyColor.g, bodyColor.b)
	for i, pair := range s.Pairs {
		x := marginX
		if i%2 == 1 {
			x = 110
		}
		rowY := y + 10 + float64(i/2)*7
		pdf.Text(x, rowY, fmt.Sprintf("%s: %s", pair.Label, pair.Value))
	}
}

func (r *pdfRenderer) drawSummary(s *SummarySection, y float64) {
	pdf := r.pdf
	r.drawSectionTitle(s.Title, y)

	y += 12
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(marginX, y, "Predicted Cardiovascular Risk Level:")

	c := riskColor(s.RiskLevel)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(c.r, c.g, c.b)
	pdf.Text(100, y, strings.ToUpper(s.RiskLevel))

	y += 7
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(marginX, y, fmt.Sprintf("Prediction Confidence: %d%%", int(math.Round(s.Confidence))))

	y += 7
	pdf.Text(marginX, y, fmt.Sprintf("Risk Score: %d%%", int(math.Round(s.RiskScore))))
}

func (r *pdfRenderer) drawText(s *TextSection, y float64) {
	pdf := r.pdf
	r.drawSectionTitle(s.Title, y)

	style := ""
	if s.Italic {
		style = "I"
	}
	pdf.SetFont("Helvetica", style, 11)
	pdf.SetTextColor(bodyColor.r, bodyColor.g, bodyColor.b)
	lineY := y + 10
	for _, line := range pdf.SplitText(s.Body, textWidth) {
		pdf.Text(marginX, lineY, line)
		lineY += bodyLineStep
	}
}

func (r *pdfRenderer) drawDisclaimer(s *DisclaimerSection, y float64) {
	pdf := r.pdf
	pdf.SetFillColor(245, 245, 245)
	pdf.Rect(15, y, 180, 42, "F")

	pdf.SetTextColor(100, 100, 100)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.Text(marginX, y+10, s.Title)

	pdf.SetFont("Helvetica", "", 9)
	lineY := y + 17
	for _, line := range pdf.SplitText(s.Body, textWidth) {
		pdf.Text(marginX, lineY, line)
		lineY += 4
	}
}

func (r *pdfRenderer) drawFooter(s *FooterSection, y float64) {
	pdf := r.pdf
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.Text(marginX, y, s.Left)
	pdf.Text(150, y, s.Right)
}
