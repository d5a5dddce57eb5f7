package services

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"resume-analyzer/internal/models"
)

// ReportService renders a validated analysis result into a PDF report.
// Pure presentation: it makes no decisions about the analysis itself.
type ReportService interface {
	GenerateReport(result *models.AnalysisResult) ([]byte, error)
}

type pdfReportService struct{}

func NewPDFReportService() ReportService {
	return &pdfReportService{}
}

// GenerateReport implements ReportService.
func (s *pdfReportService) GenerateReport(result *models.AnalysisResult) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)

	generatedAt := time.Now()
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(85, 10, fmt.Sprintf("Generated on %s", generatedAt.Format("January 2, 2006")), "", 0, "L", false, 0, "")
		pdf.CellFormat(85, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(26, 35, 126)
	pdf.CellFormat(0, 12, "Resume Analysis Report", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated on %s", generatedAt.Format("January 2, 2006 at 3:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(8)

	s.writeScoreBox(pdf, result.AtsScore)
	s.writeSummaryTable(pdf, result)

	s.writeSection(pdf, "Strengths", result.Strengths)
	s.writeSection(pdf, "Areas for Improvement", result.Improvements)
	if len(result.MissingKeywords) > 0 {
		s.writeSection(pdf, "Missing Keywords", result.MissingKeywords)
	}
	s.writeSection(pdf, "Actionable Suggestions", result.Suggestions)

	pdf.AddPage()
	s.writeRecommendations(pdf, result.AtsScore)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	return buf.Bytes(), nil
}

func scoreColor(score int) (r, g, b int) {
	switch {
	case score >= 80:
		return 46, 125, 50
	case score >= 60:
		return 245, 124, 0
	default:
		return 198, 40, 40
	}
}

func scoreLabel(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}

func (s *pdfReportService) writeScoreBox(pdf *gofpdf.Fpdf, score int) {
	r, g, b := scoreColor(score)

	x, y := pdf.GetX(), pdf.GetY()
	pdf.SetDrawColor(r, g, b)
	pdf.SetFillColor(245, 245, 245)
	pdf.SetLineWidth(0.8)
	pdf.Rect(x, y, 170, 36, "FD")

	pdf.SetFont("Helvetica", "B", 40)
	pdf.SetTextColor(r, g, b)
	pdf.CellFormat(170, 20, strconv.Itoa(score), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(170, 7, "ATS Compatibility Score", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(170, 7, scoreLabel(score), "", 1, "C", false, 0, "")
	pdf.Ln(10)
}

func (s *pdfReportService) writeSummaryTable(pdf *gofpdf.Fpdf, result *models.AnalysisResult) {
	rows := []struct {
		metric string
		count  int
	}{
		{"Strengths", len(result.Strengths)},
		{"Improvements", len(result.Improvements)},
		{"Missing Keywords", len(result.MissingKeywords)},
		{"Suggestions", len(result.Suggestions)},
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(40, 53, 147)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(120, 8, "Metric", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 8, "Count", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetFillColor(245, 245, 245)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		pdf.CellFormat(120, 8, row.metric, "1", 0, "L", true, 0, "")
		pdf.CellFormat(50, 8, strconv.Itoa(row.count), "1", 1, "L", true, 0, "")
	}
	pdf.Ln(10)
}

func (s *pdfReportService) writeSection(pdf *gofpdf.Fpdf, title string, items []string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(40, 53, 147)
	pdf.CellFormat(0, 9, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	for _, item := range items {
		pdf.MultiCell(0, 6, "- "+item, "", "L", false)
		pdf.Ln(1)
	}
	pdf.Ln(5)
}

func (s *pdfReportService) writeRecommendations(pdf *gofpdf.Fpdf, score int) {
	var recommendations []string
	switch {
	case score >= 80:
		recommendations = []string{
			"Your resume is excellent. Apply confidently.",
			"Continue tailoring for each job role.",
		}
	case score >= 60:
		recommendations = []string{
			"Improve keyword usage.",
			"Quantify achievements with numbers.",
		}
	default:
		recommendations = []string{
			"Major resume improvements required.",
			"Use ATS-friendly templates and keywords.",
		}
	}

	s.writeSection(pdf, "Final Recommendations", recommendations)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 6, "This AI-generated report is for guidance only.", "", 1, "C", false, 0, "")
}
