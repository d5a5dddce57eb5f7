package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"resume-analyzer/internal/models"
	"resume-analyzer/internal/services"
	"resume-analyzer/internal/utils"
)

type ReportHandler struct {
	reportService services.ReportService
	logger        *utils.Logger
}

func NewReportHandler(reportService services.ReportService, logger *utils.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// HandleDownloadReport handles POST /api/v1/report. The body is a previously
// obtained analysis result; it is re-validated before rendering so a
// hand-crafted invalid payload cannot reach the renderer.
func (h *ReportHandler) HandleDownloadReport(c *fiber.Ctx) error {
	var result models.AnalysisResult
	if err := c.BodyParser(&result); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "invalid request payload",
		})
	}

	if err := result.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error:   "invalid analysis result",
			Details: err.Error(),
		})
	}

	report, err := h.reportService.GenerateReport(&result)
	if err != nil {
		h.logger.Error("failed to generate report", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "failed to generate report",
		})
	}

	filename := fmt.Sprintf("Resume_Analysis_Report_%s.pdf", time.Now().Format("20060102_150405"))
	h.logger.Info("report generated", "filename", filename, "bytes", len(report))

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Send(report)
}
