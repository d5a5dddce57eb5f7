package handlers

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-analyzer/internal/models"
	"resume-analyzer/internal/services"
	"resume-analyzer/internal/utils"
)

type AnalyzeHandler struct {
	analyzer          services.AnalyzerService
	maxFileSize       int64
	maxJobDescription int
	logger            *utils.Logger
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	maxFileSize int64,
	maxJobDescription int,
	logger *utils.Logger,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:          analyzer,
		maxFileSize:       maxFileSize,
		maxJobDescription: maxJobDescription,
		logger:            logger,
	}
}

// HandleAnalyze handles POST /api/v1/analyze. It validates the upload,
// truncates the optional job description and runs the analysis pipeline,
// mapping each failure kind onto an HTTP status.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	requestID := uuid.New().String()

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "resume file is required",
		})
	}

	if ext := strings.ToLower(filepath.Ext(fileHeader.Filename)); ext != ".pdf" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error:   "invalid file type, only PDF files are accepted",
			Details: fmt.Sprintf("received: %s", ext),
		})
	}

	if fileHeader.Size == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "uploaded file is empty",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error:   "file too large",
			Details: fmt.Sprintf("maximum size: %d bytes", h.maxFileSize),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("failed to open upload", "request_id", requestID, "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "failed to read uploaded file",
		})
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("failed to read upload", "request_id", requestID, "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "failed to read uploaded file",
		})
	}

	jobDescription := strings.TrimSpace(c.FormValue("jobDescription"))
	if len(jobDescription) > h.maxJobDescription {
		// Truncate on rune boundaries so a multi-byte character is never
		// split into invalid UTF-8.
		if runes := []rune(jobDescription); len(runes) > h.maxJobDescription {
			h.logger.Warn("job description truncated",
				"request_id", requestID,
				"length", len(runes),
				"max", h.maxJobDescription,
			)
			jobDescription = string(runes[:h.maxJobDescription])
		}
	}

	h.logger.Info("analysis request received",
		"request_id", requestID,
		"file", fileHeader.Filename,
		"size", fileHeader.Size,
	)

	document := models.RawDocument{
		Content:  content,
		Filename: fileHeader.Filename,
	}

	result, err := h.analyzer.Analyze(c.UserContext(), document, jobDescription)
	if err != nil {
		return h.respondError(c, requestID, err)
	}

	return c.JSON(result)
}

// respondError translates pipeline error kinds into transport responses:
// content problems read as client errors, transient/server-side failures as
// internal errors that are safe to retry.
func (h *AnalyzeHandler) respondError(c *fiber.Ctx, requestID string, err error) error {
	var analysisErr *services.AnalysisError
	if !errors.As(err, &analysisErr) {
		h.logger.Error("analysis failed", "request_id", requestID, "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "internal server error",
		})
	}

	if analysisErr.Retryable() {
		h.logger.Error("analysis failed",
			"request_id", requestID,
			"kind", string(analysisErr.Kind),
			"details", analysisErr.Details,
		)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error:   analysisErr.Message,
			Details: analysisErr.Details,
		})
	}

	h.logger.Warn("analysis rejected",
		"request_id", requestID,
		"kind", string(analysisErr.Kind),
		"details", analysisErr.Details,
	)
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Error:   analysisErr.Message,
		Details: analysisErr.Details,
	})
}
