package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"resume-analyzer/internal/config"
	"resume-analyzer/internal/handlers"
	"resume-analyzer/internal/models"
	"resume-analyzer/internal/services"
	"resume-analyzer/internal/utils"
)

const appVersion = "1.0.0"

func main() {
	// Load configuration
	cfg := config.Load()

	logger := utils.NewLogger(cfg.Server.LogLevel)
	logger.Info("config loaded", "env", cfg.Server.Env)

	// Initialize pipeline services
	extractor := services.NewPDFExtractorService(cfg.Analysis.MinExtractedChars, logger)
	classifier := services.NewResumeClassifierService(cfg.Analysis.MinResumeTextLength, cfg.Analysis.MinResumeScore)

	geminiService, err := services.NewGeminiService(
		context.Background(),
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.Temperature,
		int32(cfg.Gemini.MaxTokens),
	)
	if err != nil {
		logger.Fatal("failed to initialize Gemini client", "error", err.Error())
	}
	logger.Info("Gemini client initialized", "model", cfg.Gemini.Model)

	analyzer := services.NewAnalyzerService(extractor, classifier, geminiService, cfg.Gemini.Timeout, logger)
	reportService := services.NewPDFReportService()

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(analyzer, cfg.Upload.MaxFileSize, cfg.Upload.MaxJobDescriptionChars, logger)
	reportHandler := handlers.NewReportHandler(reportService, logger)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Gemini.Timeout + 30*time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(models.HealthResponse{
			Status:      "healthy",
			Version:     appVersion,
			Environment: cfg.Server.Env,
		})
	})

	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Post("/report", reportHandler.HandleDownloadReport)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Analyzer API",
			"version": appVersion,
			"endpoints": []string{
				"POST /api/v1/analyze",
				"POST /api/v1/report",
				"GET /api/v1/health",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			logger.Error("server forced to shutdown", "error", err.Error())
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("server starting", "addr", addr)

	if err := app.Listen(addr); err != nil {
		logger.Fatal("failed to start server", "error", err.Error())
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Error: err.Error(),
	})
}
