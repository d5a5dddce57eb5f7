package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Gemini   GeminiConfig
	Upload   UploadConfig
	Analysis AnalysisConfig
}

type ServerConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type CORSConfig struct {
	AllowOrigins string
}

type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

type UploadConfig struct {
	MaxFileSize            int64
	MaxJobDescriptionChars int
}

// AnalysisConfig carries the pipeline thresholds. The defaults come from the
// heuristic's original calibration; they are exposed as settings rather than
// re-derived.
type AnalysisConfig struct {
	MinExtractedChars   int
	MinResumeTextLength int
	MinResumeScore      int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:     getEnv("PORT", "3000"),
			Env:      getEnv("ENV", "development"),
			LogLevel: getEnv("LOG_LEVEL", "info"),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		},
		Gemini: GeminiConfig{
			APIKey:      getEnv("GEMINI_API_KEY", ""),
			Model:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Temperature: getEnvAsFloat32("GEMINI_TEMPERATURE", 0.7),
			MaxTokens:   getEnvAsInt("GEMINI_MAX_TOKENS", 2000),
			Timeout:     getEnvAsDuration("GEMINI_TIMEOUT", "60s"),
		},
		Upload: UploadConfig{
			MaxFileSize:            getEnvAsInt64("MAX_FILE_SIZE", 10485760),
			MaxJobDescriptionChars: getEnvAsInt("MAX_JOB_DESCRIPTION_CHARS", 10000),
		},
		Analysis: AnalysisConfig{
			MinExtractedChars:   getEnvAsInt("MIN_EXTRACTED_CHARS", 50),
			MinResumeTextLength: getEnvAsInt("MIN_RESUME_TEXT_LENGTH", 500),
			MinResumeScore:      getEnvAsInt("MIN_RESUME_SCORE", 3),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 32); err == nil {
		return float32(value)
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
