package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	LLM      LLMConfig
	Digitize DigitizeConfig
}

// ServerConfig holds the HTTP surface configuration.
type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
}

// LLMConfig holds the generation-service configuration. TextModel serves the
// extraction endpoints; OCRModel serves page transcription.
type LLMConfig struct {
	APIKey      string
	BaseURL     string
	TextModel   string
	OCRModel    string
	Temperature float32
	Timeout     time.Duration
}

// DigitizeConfig bounds the per-document page fan-out.
type DigitizeConfig struct {
	PageConcurrency int
	PageTimeout     time.Duration
}

// Load reads configuration from the environment, after loading .env when one
// is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8000"),
			RequestTimeout: getEnvAsDuration("REQUEST_TIMEOUT", 5*time.Minute),
		},
		LLM: LLMConfig{
			APIKey:      getEnv("API_KEY", ""),
			BaseURL:     getEnv("BASE_URL", ""),
			TextModel:   getEnv("LLM_MODEL", ""),
			OCRModel:    getEnv("OCR_MODEL", ""),
			Temperature: getEnvAsFloat32("LLM_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("LLM_TIMEOUT", 120*time.Second),
		},
		Digitize: DigitizeConfig{
			PageConcurrency: getEnvAsInt("PAGE_CONCURRENCY", 8),
			PageTimeout:     getEnvAsDuration("PAGE_TIMEOUT", 2*time.Minute),
		},
	}
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return fmt.Errorf("config: API_KEY is required")
	}
	if c.LLM.BaseURL == "" {
		return fmt.Errorf("config: BASE_URL is required")
	}
	if c.LLM.TextModel == "" {
		return fmt.Errorf("config: LLM_MODEL is required")
	}
	if c.LLM.OCRModel == "" {
		return fmt.Errorf("config: OCR_MODEL is required")
	}
	return nil
}

// Helper functions for environment variable parsing.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
