package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	ProviderBedrock = "bedrock"
	ProviderOpenAI  = "openai"
)

type Config struct {
	Port     string
	LogLevel string

	// AWS
	S3Bucket  string
	AWSRegion string

	// Generation backend
	GenerationProvider string
	ModelID            string
	OpenAIAPIKey       string
	OpenAIModel        string
	OpenAIBaseURL      string

	// Inference defaults, overridable per request
	MaxNewTokens int
	Temperature  float64
	TopP         float64
	TopK         int

	// Upload limits
	MaxFileSize int64
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		S3Bucket:           getEnv("S3_BUCKET", ""),
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		GenerationProvider: getEnv("GENERATION_PROVIDER", ProviderBedrock),
		ModelID:            getEnv("MODEL_ID", "amazon.nova-micro-v1:0"),
		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:        getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:      getEnv("OPENAI_BASE_URL", ""),
		MaxNewTokens:       getEnvInt("MAX_NEW_TOKENS", 1000),
		Temperature:        getEnvFloat("TEMPERATURE", 0.7),
		TopP:               getEnvFloat("TOP_P", 0.9),
		TopK:               getEnvInt("TOP_K", 20),
		MaxFileSize:        5 * 1024 * 1024,
	}

	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is required")
	}

	switch cfg.GenerationProvider {
	case ProviderBedrock:
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when GENERATION_PROVIDER=openai")
		}
	default:
		return nil, fmt.Errorf("unknown GENERATION_PROVIDER %q (expected %s or %s)",
			cfg.GenerationProvider, ProviderBedrock, ProviderOpenAI)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
