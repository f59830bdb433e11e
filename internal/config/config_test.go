package config

import (
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "S3_BUCKET", "AWS_REGION", "GENERATION_PROVIDER",
		"MODEL_ID", "OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL",
		"MAX_NEW_TOKENS", "TEMPERATURE", "TOP_P", "TOP_K",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadRequiresBucket(t *testing.T) {
	clearEnv(t)

	if _, err := Load(); err == nil {
		t.Fatal("expected error when S3_BUCKET is unset")
	} else if !strings.Contains(err.Error(), "S3_BUCKET") {
		t.Errorf("error should name S3_BUCKET, got: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("S3_BUCKET", "documents")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.AWSRegion != "us-east-1" {
		t.Errorf("AWSRegion = %q, want us-east-1", cfg.AWSRegion)
	}
	if cfg.GenerationProvider != ProviderBedrock {
		t.Errorf("GenerationProvider = %q, want %q", cfg.GenerationProvider, ProviderBedrock)
	}
	if cfg.ModelID != "amazon.nova-micro-v1:0" {
		t.Errorf("ModelID = %q, want amazon.nova-micro-v1:0", cfg.ModelID)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.MaxNewTokens != 1000 || cfg.Temperature != 0.7 || cfg.TopP != 0.9 || cfg.TopK != 20 {
		t.Errorf("unexpected inference defaults: %d %v %v %d",
			cfg.MaxNewTokens, cfg.Temperature, cfg.TopP, cfg.TopK)
	}
}

func TestLoadOpenAIProviderRequiresKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("S3_BUCKET", "documents")
	t.Setenv("GENERATION_PROVIDER", "openai")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when OPENAI_API_KEY is unset for openai provider")
	}

	t.Setenv("OPENAI_API_KEY", "sk-test")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.GenerationProvider != ProviderOpenAI {
		t.Errorf("GenerationProvider = %q, want openai", cfg.GenerationProvider)
	}
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("S3_BUCKET", "documents")
	t.Setenv("GENERATION_PROVIDER", "anthropic")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestLoadParsesInferenceOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("S3_BUCKET", "documents")
	t.Setenv("MAX_NEW_TOKENS", "500")
	t.Setenv("TEMPERATURE", "0.2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.MaxNewTokens != 500 {
		t.Errorf("MaxNewTokens = %d, want 500", cfg.MaxNewTokens)
	}
	if cfg.Temperature != 0.2 {
		t.Errorf("Temperature = %v, want 0.2", cfg.Temperature)
	}
}
