package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MISTRAL_API_KEY", "")
	t.Setenv("ADDR", "")
	t.Setenv("OCR_MODEL", "")
	t.Setenv("MAX_UPLOAD_MB", "")
	t.Setenv("OCR_TIMEOUT_SECONDS", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg := Load()

	if cfg.Addr != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.Addr)
	}
	if cfg.APIKey != "" {
		t.Fatalf("expected empty key, got %q", cfg.APIKey)
	}
	if cfg.Model != "mistral-ocr-latest" {
		t.Fatalf("unexpected model %s", cfg.Model)
	}
	if cfg.MaxUploadBytes != 50<<20 {
		t.Fatalf("expected 50 MB cap, got %d", cfg.MaxUploadBytes)
	}
	if cfg.OCRTimeout != 120*time.Second {
		t.Fatalf("expected 120s timeout, got %s", cfg.OCRTimeout)
	}
	if len(cfg.AllowedOrigins) == 0 {
		t.Fatal("expected default dev origins")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MISTRAL_API_KEY", "sk-test")
	t.Setenv("ADDR", ":9999")
	t.Setenv("OCR_MODEL", "mistral-ocr-2505")
	t.Setenv("MAX_UPLOAD_MB", "10")
	t.Setenv("OCR_TIMEOUT_SECONDS", "30")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	if cfg.APIKey != "sk-test" {
		t.Fatalf("unexpected key %q", cfg.APIKey)
	}
	if cfg.Addr != ":9999" {
		t.Fatalf("unexpected addr %s", cfg.Addr)
	}
	if cfg.Model != "mistral-ocr-2505" {
		t.Fatalf("unexpected model %s", cfg.Model)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Fatalf("expected 10 MB cap, got %d", cfg.MaxUploadBytes)
	}
	if cfg.OCRTimeout != 30*time.Second {
		t.Fatalf("expected 30s, got %s", cfg.OCRTimeout)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("origins not parsed: %v", cfg.AllowedOrigins)
	}
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "not-a-number")
	t.Setenv("OCR_TIMEOUT_SECONDS", "-5")

	cfg := Load()

	if cfg.MaxUploadBytes != 50<<20 {
		t.Fatalf("expected default cap on bad input, got %d", cfg.MaxUploadBytes)
	}
	if cfg.OCRTimeout != 120*time.Second {
		t.Fatalf("expected default timeout on bad input, got %s", cfg.OCRTimeout)
	}
}
