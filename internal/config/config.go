package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAddr        = ":8080"
	defaultModel       = "mistral-ocr-latest"
	defaultMaxUploadMB = 50
	defaultTimeoutSec  = 120
)

type Config struct {
	Addr           string
	APIKey         string
	Model          string
	MaxUploadBytes int64
	OCRTimeout     time.Duration
	AllowedOrigins []string
}

// Load reads all runtime settings from the environment.
// MISTRAL_API_KEY may be empty: the server still starts, but every
// conversion attempt fails until the key is provided.
func Load() *Config {
	cfg := &Config{
		Addr:           getenv("ADDR", defaultAddr),
		APIKey:         os.Getenv("MISTRAL_API_KEY"),
		Model:          getenv("OCR_MODEL", defaultModel),
		MaxUploadBytes: int64(getenvInt("MAX_UPLOAD_MB", defaultMaxUploadMB)) << 20,
		OCRTimeout:     time.Duration(getenvInt("OCR_TIMEOUT_SECONDS", defaultTimeoutSec)) * time.Second,
	}

	origins := getenv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
