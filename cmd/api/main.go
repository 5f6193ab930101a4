package main

import (
	"log"
	"os"

	"docmark/internal/config"
	"docmark/internal/convert"
	"docmark/internal/ocr"
	"docmark/internal/render"
	"docmark/internal/router"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := config.Load()

	if cfg.APIKey == "" {
		log.Println("⚠️  MISTRAL_API_KEY is not set: the UI will load but conversion is disabled")
	}

	// ───────────────────────── WIRING ─────────────────────────
	ocrClient := ocr.NewClient(cfg.APIKey, cfg.Model, cfg.OCRTimeout)
	renderer := render.NewRenderer()

	service := convert.NewService(ocrClient, renderer)
	handler := convert.NewHandler(service, cfg.MaxUploadBytes)

	r := router.NewRouter(handler, cfg.AllowedOrigins)

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 docmark running at http://localhost%s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
