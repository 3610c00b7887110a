package main

import (
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"

	"github.com/spanishfly666/telegram-nitro-bot/internal/catalog"
	"github.com/spanishfly666/telegram-nitro-bot/internal/config"
	apphttp "github.com/spanishfly666/telegram-nitro-bot/internal/http"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	svc, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}

	logger.Info("catalog loaded",
		"path", cfg.Catalog.Path,
		"categories", len(svc.Categories()),
		"products", len(svc.Products("")),
	)

	r := apphttp.NewRouter(logger, svc, cfg.App)
	if err := r.Run(cfg.Server.Addr()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
