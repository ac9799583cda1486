package main

import (
	"context"
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"

	apphttp "grubstop.com/app/internal/http"
	"grubstop.com/app/internal/storage"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	st, err := storage.FromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to set up cart store: %v", err)
	}
	logger.Info("cart store ready", "driver", st.Driver)

	r := apphttp.NewRouter(logger, st.Store)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	_ = r.Run(addr)
}
