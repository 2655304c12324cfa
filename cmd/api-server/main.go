package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"mangacatalog/internal/config"
	"mangacatalog/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger := cfg.NewLogger(os.Stdout)
	slog.SetDefault(logger)
	logger.Info("starting_api_server", "env", cfg.GoEnv, "addr", cfg.HTTPAddr())

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx, cfg, logger); err != nil {
		logger.Error("server_error", "error", err.Error())
		os.Exit(1)
	}
}
