package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/MikhailRaia/link-share/internal/app"
	"github.com/MikhailRaia/link-share/internal/config"
	"github.com/MikhailRaia/link-share/internal/logger"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := logger.InitLogger(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize logger")
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	if cfg.Clipboard == config.ClipboardSystem {
		log.Warn().Msg("Using the system clipboard of the server host")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.NewApp(cfg).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Error running share server")
	}
}
