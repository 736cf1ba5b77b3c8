package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/ganesh199/AI-APP-Personal/internal/chat"
	"github.com/ganesh199/AI-APP-Personal/internal/config"
	"github.com/ganesh199/AI-APP-Personal/internal/guardrails"
	"github.com/ganesh199/AI-APP-Personal/internal/observability"
	"github.com/ganesh199/AI-APP-Personal/internal/provider"
	"github.com/ganesh199/AI-APP-Personal/internal/routing"
	"github.com/ganesh199/AI-APP-Personal/internal/server"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("relay stopped")
	}
}

func run() error {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	observability.SetupLogging(cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		log.Debug().Err(envErr).Msg("no .env file loaded")
	}
	if cfg.LogLevel != "debug" && cfg.LogLevel != "trace" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.TelemetryURL != "" {
		tp, err := observability.Setup(ctx, cfg.TelemetryURL)
		if err != nil {
			return fmt.Errorf("set up tracing for %s: %w", cfg.TelemetryURL, err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to flush traces")
			}
		}()
	}

	reg, err := provider.NewRegistry()
	if err != nil {
		return fmt.Errorf("load provider catalog: %w", err)
	}
	guards := guardrails.New(cfg.BannedTerms...)
	cfg.OnChange(func(next *config.Config, err error) {
		if err != nil {
			log.Error().Err(err).Msg("failed to reload config")
			return
		}
		guards.SetBanned(next.BannedTerms)
		log.Info().Str("file", cfg.File()).Int("banned_terms", len(next.BannedTerms)).Msg("config reloaded")
	})

	svc := chat.New(reg, routing.Default(reg), chat.WithGuardrails(guards))

	log.Info().Strs("providers", reg.Names()).Msg("Starting LLM relay")
	if err := server.New(cfg, svc).Start(ctx); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
