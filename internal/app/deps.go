package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/joho/godotenv"

	"vynce-backend/internal/ai"
	"vynce-backend/internal/config"
	"vynce-backend/internal/logger"
	"vynce-backend/internal/provider"
	"vynce-backend/internal/registry"
)

// Deps bundles the runtime dependencies shared by every handler. Everything
// here is built once at startup and read-only afterwards.
type Deps struct {
	Config   config.Config
	Log      *slog.Logger
	AI       *ai.Service
	Registry *registry.Registry
	Started  time.Time
}

// Build loads env, config, and shared components. Missing provider
// credentials are not fatal: the affected route reports them as error values
// at call time.
func Build(ctx context.Context) Deps {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	timeout := time.Duration(cfg.LLMTimeout) * time.Second

	gemini := provider.NewGemini(ctx, log, cfg.GeminiKey, cfg.GeminiModel, timeout)
	llama := provider.NewGroq(log, cfg.GroqKey, cfg.GroqBaseURL, cfg.LlamaModel, timeout)

	return Deps{
		Config:   cfg,
		Log:      log,
		AI:       ai.NewService(log, gemini, llama, cfg.Temperature, cfg.MaxTokens),
		Registry: registry.New(cfg.GeminiKey != "", cfg.GroqKey != ""),
		Started:  time.Now(),
	}
}
