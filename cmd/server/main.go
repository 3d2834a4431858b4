package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"vynce-backend/internal/app"
	"vynce-backend/internal/httputil"
)

func main() {
	deps := app.Build(context.Background())

	r := httputil.NewRouter(deps.Log, deps.Config.CORSOrigins)
	registerRoutes(r, deps)

	logStartup(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		deps.Log.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		deps.Log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		deps.Log.Error("server error", "err", err)
		os.Exit(1)
	}
	deps.Log.Info("server stopped")
}

func registerRoutes(r *chi.Mux, deps app.Deps) {
	r.Get("/", indexHandler(deps))
	r.Get("/healthz", healthzHandler(deps))

	r.Route("/api/v1/ai", func(r chi.Router) {
		r.Post("/chat", chatHandler(deps))
		r.Post("/query", queryHandler(deps))
		r.Get("/models", modelsHandler(deps))
		r.Post("/summarize", summarizeHandler(deps))
		r.Post("/analyze", analyzeHandler(deps))
	})

	r.Route("/api/v1/command", func(r chi.Router) {
		r.Post("/run", runCommandHandler(deps))
		r.Get("/commands", listCommandsHandler(deps))
		r.Post("/validate", validateCommandHandler(deps))
	})

	r.Route("/api/v1/utils", func(r chi.Router) {
		r.Get("/health", healthHandler(deps))
		r.Get("/ping", pingHandler(deps))
		r.Get("/config", configHandler(deps))
		r.Get("/status", statusHandler(deps))
	})
}

func logStartup(deps app.Deps) {
	status := deps.Registry.ProviderStatus()
	deps.Log.Info("starting",
		"service", deps.Config.AppName,
		"version", deps.Config.AppVersion,
		"gemini_configured", status["gemini"],
		"groq_configured", status["groq"],
	)
	if !status["gemini"] && !status["groq"] {
		deps.Log.Warn("no provider API keys configured; all generation calls will return error values")
	}
	for _, m := range deps.Registry.Models() {
		deps.Log.Info("model available", "id", m.ID, "provider", m.Provider, "type", m.Type)
	}
}
