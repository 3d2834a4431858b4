package main

import (
	"fmt"
	"net/http"
	"time"

	"vynce-backend/internal/app"
	"vynce-backend/internal/httputil"
)

func indexHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "Welcome to " + deps.Config.AppName,
			"status":  "running",
			"version": deps.Config.AppVersion,
			"endpoints": map[string]string{
				"health":   "/api/v1/utils/health",
				"status":   "/api/v1/utils/status",
				"ai_chat":  "/api/v1/ai/chat",
				"models":   "/api/v1/ai/models",
				"commands": "/api/v1/command/commands",
			},
		})
	}
}

func healthzHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ok")); err != nil {
			deps.Log.Warn("healthz write failed", "err", err)
		}
	}
}

func healthHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"status":  "ok",
			"service": deps.Config.AppName,
			"uptime":  formatUptime(time.Since(deps.Started)),
			"version": deps.Config.AppVersion,
		})
	}
}

func pingHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"ping":      "pong",
			"timestamp": time.Now().Unix(),
		})
	}
}

// configHandler exposes non-sensitive configuration for the extension's
// settings page. Keys themselves never leave the process.
func configHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"app_name":            deps.Config.AppName,
			"version":             deps.Config.AppVersion,
			"api_keys_configured": deps.Registry.ProviderStatus(),
			"available_models":    len(deps.Registry.Models()),
			"max_tokens":          deps.Config.MaxTokens,
			"temperature":         deps.Config.Temperature,
		})
	}
}

func statusHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		models := deps.Registry.Models()
		ids := make([]string, 0, len(models))
		for _, m := range models {
			ids = append(ids, m.ID)
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"service":          deps.Config.AppName,
			"status":           "running",
			"version":          deps.Config.AppVersion,
			"uptime_seconds":   int(time.Since(deps.Started).Seconds()),
			"api_providers":    deps.Registry.ProviderStatus(),
			"available_models": ids,
			"total_models":     len(ids),
		})
	}
}

func formatUptime(d time.Duration) string {
	secs := int(d.Seconds())
	mins := secs / 60
	hours := mins / 60
	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins%60)
	case mins > 0:
		return fmt.Sprintf("%dm %ds", mins, secs%60)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}
