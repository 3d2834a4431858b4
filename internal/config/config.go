package config

import (
	"log/slog"

	"github.com/caarlos0/env/v10"
)

// Config holds runtime configuration loaded from the environment.
type Config struct {
	// Application
	AppName    string `env:"APP_NAME" envDefault:"VynceAI Backend"`
	AppVersion string `env:"APP_VERSION" envDefault:"1.0.0"`

	// Server
	Port      int    `env:"PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"` // "json" or "text"

	// CORS for the extension popup and local development
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	// Gemini (context-aware route)
	GeminiKey   string `env:"GEMINI_API_KEY"`
	GeminiModel string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	// Groq/Llama (general route, OpenAI-compatible endpoint)
	GroqKey     string `env:"LLM_API_KEY"`
	GroqBaseURL string `env:"LLM_API_URL" envDefault:"https://api.groq.com/openai/v1"`
	LlamaModel  string `env:"LLAMA_MODEL" envDefault:"llama-3.3-70b-versatile"`

	// Generation defaults
	MaxTokens   int     `env:"MAX_TOKENS" envDefault:"1000"`
	Temperature float64 `env:"TEMPERATURE" envDefault:"0.7"`

	// Per-call deadline for remote providers, in seconds.
	LLMTimeout int `env:"LLM_TIMEOUT" envDefault:"30"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}
