package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Save original env and restore after test
	originalEnv := os.Environ()
	defer func() {
		os.Clearenv()
		for _, env := range originalEnv {
			// Parse and restore each env var
			for i, c := range env {
				if c == '=' {
					os.Setenv(env[:i], env[i+1:])
					break
				}
			}
		}
	}()

	// Clear env to test defaults
	os.Clearenv()

	cfg := Load()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Port", cfg.Port, 8080},
		{"LogLevel", cfg.LogLevel, "info"},
		{"LogFormat", cfg.LogFormat, "json"},
		{"GeminiModel", cfg.GeminiModel, "gemini-2.5-flash"},
		{"GroqBaseURL", cfg.GroqBaseURL, "https://api.groq.com/openai/v1"},
		{"LlamaModel", cfg.LlamaModel, "llama-3.3-70b-versatile"},
		{"MaxTokens", cfg.MaxTokens, 1000},
		{"Temperature", cfg.Temperature, 0.7},
		{"LLMTimeout", cfg.LLMTimeout, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("expected %s=%v, got %v", tt.name, tt.expected, tt.got)
			}
		})
	}

	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("expected CORSOrigins [*], got %v", cfg.CORSOrigins)
	}
}

func TestLoadFromEnv(t *testing.T) {
	// Save and restore env
	originalPort := os.Getenv("PORT")
	originalLogLevel := os.Getenv("LOG_LEVEL")
	defer func() {
		os.Setenv("PORT", originalPort)
		os.Setenv("LOG_LEVEL", originalLogLevel)
	}()

	// Set test values
	os.Setenv("PORT", "9090")
	os.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.LogLevel)
	}
}

func TestLoadCORSOriginsSplit(t *testing.T) {
	original := os.Getenv("CORS_ORIGINS")
	defer os.Setenv("CORS_ORIGINS", original)

	os.Setenv("CORS_ORIGINS", "chrome-extension://abc,http://localhost:3000")

	cfg := Load()

	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %d", len(cfg.CORSOrigins))
	}
	if cfg.CORSOrigins[0] != "chrome-extension://abc" {
		t.Errorf("unexpected first origin: %s", cfg.CORSOrigins[0])
	}
}
