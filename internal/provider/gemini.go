package provider

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"
)

const geminiName = "Gemini"

// Gemini calls the Google Gemini API for page-analysis generation.
type Gemini struct {
	log          *slog.Logger
	client       *genai.Client
	defaultModel string
	timeout      time.Duration
}

// NewGemini builds the Gemini adapter. A missing API key is not fatal here;
// it surfaces as an error value on the first Generate call.
func NewGemini(ctx context.Context, log *slog.Logger, apiKey, defaultModel string, timeout time.Duration) *Gemini {
	g := &Gemini{
		log:          log,
		defaultModel: defaultModel,
		timeout:      timeout,
	}
	if apiKey == "" {
		log.Warn("Gemini API key not configured; context-aware route unavailable")
		return g
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Error("failed to initialize Gemini client", "err", err)
		return g
	}
	g.client = client
	log.Info("Gemini client initialized", "model", defaultModel)
	return g
}

// ResolveModel strips the optional "models/" prefix and discards requests for
// models of the other provider family in favor of the configured default.
func (g *Gemini) ResolveModel(requested string) string {
	name := strings.TrimPrefix(requested, "models/")
	if name == "" || strings.Contains(strings.ToLower(name), "llama") {
		return g.defaultModel
	}
	return name
}

func (g *Gemini) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	if g.client == nil {
		return "", &Error{Provider: geminiName, Kind: KindConfig, Detail: "API key not configured"}
	}
	reqCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	model := opts.Model
	if model == "" {
		model = g.defaultModel
	}
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(opts.Temperature)),
		MaxOutputTokens: int32(opts.MaxTokens),
	}
	if opts.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(opts.System, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(reqCtx, model, genai.Text(prompt), cfg)
	if err != nil {
		g.log.Error("Gemini call failed", "model", model, "err", err)
		return "", &Error{Provider: geminiName, Kind: KindRemote, Detail: err.Error()}
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", &Error{Provider: geminiName, Kind: KindFormat, Detail: "empty response"}
	}
	g.log.Debug("Gemini response received", "model", model, "chars", len(text))
	return text, nil
}
