package ai

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"vynce-backend/internal/provider"
)

// Defaults applied to the general route when the caller gives no overrides.
// The context-aware route takes its defaults from configuration instead.
const (
	generalMaxTokens   = 512
	generalTemperature = 0.7
)

// Request is one generation call. Prompt is required; everything else is
// optional and validated by the HTTP layer before it gets here.
type Request struct {
	Prompt      string
	Model       string
	Context     *PageContext
	Memory      []MemoryItem
	Temperature float64
	MaxTokens   int
}

// Result is what a generation call produced. Text always holds something a
// caller can show: either model output or the flattened error value. Err keeps
// the typed failure so callers that care can tell the two apart without string
// sniffing.
type Result struct {
	Text   string
	Model  string
	Tokens int
	Route  Route
	Err    *provider.Error
}

// Service routes a request to the right provider with the right prompt. It
// holds no per-request state; both adapters are initialized once at startup
// and shared read-only.
type Service struct {
	log         *slog.Logger
	gemini      provider.Generator
	llama       provider.Generator
	temperature float64
	maxTokens   int
}

func NewService(log *slog.Logger, gemini, llama provider.Generator, temperature float64, maxTokens int) *Service {
	return &Service{
		log:         log,
		gemini:      gemini,
		llama:       llama,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// Generate classifies the prompt, assembles the route-specific instruction
// text, and calls the chosen provider. Provider failures never propagate as
// errors; they come back flattened in Result.Text with Result.Err set.
func (s *Service) Generate(ctx context.Context, req Request) Result {
	route := Classify(req.Prompt, req.Context)

	var (
		gen    provider.Generator
		model  string
		prompt string
		opts   provider.Options
	)

	switch route {
	case RouteContextAware:
		gen = s.gemini
		model = gen.ResolveModel(req.Model)
		prompt = sitePrompt(req.Prompt, req.Context)
		opts = provider.Options{
			Model:       model,
			Temperature: orDefaultFloat(req.Temperature, s.temperature),
			MaxTokens:   orDefaultInt(req.MaxTokens, s.maxTokens),
		}
	default:
		gen = s.llama
		model = gen.ResolveModel(req.Model)
		prompt = req.Prompt
		if len(req.Memory) > 0 || !req.Context.IsEmpty() {
			prompt = generalPrompt(req.Prompt, req.Context, req.Memory)
		}
		opts = provider.Options{
			Model:       model,
			System:      generalPersona,
			Temperature: orDefaultFloat(req.Temperature, generalTemperature),
			MaxTokens:   orDefaultInt(req.MaxTokens, generalMaxTokens),
		}
	}

	s.log.Info("routing query", "route", route, "model", model)

	text, err := gen.Generate(ctx, prompt, opts)
	if err != nil {
		perr := asProviderError(err, route)
		s.log.Error("generation failed", "route", route, "model", model, "kind", perr.Kind, "detail", perr.Detail)
		flat := perr.Error()
		return Result{Text: flat, Model: model, Tokens: approxTokens(flat), Route: route, Err: perr}
	}
	return Result{Text: text, Model: model, Tokens: approxTokens(text), Route: route}
}

// approxTokens is the whitespace word count stand-in for a real tokenizer.
func approxTokens(text string) int {
	return len(strings.Fields(text))
}

func asProviderError(err error, route Route) *provider.Error {
	var perr *provider.Error
	if errors.As(err, &perr) {
		return perr
	}
	name := "Llama"
	if route == RouteContextAware {
		name = "Gemini"
	}
	return &provider.Error{Provider: name, Kind: provider.KindRemote, Detail: err.Error()}
}

func orDefaultFloat(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func orDefaultInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
