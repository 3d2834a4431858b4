package ai

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"vynce-backend/internal/provider"
)

func newTestService(gemini, llama provider.Generator) *Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(log, gemini, llama, 0.7, 1000)
}

func TestGenerateGeneralRoute(t *testing.T) {
	gemini := new(provider.MockGenerator)
	llama := new(provider.MockGenerator)
	svc := newTestService(gemini, llama)

	llama.On("ResolveModel", "").Return("llama-3.3-70b-versatile").Once()
	llama.On("Generate", mock.Anything, "What is 2+2?", mock.MatchedBy(func(opts provider.Options) bool {
		return opts.System != "" && opts.MaxTokens == generalMaxTokens
	})).Return("4", nil).Once()

	res := svc.Generate(context.Background(), Request{Prompt: "What is 2+2?"})

	if res.Err != nil {
		t.Fatalf("unexpected provider error: %v", res.Err)
	}
	if res.Text != "4" {
		t.Errorf("expected adapter text returned verbatim, got %q", res.Text)
	}
	if res.Route != RouteGeneral {
		t.Errorf("expected general route, got %q", res.Route)
	}
	if res.Model != "llama-3.3-70b-versatile" {
		t.Errorf("unexpected model: %q", res.Model)
	}
	if res.Tokens != 1 {
		t.Errorf("expected 1 approximate token, got %d", res.Tokens)
	}
	llama.AssertExpectations(t)
	gemini.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateContextAwareRoute(t *testing.T) {
	gemini := new(provider.MockGenerator)
	llama := new(provider.MockGenerator)
	svc := newTestService(gemini, llama)

	pc := &PageContext{URL: "https://x.test", PageContent: strings.Repeat("x", 3000)}

	var sentPrompt string
	gemini.On("ResolveModel", "").Return("gemini-2.5-flash").Once()
	gemini.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
		sentPrompt = p
		return true
	}), mock.MatchedBy(func(opts provider.Options) bool {
		return opts.MaxTokens == 1000 && opts.Temperature == 0.7
	})).Return("It covers widget pricing.", nil).Once()

	res := svc.Generate(context.Background(), Request{
		Prompt:  "What is this page about?",
		Context: pc,
	})

	if res.Route != RouteContextAware {
		t.Fatalf("expected context-aware route, got %q", res.Route)
	}
	if res.Text != "It covers widget pricing." {
		t.Errorf("unexpected text: %q", res.Text)
	}
	if !strings.Contains(sentPrompt, "https://x.test") {
		t.Error("assembled prompt missing page URL")
	}
	if !strings.Contains(sentPrompt, RefusalSentence) {
		t.Error("assembled prompt missing refusal instruction")
	}
	if strings.Contains(sentPrompt, strings.Repeat("x", 2001)) {
		t.Error("assembled prompt contains untruncated page content")
	}
	gemini.AssertExpectations(t)
	llama.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateModelOverrideGuard(t *testing.T) {
	// The adapter owns the override guard; the service must report the model
	// the adapter resolved, not the one requested.
	gemini := new(provider.MockGenerator)
	llama := new(provider.MockGenerator)
	svc := newTestService(gemini, llama)

	gemini.On("ResolveModel", "llama-3.3-70b-versatile").Return("gemini-2.5-flash").Once()
	gemini.On("Generate", mock.Anything, mock.Anything, mock.MatchedBy(func(opts provider.Options) bool {
		return opts.Model == "gemini-2.5-flash"
	})).Return("ok", nil).Once()

	res := svc.Generate(context.Background(), Request{
		Prompt:  "Summarize this page for me",
		Model:   "llama-3.3-70b-versatile",
		Context: &PageContext{PageContent: "content"},
	})

	if res.Model != "gemini-2.5-flash" {
		t.Errorf("expected resolved default model, got %q", res.Model)
	}
	gemini.AssertExpectations(t)
}

func TestGenerateErrorAsValue(t *testing.T) {
	gemini := new(provider.MockGenerator)
	llama := new(provider.MockGenerator)
	svc := newTestService(gemini, llama)

	perr := &provider.Error{Provider: "Llama", Kind: provider.KindRemote, Detail: "API error 500: boom"}
	llama.On("ResolveModel", "").Return("llama-3.3-70b-versatile").Once()
	llama.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return("", perr).Once()

	res := svc.Generate(context.Background(), Request{Prompt: "hello there my friend"})

	if res.Err == nil {
		t.Fatal("expected typed error to be preserved")
	}
	if res.Err.Kind != provider.KindRemote {
		t.Errorf("expected remote kind, got %q", res.Err.Kind)
	}
	if !strings.Contains(res.Text, "500") {
		t.Errorf("expected status code in flattened text, got %q", res.Text)
	}
	if !strings.HasPrefix(res.Text, "Llama error:") {
		t.Errorf("expected error-value form, got %q", res.Text)
	}
}

func TestGenerateMemoryGoesToGeneralPrompt(t *testing.T) {
	gemini := new(provider.MockGenerator)
	llama := new(provider.MockGenerator)
	svc := newTestService(gemini, llama)

	var sentPrompt string
	llama.On("ResolveModel", "").Return("llama-3.3-70b-versatile").Once()
	llama.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
		sentPrompt = p
		return true
	}), mock.Anything).Return("sure", nil).Once()

	memory := []MemoryItem{
		{User: "old question one", Bot: "a1"},
		{User: "old question two", Bot: "a2"},
		{User: "old question three", Bot: "a3"},
		{User: "old question four", Bot: "a4"},
	}
	svc.Generate(context.Background(), Request{
		Prompt: "tell me more about that topic",
		Memory: memory,
	})

	if strings.Contains(sentPrompt, "old question one") {
		t.Error("oldest memory item should fall outside the window")
	}
	if !strings.Contains(sentPrompt, "old question four") {
		t.Error("latest memory item missing from assembled prompt")
	}
}
