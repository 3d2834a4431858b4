package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const llamaName = "Llama"

// Groq calls Llama models through Groq's OpenAI-compatible chat completions
// endpoint for general conversation.
type Groq struct {
	log          *slog.Logger
	client       *openai.Client
	defaultModel string
	timeout      time.Duration
}

// NewGroq builds the Groq adapter. Missing credentials are reported as error
// values at call time, matching the Gemini adapter.
func NewGroq(log *slog.Logger, apiKey, baseURL, defaultModel string, timeout time.Duration) *Groq {
	g := &Groq{
		log:          log,
		defaultModel: defaultModel,
		timeout:      timeout,
	}
	if apiKey == "" || baseURL == "" {
		log.Warn("Groq API key or endpoint not configured; general route unavailable")
		return g
	}
	cli := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	)
	g.client = &cli
	log.Info("Groq client initialized", "model", defaultModel)
	return g
}

// ResolveModel discards requests for Gemini-family models; the general route
// only serves Llama models.
func (g *Groq) ResolveModel(requested string) string {
	if requested == "" || strings.Contains(strings.ToLower(requested), "gemini") {
		return g.defaultModel
	}
	return requested
}

func (g *Groq) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	if g.client == nil {
		return "", &Error{Provider: llamaName, Kind: KindConfig, Detail: "API key or endpoint not configured"}
	}
	reqCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	model := opts.Model
	if model == "" {
		model = g.defaultModel
	}
	resp, err := g.client.Chat.Completions.New(reqCtx, openai.ChatCompletionNewParams{
		Model:            openai.ChatModel(model),
		Messages:         buildMessages(opts.System, prompt),
		MaxTokens:        openai.Int(int64(opts.MaxTokens)),
		Temperature:      openai.Float(opts.Temperature),
		TopP:             openai.Float(0.95),
		FrequencyPenalty: openai.Float(0),
		PresencePenalty:  openai.Float(0),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			g.log.Error("Groq API error", "model", model, "status", apiErr.StatusCode)
			return "", &Error{
				Provider: llamaName,
				Kind:     KindRemote,
				Detail:   fmt.Sprintf("API error %d: %s", apiErr.StatusCode, apiErr.RawJSON()),
			}
		}
		g.log.Error("Groq call failed", "model", model, "err", err)
		return "", &Error{Provider: llamaName, Kind: KindRemote, Detail: err.Error()}
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &Error{Provider: llamaName, Kind: KindFormat, Detail: "unexpected response format"}
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	g.log.Debug("Llama response received", "model", model, "chars", len(text))
	return text, nil
}

func buildMessages(system, user string) []openai.ChatCompletionMessageParamUnion {
	return []openai.ChatCompletionMessageParamUnion{
		{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: openai.String(system),
				},
			},
		},
		{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfString: openai.String(user),
				},
			},
		},
	}
}
