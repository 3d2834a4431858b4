package main

import (
	"encoding/json"
	"net/http"

	"vynce-backend/internal/ai"
	"vynce-backend/internal/app"
	"vynce-backend/internal/httputil"
	"vynce-backend/internal/registry"
)

type aiRequest struct {
	Prompt  string          `json:"prompt" validate:"required,min=1"`
	Context *ai.PageContext `json:"context"`
	Memory  []ai.MemoryItem `json:"memory"`
	Model   string          `json:"model"`
}

type aiResponse struct {
	Response string `json:"response"`
	Model    string `json:"model,omitempty"`
	Tokens   int    `json:"tokens,omitempty"`
	Success  bool   `json:"success"`
}

// chatHandler serves the extension's chat box: prompt plus optional page
// context, conversation memory, and model override.
func chatHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeAIRequest(deps, w, r)
		if !ok {
			return
		}

		res := deps.AI.Generate(r.Context(), ai.Request{
			Prompt:  req.Prompt,
			Model:   req.Model,
			Context: req.Context,
			Memory:  req.Memory,
		})

		httputil.WriteJSON(w, http.StatusOK, aiResponse{
			Response: res.Text,
			Model:    res.Model,
			Tokens:   res.Tokens,
			Success:  res.Err == nil,
		})
	}
}

// queryHandler is the minimal alias for /chat: prompt and model only, no
// context or memory, envelope-free response.
func queryHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeAIRequest(deps, w, r)
		if !ok {
			return
		}

		res := deps.AI.Generate(r.Context(), ai.Request{
			Prompt: req.Prompt,
			Model:  req.Model,
		})

		httputil.WriteJSON(w, http.StatusOK, map[string]any{"response": res.Text})
	}
}

func modelsHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		models := deps.Registry.Models()
		if models == nil {
			models = []registry.Model{}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"models": models,
			"count":  len(models),
		})
	}
}

// summarizeHandler builds a strict summarization instruction over the page
// content and routes it through the generation service.
func summarizeHandler(deps app.Deps) http.HandlerFunc {
	return pagePromptHandler(deps, ai.SummarizePrompt, "page content is required for summarization")
}

// analyzeHandler is summarize's in-depth sibling.
func analyzeHandler(deps app.Deps) http.HandlerFunc {
	return pagePromptHandler(deps, ai.AnalyzePrompt, "page content is required for analysis")
}

func pagePromptHandler(deps app.Deps, buildPrompt func(*ai.PageContext) string, missingMsg string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeAIRequest(deps, w, r)
		if !ok {
			return
		}
		if req.Context == nil || req.Context.PageContent == "" {
			httputil.Fail(deps.Log, w, missingMsg, nil, http.StatusBadRequest)
			return
		}

		res := deps.AI.Generate(r.Context(), ai.Request{
			Prompt: buildPrompt(req.Context),
			Model:  req.Model,
		})

		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"response": res.Text,
			"model":    res.Model,
			"url":      req.Context.URL,
			"title":    req.Context.Title,
		})
	}
}

func decodeAIRequest(deps app.Deps, w http.ResponseWriter, r *http.Request) (aiRequest, bool) {
	var req aiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
		return req, false
	}
	if err := httputil.Validator.Struct(&req); err != nil {
		httputil.ValidationError(deps.Log, w, err)
		return req, false
	}
	return req, true
}
