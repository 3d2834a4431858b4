// Package registry enumerates the models the backend can serve. The lists are
// static: no discovery call is made to either provider, a model is simply
// listed when its provider's API key is configured.
package registry

// Model describes one selectable model.
type Model struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Provider    string `json:"provider"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// Registry reads provider availability once at startup.
type Registry struct {
	geminiConfigured bool
	groqConfigured   bool
}

func New(geminiConfigured, groqConfigured bool) *Registry {
	return &Registry{
		geminiConfigured: geminiConfigured,
		groqConfigured:   groqConfigured,
	}
}

// Models returns the models available with the configured credentials.
func (r *Registry) Models() []Model {
	var models []Model
	if r.geminiConfigured {
		models = append(models,
			Model{
				ID:          "gemini-2.5-flash",
				Name:        "Gemini 2.5 Flash",
				Provider:    "gemini",
				Type:        "site-specific",
				Description: "Fast model for page analysis and summarization",
			},
			Model{
				ID:          "gemini-1.5-flash",
				Name:        "Gemini 1.5 Flash",
				Provider:    "gemini",
				Type:        "site-specific",
				Description: "Previous generation model, still very capable",
			},
		)
	}
	if r.groqConfigured {
		models = append(models,
			Model{
				ID:          "llama-3.3-70b-versatile",
				Name:        "Llama 3.3 70B",
				Provider:    "groq",
				Type:        "general",
				Description: "Versatile model for general conversations",
			},
		)
	}
	return models
}

// ProviderStatus reports which provider credentials are configured.
func (r *Registry) ProviderStatus() map[string]bool {
	return map[string]bool{
		"gemini": r.geminiConfigured,
		"groq":   r.groqConfigured,
	}
}
