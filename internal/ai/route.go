package ai

import "strings"

// Route names the provider path a query is dispatched to.
type Route string

const (
	// RouteContextAware answers strictly from supplied page content (Gemini).
	RouteContextAware Route = "context-aware"
	// RouteGeneral answers open-domain conversational prompts (Llama).
	RouteGeneral Route = "general"
)

// generalPatterns route to the general provider when the prompt starts with or
// equals one of them, regardless of any page context. Checked first.
var generalPatterns = []string{
	"hello", "hi", "hey", "greetings", "good morning", "good afternoon",
	"how are you", "who are you", "what are you", "what can you do",
	"help me", "can you help", "i need help",
	"what is", "define", "explain",
	"calculate", "solve", "math",
}

// siteKeywords mark a prompt as being about the current page.
var siteKeywords = []string{
	"page", "website", "this site", "current page", "article", "content",
	"summarize", "summary", "analyze", "what does",
	"tell me about this", "what is this", "read this", "extract",
	"on this page", "from the page", "in this article", "this page",
	"the page", "selected text", "highlighted",
}

// contextRefs are the weaker page references that only count when actual page
// context accompanies the prompt.
var contextRefs = []string{"this", "here", "page", "content", "article"}

// Classify decides which provider serves a prompt. The rules run in a fixed
// order and the first match wins:
//
//  1. general-phrase prefix/equality match
//  2. short utterance (3 words or fewer)
//  3. site-keyword substring match
//  4. non-empty page context plus a page reference in the prompt
//  5. default to general
//
// Rule 1 runs before rule 4 so that a greeting sent alongside page context
// still reaches the conversational provider instead of the page analyzer.
func Classify(prompt string, pc *PageContext) Route {
	lower := strings.ToLower(strings.TrimSpace(prompt))

	for _, pattern := range generalPatterns {
		if lower == pattern {
			return RouteGeneral
		}
		// A prefix match loses to a longer site keyword covering the same
		// opening words: "what is 2+2" is general, "what is this page" is not.
		if strings.HasPrefix(lower, pattern) && !hasLongerSitePrefix(lower, pattern) {
			return RouteGeneral
		}
	}

	if len(strings.Fields(prompt)) <= 3 {
		return RouteGeneral
	}

	for _, keyword := range siteKeywords {
		if strings.Contains(lower, keyword) {
			return RouteContextAware
		}
	}

	if pc.HasContent() {
		for _, ref := range contextRefs {
			if strings.Contains(lower, ref) {
				return RouteContextAware
			}
		}
	}

	return RouteGeneral
}

func hasLongerSitePrefix(lower, pattern string) bool {
	for _, kw := range siteKeywords {
		if len(kw) > len(pattern) && strings.HasPrefix(lower, kw) {
			return true
		}
	}
	return false
}
