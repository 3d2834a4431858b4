package ai

import (
	"fmt"
	"strings"
)

// RefusalSentence is the exact reply the page analyzer is instructed to give
// for questions it cannot answer from page content. The extension matches on
// it, so the wording must not drift.
const RefusalSentence = "I specialize in analyzing page content. Please switch to General Mode for general questions and conversations."

// sitePreamble is the strict persona for the context-aware route. It locks the
// model to the supplied page and tells it to redirect everything else.
var sitePreamble = `You are VynceAI, a precise AI assistant specialized in analyzing web pages.

STRICT RULES - CRITICAL:
- ONLY analyze and respond based on the provided page content below
- DO NOT answer general questions, greetings, math problems, or non-page-related queries
- DO NOT provide external information or general knowledge
- DO NOT use emojis in responses
- Be precise, clear, and factual
- Focus strictly on the page content provided

IMPORTANT - DETECT NON-PAGE QUERIES:
If the user's question is:
- A greeting (hi, hello, hey, how are you)
- Math (what is 2+2, calculate, solve)
- General knowledge (who is, what is [not in page], define)
- Personal questions (how are you, who are you)
- Any topic NOT in the page content below

YOU MUST respond EXACTLY with this message:
"` + RefusalSentence + `"

DO NOT try to answer these questions. ONLY redirect to General Mode.

ONLY answer if the question is directly about the page content below.`

// generalPersona is the system message handed to the conversational provider.
const generalPersona = `You are VynceAI, a friendly and knowledgeable AI assistant integrated into a Chrome browser extension.

STRICT RULES:
- DO NOT use emojis in responses
- Be friendly but professional
- Provide accurate, helpful information
- Keep responses concise and clear
- Do not hallucinate or make up information

ABOUT VYNCEAI:
VynceAI is a Chrome browser extension that provides:
- AI-powered web page analysis
- Intelligent chat assistance while browsing
- Context-aware responses based on page content
- Dual AI system (Gemini for page analysis, Llama for general chat)

YOUR ROLE:
- Answer general questions conversationally
- Help with product-related queries about VynceAI
- Assist developers with technical questions
- Provide friendly, accurate responses
- Redirect site-specific questions to page content

When users ask about you, identify as VynceAI, a Chrome extension assistant.`

// enhancedPreamble opens the assembled user prompt on the general route when
// memory or context is present.
const enhancedPreamble = `You are VynceAI, an AI assistant for web browsing integrated into a Chrome extension.

STRICT RULES:
- DO NOT use emojis in any responses
- Be professional, clear, and concise
- Provide accurate information without hallucination
- Stay focused on the user's question
- If you don't know something, admit it clearly

ABOUT VYNCEAI:
VynceAI is a Chrome browser extension providing:
- AI-powered page analysis (using Gemini)
- General chat assistance (using Llama)
- Context-aware responses based on page content
- Intelligent dual-model routing

CAPABILITIES:
- Analyze web page content when provided
- Answer questions about websites
- Provide general knowledge and assistance
- Help with product and developer queries
- Remember conversation context

YOUR BEHAVIOR:
- For page-specific queries: Focus strictly on provided content
- For general queries: Be helpful and conversational but professional
- Always be factual and precise
- Keep responses clear and well-structured`

// sitePrompt assembles the full instruction text for the context-aware route:
// strict preamble, the page block, then the user's question. Without context
// the prompt passes through unchanged.
func sitePrompt(prompt string, pc *PageContext) string {
	if pc.IsEmpty() {
		return prompt
	}

	parts := []string{sitePreamble}

	if pc.URL != "" {
		parts = append(parts, "\n--- PAGE TO ANALYZE ---")
		parts = append(parts, "URL: "+pc.URL)
	}
	if pc.Title != "" {
		parts = append(parts, "Title: "+pc.Title)
	}
	if pc.SelectedText != "" {
		parts = append(parts, "\nSelected Text: "+truncate(pc.SelectedText, maxSelectedTextChars))
	}
	if pc.Snippet != "" {
		parts = append(parts, "\nPage Snippet: "+pc.Snippet)
	} else if pc.PageContent != "" {
		parts = append(parts, "\nPage Content:\n"+truncate(pc.PageContent, maxPageContentChars))
		parts = append(parts, "\n--- END OF PAGE ---")
	}

	parts = append(parts, "\nUser Question: "+prompt)
	parts = append(parts, "\nYour Response (remember to redirect if not about the page):")

	return strings.Join(parts, "\n")
}

// generalPrompt assembles the user prompt for the general route when memory or
// context accompanies the question: persona, a bounded transcript of the last
// turns, the page block, then the question.
func generalPrompt(prompt string, pc *PageContext, memory []MemoryItem) string {
	parts := []string{enhancedPreamble}

	if len(memory) > 0 {
		parts = append(parts, "\n=== Recent Conversation ===")
		for _, item := range lastTurns(memory, memoryWindow) {
			parts = append(parts, "User: "+item.User)
			parts = append(parts, "Assistant: "+item.Bot)
		}
		parts = append(parts, "=== End Conversation History ===\n")
	}

	if !pc.IsEmpty() {
		var ctxParts []string
		if pc.URL != "" {
			ctxParts = append(ctxParts, "Current Page: "+pc.URL)
		}
		if pc.Title != "" {
			ctxParts = append(ctxParts, "Page Title: "+pc.Title)
		}
		if pc.SelectedText != "" {
			ctxParts = append(ctxParts, "Selected Text: "+truncate(pc.SelectedText, maxSelectedTextChars))
		}
		if pc.Snippet != "" {
			ctxParts = append(ctxParts, "Page Snippet: "+pc.Snippet)
		} else if pc.PageContent != "" {
			ctxParts = append(ctxParts, "Page Content: "+truncate(pc.PageContent, maxPageContentChars))
		}
		if len(ctxParts) > 0 {
			parts = append(parts, "\n=== Page Context ===")
			parts = append(parts, ctxParts...)
			parts = append(parts, "=== End Context ===\n")
		}
	}

	parts = append(parts, "\nUser Question: "+prompt)
	parts = append(parts, "\nProvide a clear, precise response:")

	return strings.Join(parts, "\n")
}

// SummarizePrompt builds the strict summarization instruction used by the
// summarize endpoint. Content is bounded separately from the assembler since
// the whole prompt goes to the page analyzer as-is.
func SummarizePrompt(pc *PageContext) string {
	return fmt.Sprintf(`Analyze and summarize the following webpage. Be precise and factual.

Page URL: %s
Page Title: %s

Page Content:
%s

Provide a clear, structured summary covering:
1. Main topic and purpose
2. Key points (3-5 bullet points)
3. Target audience or use case
4. Type of content (article, documentation, product page, etc.)

Be concise and factual. Do not add information not present in the content.`,
		orUnknown(pc.URL), orUnknown(pc.Title), truncate(pc.PageContent, 3000))
}

// AnalyzePrompt builds the in-depth page analysis instruction.
func AnalyzePrompt(pc *PageContext) string {
	return fmt.Sprintf(`Perform a detailed analysis of this webpage based ONLY on the provided content.

Page URL: %s
Page Title: %s

Page Content:
%s

Analyze and provide:
1. Content quality and structure
2. Main topics and key information
3. Purpose and intended audience
4. Content organization and readability
5. Notable features or elements
6. Any calls-to-action or next steps mentioned

Base your analysis strictly on the content provided. Be factual and precise.`,
		orUnknown(pc.URL), orUnknown(pc.Title), truncate(pc.PageContent, 3000))
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
