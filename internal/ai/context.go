package ai

// Bounds applied when folding page context and conversation history into a
// prompt. Longer inputs are truncated, never rejected.
const (
	maxPageContentChars  = 2000
	maxSelectedTextChars = 500
	memoryWindow         = 3
)

// PageContext is the page snapshot the extension sends along with a prompt.
// All fields are optional; an empty struct is equivalent to no context.
type PageContext struct {
	URL          string `json:"url,omitempty"`
	Title        string `json:"title,omitempty"`
	SelectedText string `json:"selectedText,omitempty"`
	PageContent  string `json:"pageContent,omitempty"`
	Snippet      string `json:"snippet,omitempty"`
}

// HasContent reports whether the context carries any page text worth routing
// or prompting on.
func (pc *PageContext) HasContent() bool {
	if pc == nil {
		return false
	}
	return pc.PageContent != "" || pc.Snippet != "" || pc.SelectedText != ""
}

// IsEmpty reports whether every field is absent.
func (pc *PageContext) IsEmpty() bool {
	if pc == nil {
		return true
	}
	return pc.URL == "" && pc.Title == "" && pc.SelectedText == "" &&
		pc.PageContent == "" && pc.Snippet == ""
}

// MemoryItem is one prior conversation turn, oldest first in a slice.
type MemoryItem struct {
	User      string `json:"user"`
	Bot       string `json:"bot"`
	Timestamp string `json:"timestamp,omitempty"`
}

// lastTurns returns at most the n most recent items in chronological order.
func lastTurns(memory []MemoryItem, n int) []MemoryItem {
	if len(memory) <= n {
		return memory
	}
	return memory[len(memory)-n:]
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
