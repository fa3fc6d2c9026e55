package g4fclient

// Message represents a single message in the conversation.
type Message struct {
	// Role is either "user" or "assistant"
	Role string `json:"role"`

	// Content is the plain-text body of the message
	Content string `json:"content"`
}

// ConversationRequest is the JSON body sent to the conversation endpoint.
// It is built fresh per call and never persisted.
//
// APIKey is a pointer so that an unset key serializes as JSON null, which is
// what the backend expects when no key is supplied.
type ConversationRequest struct {
	Model        string    `json:"model"`
	WebSearch    bool      `json:"web_search"`
	Provider     string    `json:"provider"`
	Messages     []Message `json:"messages"`
	AutoContinue bool      `json:"auto_continue"`
	APIKey       *string   `json:"api_key"`
}

// PromptParams carries the per-call knobs for EnterPrompt and
// EnterPromptStream. The zero value is usable: empty Model and Provider mean
// "let the backend decide", and the backend treats a missing APIKey as
// anonymous access.
//
// Model and Provider are passed through unchecked — the backend is the
// source of truth for what it supports, so any string is forwarded as-is.
type PromptParams struct {
	// Model is the model identifier (e.g., "gpt-4o-mini"); empty = backend default
	Model string

	// WebSearch asks the backend to augment the answer with web results
	WebSearch bool

	// Provider selects the upstream provider (e.g., "OpenaiChat"); empty = backend default
	Provider string

	// AutoContinue lets the backend stitch together truncated completions
	AutoContinue bool

	// APIKey is forwarded verbatim; nil serializes as null
	APIKey *string
}

// NewConversationRequest builds the wire payload for a single prompt. The
// prompt becomes the sole user message in the messages sequence.
func NewConversationRequest(prompt string, params PromptParams) *ConversationRequest {
	return &ConversationRequest{
		Model:        params.Model,
		WebSearch:    params.WebSearch,
		Provider:     params.Provider,
		Messages:     []Message{{Role: "user", Content: prompt}},
		AutoContinue: params.AutoContinue,
		APIKey:       params.APIKey,
	}
}
