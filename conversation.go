package g4fclient

import (
	"context"
)

// Conversation is the caller-facing entry point: it builds the request
// payload, sends it through a Sender, and hands the live response to the
// stream reader in the requested output mode.
//
// A Conversation holds no per-call state; each call owns its connection
// exclusively and concurrent calls are independent.
type Conversation struct {
	sender Sender
}

// NewConversation creates a Conversation on top of an existing Sender.
func NewConversation(sender Sender) *Conversation {
	return &Conversation{sender: sender}
}

// NewDefaultConversation creates a Conversation backed by a Client with the
// package defaults (local backend, 30s timeout).
func NewDefaultConversation() *Conversation {
	return &Conversation{sender: NewClient(ClientConfig{})}
}

// EnterPrompt sends the prompt and returns the fully assembled response
// text once the backend closes the stream (aggregate mode). The connection
// is released before returning; release errors are swallowed.
//
// Any failure — connecting, timing out, or the stream dying mid-response —
// is returned as an error with no partial text.
func (c *Conversation) EnterPrompt(ctx context.Context, prompt string, params PromptParams) (string, error) {
	stream, err := c.EnterPromptStream(ctx, prompt, params)
	if err != nil {
		return "", err
	}
	return Aggregate(stream)
}

// EnterPromptStream sends the prompt and returns a lazy stream of content
// fragments (streaming mode). Fragments arrive in order, one per Recv, and
// the stream ends with io.EOF. The caller owns the stream and must Close it
// if it stops before the end; Close releases the connection.
func (c *Conversation) EnterPromptStream(ctx context.Context, prompt string, params PromptParams) (*ContentStream, error) {
	req := NewConversationRequest(prompt, params)

	resp, err := c.sender.SendRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	return NewContentStream(resp), nil
}
