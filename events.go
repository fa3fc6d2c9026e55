package g4fclient

// EventType identifies the kind of a stream event line.
// Using a typed constant prevents typos and provides compile-time safety.
type EventType string

// Event types emitted by the conversation backend. Only EventContent carries
// text that belongs in the assembled response; everything else is metadata
// the client tolerates and ignores.
const (
	// EventContent carries one fragment of the response text
	EventContent EventType = "content"

	// EventProvider announces which upstream provider was selected
	EventProvider EventType = "provider"

	// EventConversation carries the backend's conversation bookkeeping
	EventConversation EventType = "conversation"

	// EventPreview carries a partial render of media output
	EventPreview EventType = "preview"

	// EventReasoning carries model reasoning text, kept separate from content
	EventReasoning EventType = "reasoning"

	// EventParameters echoes the effective request parameters
	EventParameters EventType = "parameters"

	// EventUsage carries token accounting
	EventUsage EventType = "usage"

	// EventLog carries backend diagnostics
	EventLog EventType = "log"

	// EventError carries a backend-side failure report
	EventError EventType = "error"

	// EventFinish marks the end of generation
	EventFinish EventType = "finish"
)

// String returns the string representation of the event type.
func (t EventType) String() string {
	return string(t)
}

// IsKnown returns true if the event type is one the backend is documented to
// emit. Unknown types are still tolerated on the wire — this is informational
// only, never used to reject a line.
func (t EventType) IsKnown() bool {
	switch t {
	case EventContent, EventProvider, EventConversation, EventPreview,
		EventReasoning, EventParameters, EventUsage, EventLog,
		EventError, EventFinish:
		return true
	default:
		return false
	}
}
