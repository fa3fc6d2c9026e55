package g4fclient

// ProviderID represents a unique backend provider identifier.
// Using a typed constant prevents typos and provides compile-time safety.
//
// Provider Philosophy:
//
// These identifiers are INFORMATIONAL. The backend is the source of truth
// for which providers exist and which models they serve; this package never
// validates a provider string before sending it. Use these constants for
// convenience and display, not enforcement.
type ProviderID string

// Well-known provider identifiers the backend routes to.
const (
	// ProviderOpenaiChat is the OpenAI chat provider
	ProviderOpenaiChat ProviderID = "OpenaiChat"

	// ProviderCopilot is the Microsoft Copilot provider
	ProviderCopilot ProviderID = "Copilot"

	// ProviderDuckDuckGo is the DuckDuckGo AI chat provider
	ProviderDuckDuckGo ProviderID = "DDG"

	// ProviderBlackbox is the Blackbox AI provider
	ProviderBlackbox ProviderID = "Blackbox"

	// ProviderPollinations is the Pollinations AI provider
	ProviderPollinations ProviderID = "PollinationsAI"
)

// String returns the string representation of the provider ID.
func (p ProviderID) String() string {
	return string(p)
}

// IsKnown returns true if the provider ID is one of the well-known
// providers. Unknown providers are still forwarded to the backend unchanged.
func (p ProviderID) IsKnown() bool {
	switch p {
	case ProviderOpenaiChat, ProviderCopilot, ProviderDuckDuckGo,
		ProviderBlackbox, ProviderPollinations:
		return true
	default:
		return false
	}
}
