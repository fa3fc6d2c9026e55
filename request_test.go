package g4fclient

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewConversationRequest(t *testing.T) {
	params := PromptParams{
		Model:        "gpt-4o-mini",
		WebSearch:    true,
		Provider:     "OpenaiChat",
		AutoContinue: true,
		APIKey:       stringPtr("sk-test"),
	}

	req := NewConversationRequest("what is up", params)

	if req.Model != params.Model {
		t.Errorf("Model = %q, want %q", req.Model, params.Model)
	}
	if req.Provider != params.Provider {
		t.Errorf("Provider = %q, want %q", req.Provider, params.Provider)
	}
	if !req.WebSearch || !req.AutoContinue {
		t.Errorf("flags = (%v, %v), want both true", req.WebSearch, req.AutoContinue)
	}
	if req.APIKey == nil || *req.APIKey != "sk-test" {
		t.Errorf("APIKey = %v, want sk-test", req.APIKey)
	}
	if len(req.Messages) != 1 {
		t.Fatalf("messages length = %d, want 1", len(req.Messages))
	}
	if req.Messages[0].Role != "user" || req.Messages[0].Content != "what is up" {
		t.Errorf("message = %+v, want user/%q", req.Messages[0], "what is up")
	}
}

func TestConversationRequest_MarshalAPIKey(t *testing.T) {
	tests := []struct {
		name   string
		apiKey *string
		want   string
	}{
		{"unset key serializes as null", nil, `"api_key":null`},
		{"set key serializes as string", stringPtr("sk-test"), `"api_key":"sk-test"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewConversationRequest("hi", PromptParams{APIKey: tt.apiKey})
			data, err := json.Marshal(req)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			if !strings.Contains(string(data), tt.want) {
				t.Errorf("payload %s does not contain %s", data, tt.want)
			}
		})
	}
}
