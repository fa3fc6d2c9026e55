package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	g4fclient "github.com/haowjy/meridian-g4f-go"
	"github.com/haowjy/meridian-g4f-go/g4ftest"
	"github.com/haowjy/meridian-g4f-go/internal/config"
)

func TestReadPromptFromArgs(t *testing.T) {
	prompt, err := readPrompt([]string{"hello", "world"}, "", strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prompt != "hello world" {
		t.Fatalf("unexpected prompt: %q", prompt)
	}
}

func TestReadPromptFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prompt.txt")
	if err := os.WriteFile(path, []byte("file prompt\n"), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	prompt, err := readPrompt(nil, path, strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prompt != "file prompt" {
		t.Fatalf("unexpected prompt: %q", prompt)
	}
}

func TestReadPromptFromStdin(t *testing.T) {
	prompt, err := readPrompt(nil, "-", strings.NewReader("stdin prompt\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prompt != "stdin prompt" {
		t.Fatalf("unexpected prompt: %q", prompt)
	}
}

func TestReadPromptMissing(t *testing.T) {
	if _, err := readPrompt(nil, "", strings.NewReader("")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestReadPromptConflict(t *testing.T) {
	if _, err := readPrompt([]string{"hello"}, "prompt.txt", strings.NewReader("")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestBuildConversation_FlagOverrides(t *testing.T) {
	cfg := config.Config{
		Backend: config.BackendConfig{URL: "http://config:8080"},
		Chat:    config.ChatConfig{Model: "config-model", Provider: "config-provider"},
	}
	opts := &askOptions{Model: "flag-model", URL: "http://flag:8080", APIKey: "sk-flag"}

	_, params := buildConversation(cfg, opts)

	if params.Model != "flag-model" {
		t.Errorf("Model = %q, flag should win over config", params.Model)
	}
	if params.Provider != "config-provider" {
		t.Errorf("Provider = %q, config should fill unset flags", params.Provider)
	}
	if params.APIKey == nil || *params.APIKey != "sk-flag" {
		t.Errorf("APIKey = %v, want sk-flag", params.APIKey)
	}
}

func TestAskCmd_AutoContinueDefaultsOn(t *testing.T) {
	for _, cmd := range []string{"ask", "chat"} {
		t.Run(cmd, func(t *testing.T) {
			var flags interface {
				Lookup(string) *pflag.Flag
			}
			if cmd == "ask" {
				flags = newAskCmd().Flags()
			} else {
				flags = newChatCmd().Flags()
			}

			flag := flags.Lookup("auto-continue")
			if flag == nil {
				t.Fatal("auto-continue flag not registered")
			}
			if flag.DefValue != "true" {
				t.Errorf("auto-continue default = %q, want true", flag.DefValue)
			}
		})
	}
}

func TestBuildConversation_AutoContinue(t *testing.T) {
	tests := []struct {
		name         string
		autoContinue bool
	}{
		{"enabled", true},
		{"disabled", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, params := buildConversation(config.Config{}, &askOptions{AutoContinue: tt.autoContinue})
			if params.AutoContinue != tt.autoContinue {
				t.Errorf("AutoContinue = %v, want %v", params.AutoContinue, tt.autoContinue)
			}
		})
	}
}

func TestStreamResponse(t *testing.T) {
	server := g4ftest.NewServer(&g4ftest.Handler{
		Script: []g4ftest.Event{
			g4ftest.Content("Hi"),
			g4ftest.Content(" there"),
		},
	})
	defer server.Close()

	conversation := g4fclient.NewConversation(
		g4fclient.NewClient(g4fclient.ClientConfig{BaseURL: server.URL}),
	)

	var out bytes.Buffer
	err := streamResponse(context.Background(), &out, conversation, "hello", g4fclient.PromptParams{})
	if err != nil {
		t.Fatalf("streamResponse failed: %v", err)
	}
	if out.String() != "Hi there\n" {
		t.Errorf("output = %q, want %q", out.String(), "Hi there\n")
	}
}
