package g4ftest

import (
	"bufio"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func postConversation(t *testing.T, url string) *http.Response {
	t.Helper()

	resp, err := http.Post(url+"/backend-api/v2/conversation", "application/json",
		strings.NewReader(`{"model": "", "messages": [{"role": "user", "content": "hi"}]}`))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	return resp
}

func TestHandler_EmitsScriptVerbatim(t *testing.T) {
	handler := &Handler{
		Script: []Event{
			Content("Hi"),
			{Type: "status", Content: "ignored"},
			Content(" there"),
		},
	}
	server := NewServer(handler)
	defer server.Close()

	resp := postConversation(t, server.URL)
	defer resp.Body.Close()

	var lines []string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("read response: %v", err)
	}

	if len(lines) != 3 {
		t.Fatalf("got %d lines %v, want 3", len(lines), lines)
	}
	for i, line := range lines {
		var ev Event
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			t.Errorf("line %d %q is not valid JSON: %v", i, line, err)
		}
	}
	if lines[0] != `{"type":"content","content":"Hi"}` {
		t.Errorf("line 0 = %q", lines[0])
	}
}

func TestHandler_RawLines(t *testing.T) {
	handler := &Handler{
		Script:   []Event{Content("ok")},
		RawLines: []string{"this is not json"},
	}
	server := NewServer(handler)
	defer server.Close()

	resp := postConversation(t, server.URL)
	defer resp.Body.Close()

	var lines []string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if len(lines) != 2 || lines[1] != "this is not json" {
		t.Errorf("lines = %v, want raw line emitted verbatim", lines)
	}
}

func TestHandler_LoremScript(t *testing.T) {
	handler := &Handler{LoremWords: 10}
	server := NewServer(handler)
	defer server.Close()

	resp := postConversation(t, server.URL)
	defer resp.Body.Close()

	contentEvents := 0
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		var ev Event
		if err := json.Unmarshal(scanner.Bytes(), &ev); err != nil {
			t.Fatalf("lorem line %q is not valid JSON: %v", scanner.Text(), err)
		}
		if ev.Type == "content" {
			contentEvents++
			if ev.Content == "" {
				t.Error("lorem content event carries empty fragment")
			}
		}
	}

	if contentEvents != 10 {
		t.Errorf("got %d content events, want 10", contentEvents)
	}
}

func TestHandler_RecordsRequest(t *testing.T) {
	handler := &Handler{Script: []Event{Content("ok")}}
	server := NewServer(handler)
	defer server.Close()

	resp := postConversation(t, server.URL)
	resp.Body.Close()

	if handler.LastRequest == nil {
		t.Fatal("handler recorded no request body")
	}
	if handler.LastRequest["model"] != "" {
		t.Errorf("model = %v, want empty string", handler.LastRequest["model"])
	}
}

func TestHandler_AbortTruncatesStream(t *testing.T) {
	handler := &Handler{
		Script: []Event{
			Content("one"),
			Content("two"),
			Content("never sent"),
		},
		AbortAfterLines: 2,
	}
	server := NewServer(handler)
	defer server.Close()

	resp := postConversation(t, server.URL)
	defer resp.Body.Close()

	var lines []string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if scanner.Err() == nil {
		t.Error("expected a read error from the truncated stream")
	}
	if len(lines) != 2 {
		t.Errorf("got %d complete lines %v, want 2", len(lines), lines)
	}
}
