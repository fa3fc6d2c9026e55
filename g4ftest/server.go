// Package g4ftest provides a fake conversation backend for tests and local
// development. It speaks the backend's wire protocol — newline-delimited
// JSON events over a streamed HTTP response — without requiring a real
// backend or any API keys.
package g4ftest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	loremgen "github.com/bozaro/golorem"
)

// Event is one line of a scripted response. Type is emitted verbatim, so
// scripts can exercise event kinds the client ignores.
type Event struct {
	Type    string `json:"type"`
	Content string `json:"content,omitempty"`
}

// Content builds a content event carrying one fragment.
func Content(fragment string) Event {
	return Event{Type: "content", Content: fragment}
}

// Handler streams a scripted sequence of events to each request. The zero
// value streams an empty response; populate Script or LoremWords for
// content.
type Handler struct {
	// Script is emitted first, one JSON object per line, in order.
	Script []Event

	// RawLines are written verbatim after Script, each followed by a
	// newline. Use this to inject malformed JSON or unexpected shapes.
	RawLines []string

	// LoremWords, when positive and Script is empty, generates that many
	// lorem ipsum word fragments as content events.
	LoremWords int

	// Delay pauses between lines to simulate generation latency.
	Delay time.Duration

	// AbortAfterLines, when positive, kills the connection after that
	// many lines have been flushed, simulating a mid-stream transport
	// failure.
	AbortAfterLines int

	// LastRequest records the most recent decoded request body.
	// Single-goroutine test use only.
	LastRequest map[string]any
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
		h.LastRequest = body
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	written := 0

	emit := func(line string) bool {
		if h.AbortAfterLines > 0 && written >= h.AbortAfterLines {
			// ErrAbortHandler truncates the chunked response, which
			// the client observes as a read error mid-stream.
			panic(http.ErrAbortHandler)
		}
		if h.Delay > 0 {
			time.Sleep(h.Delay)
		}
		if _, err := w.Write([]byte(line + "\n")); err != nil {
			return false
		}
		if flusher != nil {
			flusher.Flush()
		}
		written++
		return true
	}

	for _, ev := range h.script() {
		data, err := json.Marshal(ev)
		if err != nil {
			continue
		}
		if !emit(string(data)) {
			return
		}
	}

	for _, raw := range h.RawLines {
		if !emit(raw) {
			return
		}
	}

	if h.AbortAfterLines > 0 && written >= h.AbortAfterLines {
		panic(http.ErrAbortHandler)
	}
}

// script returns the configured script, generating a lorem one on demand.
func (h *Handler) script() []Event {
	if len(h.Script) > 0 || h.LoremWords <= 0 {
		return h.Script
	}

	generator := loremgen.New()
	events := make([]Event, 0, h.LoremWords+2)
	events = append(events, Event{Type: "provider", Content: "g4ftest"})

	words := 0
	for words < h.LoremWords {
		sentence := generator.Sentence(5, 15)
		for _, word := range strings.Fields(sentence) {
			if words >= h.LoremWords {
				break
			}
			events = append(events, Content(word+" "))
			words++
		}
	}

	events = append(events, Event{Type: "finish"})
	return events
}

// NewServer starts an httptest server for the handler. The caller must
// Close it.
func NewServer(h *Handler) *httptest.Server {
	return httptest.NewServer(h)
}
