package g4fclient

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
)

// maxLineSize bounds a single event line. Content fragments are small, but
// preview events can embed data URLs; anything larger than this is consumed
// and skipped like any other unusable line.
const maxLineSize = 1 << 20

// ContentStream is a pull-based reader over the content fragments of one
// conversation response. Fragments are delivered in arrival order, one per
// Recv call; the stream is finite and non-restartable.
//
// A ContentStream owns the underlying connection. Callers that stop early
// must Close it to release the connection; a fully drained stream may still
// be Closed harmlessly.
type ContentStream struct {
	body   io.ReadCloser
	reader *bufio.Reader

	closed bool
	done   bool
	err    error
}

// NewContentStream wraps an in-progress response for incremental reading.
// The stream takes ownership of the response body.
func NewContentStream(resp *http.Response) *ContentStream {
	return &ContentStream{
		body:   resp.Body,
		reader: bufio.NewReaderSize(resp.Body, 64*1024),
	}
}

// Recv returns the next content fragment, blocking until one arrives or the
// stream ends. It returns io.EOF once the backend closes the stream, and a
// *TransportError if the connection dies mid-response — fragments received
// before the failure have already been delivered, none follow after it.
//
// Lines that are not well-formed content events (other event types,
// malformed JSON, blank keep-alives, over-long lines) are skipped without
// disturbing the order of the surrounding fragments.
func (s *ContentStream) Recv() (string, error) {
	if s.closed {
		return "", ErrStreamClosed
	}
	if s.err != nil {
		return "", s.err
	}
	if s.done {
		return "", io.EOF
	}

	for {
		line, readErr := s.readLine()
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			s.err = &TransportError{Op: "stream", Err: readErr}
			return "", s.err
		}

		if len(line) > 0 {
			fragment, ok, err := extractContent(line)
			if err == nil && ok {
				if errors.Is(readErr, io.EOF) {
					s.done = true
				}
				return fragment, nil
			}
			// One bad line fails only that line's extraction.
		}

		if errors.Is(readErr, io.EOF) {
			s.done = true
			return "", io.EOF
		}
	}
}

// readLine returns the next line without its trailing newline. A line
// longer than maxLineSize is consumed to its newline and returned empty, so
// one oversized event skips like a malformed one instead of aborting the
// stream.
func (s *ContentStream) readLine() ([]byte, error) {
	var line []byte
	oversized := false

	for {
		chunk, err := s.reader.ReadSlice('\n')
		if !oversized {
			line = append(line, chunk...)
			if len(line) > maxLineSize {
				oversized = true
				line = nil
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}

		line = bytes.TrimSuffix(line, []byte("\n"))
		line = bytes.TrimSuffix(line, []byte("\r"))
		return line, err
	}
}

// Close releases the underlying connection. It is safe to call more than
// once and after the stream has been fully consumed; release-time errors
// are swallowed, so Close always returns nil.
func (s *ContentStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	// Best-effort release. Closing an exhausted or errored body can fail
	// depending on the transport; none of that is actionable here.
	_ = s.body.Close()
	return nil
}

// extractContent classifies one response line. It returns the fragment and
// ok=true for a content event, ok=false for any other well-formed event,
// and a *MalformedEventError when the line cannot be interpreted.
func extractContent(line []byte) (string, bool, error) {
	if !gjson.ValidBytes(line) {
		return "", false, &MalformedEventError{Line: string(line), Reason: "invalid JSON"}
	}

	if EventType(gjson.GetBytes(line, "type").Str) != EventContent {
		return "", false, nil
	}

	content := gjson.GetBytes(line, "content")
	if content.Type != gjson.String {
		return "", false, &MalformedEventError{Line: string(line), Reason: "content event without string content"}
	}

	return content.Str, true, nil
}
