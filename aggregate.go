package g4fclient

import (
	"errors"
	"io"
	"strings"
)

// Aggregate drains a content stream and concatenates every fragment in
// arrival order, returning the assembled string only after the backend has
// closed the stream. The underlying connection is released exactly once,
// whether draining succeeds or not.
//
// A transport failure mid-stream aborts the call: the error propagates and
// the fragments accumulated so far are discarded. Partial results are never
// returned alongside an error.
func Aggregate(stream *ContentStream) (string, error) {
	defer stream.Close()

	var sb strings.Builder
	for {
		fragment, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}
		sb.WriteString(fragment)
	}
}
