package testhelpers

import (
	"io"
	"strings"
	"testing"
)

// Writer is an io.Writer backed by t.Log so log output is only shown for
// failing tests.
type Writer struct {
	t        *testing.T
	testDone chan struct{}
}

// NewWriter creates a Writer bound to the lifetime of the test.
func NewWriter(t *testing.T) io.Writer {
	w := &Writer{
		t:        t,
		testDone: make(chan struct{}),
	}
	t.Cleanup(func() {
		close(w.testDone)
	})
	return w
}

// Write implements io.Writer. Writing after the test has finished panics to
// surface servers that outlive their test.
func (w *Writer) Write(p []byte) (int, error) {
	select {
	case <-w.testDone:
		panic("testwriter: write after test completion. Did you forget to shut the server down in t.Cleanup?")
	default:
		output := strings.TrimSuffix(string(p), "\n")
		if output != "" {
			w.t.Log(output)
		}
		return len(p), nil
	}
}
