// Package output serialises the final result of an invocation as one JSON
// document on standard output.
//
// The document is fully encoded in memory before anything is written, and
// the write itself happens under a Gate that signal handling also takes, so
// an interrupt can never leave a half-written document behind.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// Gate serialises document writes against process exit.
type Gate struct {
	mu sync.Mutex
}

// Do runs fn while holding the gate.
func (g *Gate) Do(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn()
}

// Close takes the gate and never releases it. It returns once any in-flight
// write has finished; no further write can start afterwards.
func (g *Gate) Close() {
	g.mu.Lock()
}

// Formatter writes JSON documents to a single writer.
type Formatter struct {
	w    io.Writer
	gate *Gate
}

// NewFormatter creates a Formatter writing to w under gate.
// A nil gate gets a private one.
func NewFormatter(w io.Writer, gate *Gate) *Formatter {
	if gate == nil {
		gate = &Gate{}
	}
	return &Formatter{w: w, gate: gate}
}

// Encode serialises v as compact JSON, or with two-space indentation when
// pretty is set, followed by a newline. HTML characters are not escaped.
func Encode(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}
	return buf.Bytes(), nil
}

// Write encodes v and writes it as one document. Nothing is written when
// encoding fails.
func (f *Formatter) Write(v any, pretty bool) error {
	data, err := Encode(v, pretty)
	if err != nil {
		return err
	}

	var werr error
	f.gate.Do(func() {
		_, werr = f.w.Write(data)
	})
	if werr != nil {
		return fmt.Errorf("failed to write output: %w", werr)
	}
	return nil
}
