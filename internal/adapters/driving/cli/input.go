package cli

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/custodia-labs/jc/internal/core/ports/driving"
)

// Ensure stdinInput implements the interface.
var _ driving.Input = (*stdinInput)(nil)

// stdinInput reads the piped text from standard input.
type stdinInput struct {
	r io.Reader
}

func newStdinInput(r io.Reader) *stdinInput {
	return &stdinInput{r: r}
}

// Interactive reports whether the reader is a terminal. Readers that are
// not files are always treated as piped.
func (in *stdinInput) Interactive() bool {
	f, ok := in.r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ReadAll reads the complete input.
func (in *stdinInput) ReadAll() (string, error) {
	data, err := io.ReadAll(in.r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
