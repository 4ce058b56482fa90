package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdinInput_ReaderNotInteractive(t *testing.T) {
	in := newStdinInput(strings.NewReader("data"))

	assert.False(t, in.Interactive())

	data, err := in.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "data", data)
}

func TestStdinInput_PipeNotInteractive(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	_, err = w.WriteString("piped\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	in := newStdinInput(r)
	assert.False(t, in.Interactive())

	data, err := in.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "piped\n", data)
}
