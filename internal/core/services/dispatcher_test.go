package services

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/jc/internal/core/domain"
	"github.com/custodia-labs/jc/internal/core/ports/driving"
	"github.com/custodia-labs/jc/internal/logger"
)

func newTestDispatcher(names ...string) (*Dispatcher, map[string]*mockConverter, *ConverterRegistry) {
	r, mocks := newTestRegistry(names...)
	d := NewDispatcher(r, NewAboutService(testTool, r))
	d.host = domain.OSLinux
	return d, mocks, r
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	logger.SetOutput(buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return buf
}

func request(input *mockInput, args ...string) driving.Request {
	return driving.Request{Args: args, Options: domain.ParseOptions(args), Input: input}
}

func TestDispatch_Success(t *testing.T) {
	d, mocks, _ := newTestDispatcher("ls", "df")
	in := &mockInput{data: "file1\nfile2\n"}

	outcome, err := d.Dispatch(context.Background(), request(in, "--ls", "-r", "-q"))

	require.NoError(t, err)
	require.True(t, outcome.OK())
	assert.Equal(t, "ls", outcome.Converter)
	assert.Equal(t, mocks["ls"].result, outcome.Value)
	assert.Equal(t, "file1\nfile2\n", mocks["ls"].gotData)
	assert.Equal(t, domain.ConvertOptions{Raw: true, Quiet: true}, mocks["ls"].gotOpts)
	assert.Zero(t, mocks["df"].calls)
	assert.Equal(t, 1, in.reads)
}

func TestDispatch_FirstFlagWins(t *testing.T) {
	d, mocks, _ := newTestDispatcher("ls", "df")

	outcome, err := d.Dispatch(context.Background(), request(&mockInput{}, "--df", "--ls"))

	require.NoError(t, err)
	assert.Equal(t, "df", outcome.Converter)
	assert.Equal(t, 1, mocks["df"].calls)
	assert.Zero(t, mocks["ls"].calls)
}

func TestDispatch_NoConverterDoesNotReadInput(t *testing.T) {
	d, _, _ := newTestDispatcher("ls")
	in := &mockInput{data: "hello"}

	_, err := d.Dispatch(context.Background(), request(in, "--nosuchflag"))

	assert.ErrorIs(t, err, domain.ErrNoConverter)
	assert.True(t, IsSelectionError(err))
	assert.Zero(t, in.reads)
}

func TestDispatch_InteractiveInput(t *testing.T) {
	d, mocks, _ := newTestDispatcher("ls")
	in := &mockInput{interactive: true}

	_, err := d.Dispatch(context.Background(), request(in, "--ls"))

	assert.ErrorIs(t, err, domain.ErrInteractiveInput)
	assert.True(t, IsSelectionError(err))
	assert.Zero(t, in.reads)
	assert.Zero(t, mocks["ls"].calls)
}

func TestDispatch_AboutTakesPrecedence(t *testing.T) {
	d, mocks, _ := newTestDispatcher("ls")
	in := &mockInput{interactive: true}

	outcome, err := d.Dispatch(context.Background(), request(in, "-d", "--nosuchflag", "--ls", "-a"))

	require.NoError(t, err)
	require.True(t, outcome.OK())
	report, ok := outcome.Value.(*domain.AboutReport)
	require.True(t, ok)
	assert.Equal(t, "jc", report.Name)
	assert.Empty(t, outcome.Converter)
	assert.Zero(t, in.reads)
	assert.Zero(t, mocks["ls"].calls)
}

func TestDispatch_AboutWithMissingDescriptor(t *testing.T) {
	d, mocks, _ := newTestDispatcher("ls")
	mocks["ls"].desc = nil

	_, err := d.Dispatch(context.Background(), request(&mockInput{}, "--about"))

	assert.ErrorIs(t, err, domain.ErrMissingDescriptor)
}

func TestDispatch_ReadError(t *testing.T) {
	d, mocks, _ := newTestDispatcher("ls")

	_, err := d.Dispatch(context.Background(), request(&mockInput{err: errMockRead}, "--ls"))

	assert.ErrorIs(t, err, errMockRead)
	assert.False(t, IsSelectionError(err))
	assert.Zero(t, mocks["ls"].calls)
}

func TestDispatch_NilInput(t *testing.T) {
	d, _, _ := newTestDispatcher("ls")

	_, err := d.Dispatch(context.Background(), driving.Request{Args: []string{"--ls"}})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDispatch_NormalModeIsolatesErrors(t *testing.T) {
	d, mocks, _ := newTestDispatcher("ls")
	cause := errors.New("cannot tokenise")
	mocks["ls"].err = cause

	outcome, err := d.Dispatch(context.Background(), request(&mockInput{}, "--ls"))

	require.NoError(t, err)
	assert.False(t, outcome.OK())
	require.NotNil(t, outcome.Failure)
	assert.Equal(t, "ls", outcome.Failure.Converter)
	assert.ErrorIs(t, outcome.Failure, cause)
	assert.Nil(t, outcome.Value)
}

func TestDispatch_NormalModeIsolatesPanics(t *testing.T) {
	d, mocks, _ := newTestDispatcher("ls")
	mocks["ls"].panicV = "index out of range"

	var outcome domain.Outcome
	var err error
	assert.NotPanics(t, func() {
		outcome, err = d.Dispatch(context.Background(), request(&mockInput{}, "--ls"))
	})

	require.NoError(t, err)
	require.NotNil(t, outcome.Failure)
	assert.ErrorIs(t, outcome.Failure, domain.ErrConverterPanic)
	assert.Contains(t, outcome.Failure.Error(), "index out of range")
}

func TestDispatch_DebugModePropagatesErrorUnmodified(t *testing.T) {
	d, mocks, _ := newTestDispatcher("ls")
	cause := errors.New("cannot tokenise")
	mocks["ls"].err = cause

	_, err := d.Dispatch(context.Background(), request(&mockInput{}, "--ls", "-d"))

	assert.Same(t, cause, err)
}

func TestDispatch_DebugModePropagatesPanics(t *testing.T) {
	d, mocks, _ := newTestDispatcher("ls")
	mocks["ls"].panicV = "index out of range"

	assert.PanicsWithValue(t, "index out of range", func() {
		_, _ = d.Dispatch(context.Background(), request(&mockInput{}, "--ls", "-d"))
	})
}

func TestDispatch_NameFallsBackToFlag(t *testing.T) {
	d, mocks, _ := newTestDispatcher("ls")
	mocks["ls"].desc = nil
	mocks["ls"].err = errors.New("bad")

	outcome, err := d.Dispatch(context.Background(), request(&mockInput{}, "--ls"))

	require.NoError(t, err)
	assert.Equal(t, "ls", outcome.Failure.Converter)
}

func TestDispatch_WarnsOnIncompatibleOS(t *testing.T) {
	d, mocks, _ := newTestDispatcher("ls")
	d.host = domain.OSWin32
	buf := captureLog(t)

	outcome, err := d.Dispatch(context.Background(), request(&mockInput{}, "--ls"))

	require.NoError(t, err)
	assert.True(t, outcome.OK())
	assert.Equal(t, 1, mocks["ls"].calls)
	assert.Equal(t, "jc:  Warning - ls parser not compatible with your OS (win32)\n", buf.String())
}

func TestDispatch_QuietSuppressesOSWarning(t *testing.T) {
	d, _, _ := newTestDispatcher("ls")
	d.host = domain.OSWin32
	buf := captureLog(t)

	_, err := d.Dispatch(context.Background(), request(&mockInput{}, "--ls", "-q"))

	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestDispatch_CompatibleOSNoWarning(t *testing.T) {
	d, _, _ := newTestDispatcher("ls")
	buf := captureLog(t)

	_, err := d.Dispatch(context.Background(), request(&mockInput{}, "--ls"))

	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
