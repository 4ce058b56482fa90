package cli

import (
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/jc/internal/adapters/driving/output"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, 130, exitCode(syscall.SIGINT))
	assert.Equal(t, 143, exitCode(syscall.SIGTERM))
}

func TestWatchSignals_ExitsAfterWrite(t *testing.T) {
	gate := &output.Gate{}
	codes := make(chan int, 1)
	stop := WatchSignals(gate, func(code int) { codes <- code })
	defer stop()

	released := make(chan struct{})
	writing := make(chan struct{})
	go gate.Do(func() {
		close(writing)
		<-released
	})
	<-writing

	assert.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case <-codes:
		t.Fatal("exited during an in-flight write")
	case <-time.After(50 * time.Millisecond):
	}

	close(released)
	select {
	case code := <-codes:
		assert.Equal(t, 143, code)
	case <-time.After(2 * time.Second):
		t.Fatal("no exit after signal")
	}
}
