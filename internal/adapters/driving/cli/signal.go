package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/jc/internal/adapters/driving/output"
)

// WatchSignals exits the process on SIGINT or SIGTERM with 128+signo.
// The gate is taken first, so a document being written is finished before
// exit and no later write starts. The returned stop function uninstalls
// the watcher.
func WatchSignals(gate *output.Gate, exit func(code int)) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigCh:
			gate.Close()
			exit(exitCode(sig))
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}

func exitCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 1
}
