package driving

import (
	"context"

	"github.com/custodia-labs/jc/internal/core/domain"
)

// Input is the source of the raw text to convert.
type Input interface {
	// Interactive reports whether the input is a terminal rather than a pipe.
	Interactive() bool

	// ReadAll reads the complete input. It is called at most once.
	ReadAll() (string, error)
}

// Request is one invocation handed to the Dispatcher.
type Request struct {
	Args    []string
	Options domain.InvocationOptions
	Input   Input
}

// Dispatcher selects and runs a converter for one invocation.
type Dispatcher interface {
	// Dispatch runs the invocation to a terminal outcome.
	// Selection and input-source errors are returned as errors before any
	// converter runs. In normal mode a converter failure is reported through
	// Outcome.Failure; in debug mode it is returned unmodified as the error.
	Dispatch(ctx context.Context, req Request) (domain.Outcome, error)
}

// AboutService reflects over the registry without running any converter.
type AboutService interface {
	// Report builds the introspection document.
	Report() (*domain.AboutReport, error)

	// Usage lists the registered flags and descriptions for the help text.
	Usage() []domain.UsageEntry
}
