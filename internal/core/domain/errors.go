package domain

import "errors"

// Domain errors represent dispatch and conversion failures.
var (
	// ErrInvalidInput indicates malformed or invalid input to a core operation.
	ErrInvalidInput = errors.New("invalid input")

	// Selection and input-source errors.

	// ErrNoConverter indicates no argument matched a registered converter flag.
	ErrNoConverter = errors.New("missing or incorrect arguments")

	// ErrInteractiveInput indicates standard input is a terminal rather than a pipe.
	ErrInteractiveInput = errors.New("missing piped data")

	// Converter errors.

	// ErrUnparsable indicates the text cannot be interpreted as the expected format at all.
	ErrUnparsable = errors.New("input is not in the expected format")

	// ErrConverterPanic indicates a converter panicked while converting.
	ErrConverterPanic = errors.New("converter panicked")

	// Registry configuration defects.

	// ErrMissingDescriptor indicates a registered converter exposes no descriptor.
	ErrMissingDescriptor = errors.New("converter has no descriptor")

	// ErrDuplicateFlag indicates two registry entries share the same flag.
	ErrDuplicateFlag = errors.New("duplicate converter flag")
)
