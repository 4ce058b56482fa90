package domain

import "fmt"

// ConversionError is the tagged failure produced when the selected converter
// cannot convert its input. It is the only failure the isolation boundary emits.
type ConversionError struct {
	Converter string
	Err       error
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s parser could not parse the input data: %v", e.Converter, e.Err)
}

// Unwrap returns the underlying converter error.
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Message returns the single user-facing diagnostic line.
func (e *ConversionError) Message() string {
	return fmt.Sprintf("%s parser could not parse the input data. "+
		"Did you use the correct parser? For details use the -d option.", e.Converter)
}

// Outcome is the terminal result of one invocation: a serialisable value on
// success, or a ConversionError naming the converter on failure.
type Outcome struct {
	Converter string
	Value     any
	Failure   *ConversionError
}

// Succeeded builds a successful outcome. Converter is empty in about mode.
func Succeeded(converter string, value any) Outcome {
	return Outcome{Converter: converter, Value: value}
}

// Failed builds a failed outcome for the named converter.
func Failed(converter string, err error) Outcome {
	return Outcome{
		Converter: converter,
		Failure:   &ConversionError{Converter: converter, Err: err},
	}
}

// OK reports whether the outcome is a success.
func (o Outcome) OK() bool {
	return o.Failure == nil
}
