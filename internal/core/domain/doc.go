// Package domain defines the core entities for jc.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ConverterDescriptor: Identity and metadata of one converter
//   - Result: The structured output of a conversion (one record or many)
//   - InvocationOptions: The recognised command-line options
//   - Outcome: The terminal success or failure of one invocation
//   - AboutReport: The introspection document
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
