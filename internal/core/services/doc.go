// Package services implements the driving port interfaces.
// Services contain the dispatch, isolation and introspection logic
// and call out to converters through the driven ports.
//
// Services are pure Go with no external dependencies.
package services
