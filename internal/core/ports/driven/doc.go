// Package driven defines the interfaces that core calls OUT to.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and converter packages
// implement them.
//
// # Required Interfaces
//
//   - Converter: Turns the raw text output of one command into structured records
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or converter package
package driven
