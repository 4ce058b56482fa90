// Package converters provides the built-in implementations of the Converter
// interface. Each converter knows how to turn the text output of one command
// into structured records.
//
// Converters are enumerated in Defaults and registered with the
// ConverterRegistry at startup.
package converters
