// Package file provides the file-based configuration adapter.
//
// Adapters:
//   - ConfigStore: read-only option defaults from config.toml or config.yaml
package file
