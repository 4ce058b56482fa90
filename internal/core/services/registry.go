package services

import (
	"fmt"

	"github.com/custodia-labs/jc/internal/core/domain"
	"github.com/custodia-labs/jc/internal/core/ports/driven"
)

// Entry pairs an invocation flag with the converter it selects.
type Entry struct {
	Flag      string
	Converter driven.Converter
}

// ConverterRegistry maps invocation flags to converters.
// It is built once at startup and read-only afterwards; enumeration
// order is the order entries were given in.
type ConverterRegistry struct {
	entries []Entry
	index   map[string]int
}

// NewConverterRegistry builds a registry from a literal table of entries.
// Every flag must be non-empty and unique, and every converter non-nil.
func NewConverterRegistry(entries ...Entry) (*ConverterRegistry, error) {
	r := &ConverterRegistry{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.Flag == "" {
			return nil, fmt.Errorf("registry entry %d: empty flag: %w", len(r.entries), domain.ErrInvalidInput)
		}
		if e.Converter == nil {
			return nil, fmt.Errorf("registry entry %s: nil converter: %w", e.Flag, domain.ErrInvalidInput)
		}
		if _, ok := r.index[e.Flag]; ok {
			return nil, fmt.Errorf("registry entry %s: %w", e.Flag, domain.ErrDuplicateFlag)
		}
		r.index[e.Flag] = len(r.entries)
		r.entries = append(r.entries, e)
	}
	return r, nil
}

// Lookup returns the converter registered for flag.
func (r *ConverterRegistry) Lookup(flag string) (driven.Converter, bool) {
	i, ok := r.index[flag]
	if !ok {
		return nil, false
	}
	return r.entries[i].Converter, true
}

// Match returns the entry for the first argument equal to a registered flag.
// Later registered flags in args are ignored.
func (r *ConverterRegistry) Match(args []string) (Entry, bool) {
	for _, arg := range args {
		if c, ok := r.Lookup(arg); ok {
			return Entry{Flag: arg, Converter: c}, true
		}
	}
	return Entry{}, false
}

// Entries returns the entries in registration order.
func (r *ConverterRegistry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Flags returns all registered flags in registration order.
func (r *ConverterRegistry) Flags() []string {
	flags := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		flags = append(flags, e.Flag)
	}
	return flags
}

// Len returns the number of registered converters.
func (r *ConverterRegistry) Len() int {
	return len(r.entries)
}
