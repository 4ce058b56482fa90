// Package env converts the output of env or printenv.
//
// Raw output is a single record mapping each variable name to its value.
// Cooked output is a list of {name, value} records in input order.
package env

import (
	"context"
	"regexp"
	"strings"

	"github.com/custodia-labs/jc/internal/converters/textutil"
	"github.com/custodia-labs/jc/internal/core/domain"
	"github.com/custodia-labs/jc/internal/core/ports/driven"
)

// Ensure Converter implements the interface.
var _ driven.Converter = (*Converter)(nil)

var descriptor = &domain.ConverterDescriptor{
	Name:        "env",
	Version:     "1.0",
	Description: "env command parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux, domain.OSDarwin, domain.OSCygwin, domain.OSWin32, domain.OSAIX, domain.OSFreeBSD},
	Details:     "Multi-line values are joined to the preceding variable",
}

var varName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// Converter handles env output.
type Converter struct{}

// New creates a new env converter.
func New() *Converter {
	return &Converter{}
}

// Descriptor returns the converter metadata.
func (c *Converter) Descriptor() *domain.ConverterDescriptor {
	return descriptor
}

// Convert parses NAME=value lines.
func (c *Converter) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("env", data); err != nil {
		return domain.Result{}, err
	}

	var names []string
	var last string
	values := make(map[string]string)
	orphans := 0
	for _, line := range strings.Split(strings.TrimRight(data, "\n"), "\n") {
		name, value, ok := strings.Cut(line, "=")
		if ok && varName.MatchString(name) {
			if _, seen := values[name]; !seen {
				names = append(names, name)
			}
			values[name] = value
			last = name
			continue
		}
		if last == "" {
			if strings.TrimSpace(line) != "" {
				orphans++
			}
			continue
		}
		values[last] += "\n" + line
	}
	if orphans > 0 {
		textutil.Warn(opts, "env: %d lines before the first variable were skipped", orphans)
	}

	if opts.Raw {
		rec := make(domain.Record, len(names))
		for _, n := range names {
			rec[n] = values[n]
		}
		return domain.Single(rec), nil
	}

	records := make([]domain.Record, 0, len(names))
	for _, n := range names {
		records = append(records, domain.Record{"name": n, "value": values[n]})
	}
	return domain.Many(records), nil
}
