// Package history converts the output of the shell history builtin.
package history

import (
	"context"
	"strings"

	"github.com/custodia-labs/jc/internal/converters/textutil"
	"github.com/custodia-labs/jc/internal/core/domain"
	"github.com/custodia-labs/jc/internal/core/ports/driven"
)

// Ensure Converter implements the interface.
var _ driven.Converter = (*Converter)(nil)

var descriptor = &domain.ConverterDescriptor{
	Name:        "history",
	Version:     "1.0",
	Description: "history command parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux, domain.OSDarwin, domain.OSCygwin, domain.OSAIX, domain.OSFreeBSD},
	Details:     "Optimizations by https://github.com/philippeitis",
}

// Converter handles history output.
type Converter struct{}

// New creates a new history converter.
func New() *Converter {
	return &Converter{}
}

// Descriptor returns the converter metadata.
func (c *Converter) Descriptor() *domain.ConverterDescriptor {
	return descriptor
}

// Convert parses "  N  command" lines.
func (c *Converter) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("history", data); err != nil {
		return domain.Result{}, err
	}

	var records []domain.Record
	skipped := 0
	for _, line := range textutil.Lines(data) {
		fields := textutil.SplitN(line, 2)
		if textutil.Int(strings.TrimSuffix(fields[0], "*")) == nil {
			skipped++
			continue
		}
		command := ""
		if len(fields) == 2 {
			command = fields[1]
		}
		rec := domain.Record{"line": fields[0], "command": command}
		if !opts.Raw {
			rec["line"] = textutil.Int(strings.TrimSuffix(fields[0], "*"))
		}
		records = append(records, rec)
	}
	if len(records) == 0 && skipped > 0 {
		return domain.Result{}, textutil.Unparsable("history", "no numbered history lines")
	}
	if skipped > 0 {
		textutil.Warn(opts, "history: %d lines were not recognised and were skipped", skipped)
	}
	return domain.Many(records), nil
}
