// Package lsof converts the output of lsof into open file records.
package lsof

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
	Name:        "lsof",
	Version:     "1.0",
	Description: "lsof command parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux, domain.OSDarwin, domain.OSAIX, domain.OSFreeBSD},
	Details:     "Columns are matched by position, so empty TID and SIZE/OFF cells stay empty",
}

var (
	keys    = []string{"command", "pid", "tid", "user", "fd", "type", "device", "size_off", "node", "name"}
	intKeys = []string{"pid", "tid", "size_off", "node"}
)

// Converter handles lsof output.
type Converter struct{}

// New creates a new lsof converter.
func New() *Converter {
	return &Converter{}
}

// Descriptor returns the converter metadata.
func (c *Converter) Descriptor() *domain.ConverterDescriptor {
	return descriptor
}

// Convert parses the lsof table. lsof's own warnings before the heading
// are skipped.
func (c *Converter) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("lsof", data); err != nil {
		return domain.Result{}, err
	}
	lines := textutil.Lines(data)
	if len(lines) == 0 {
		return domain.Many(nil), nil
	}

	start := -1
	for i, line := range lines {
		if strings.HasPrefix(line, "COMMAND") {
			start = i
			break
		}
		textutil.Warn(opts, "lsof: skipping line before the heading %q", line)
	}
	if start < 0 {
		return domain.Result{}, textutil.Unparsable("lsof", "missing COMMAND header")
	}

	records := textutil.ColumnTable(lines[start], lines[start+1:])
	if !opts.Raw {
		for _, rec := range records {
			textutil.Convert(rec, textutil.Int, intKeys...)
			textutil.Fill(rec, keys...)
		}
	}
	return domain.Many(records), nil
}
