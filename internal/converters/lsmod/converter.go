// Package lsmod converts the output of lsmod into module records.
package lsmod

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
	Name:        "lsmod",
	Version:     "1.0",
	Description: "lsmod command parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux},
}

// Converter handles lsmod output.
type Converter struct{}

// New creates a new lsmod converter.
func New() *Converter {
	return &Converter{}
}

// Descriptor returns the converter metadata.
func (c *Converter) Descriptor() *domain.ConverterDescriptor {
	return descriptor
}

// Convert parses the lsmod table. The "Used by" column is split into a
// use count and the list of dependent modules.
func (c *Converter) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("lsmod", data); err != nil {
		return domain.Result{}, err
	}
	lines := textutil.Lines(data)
	if len(lines) == 0 {
		return domain.Many(nil), nil
	}
	if !strings.HasPrefix(lines[0], "Module") {
		return domain.Result{}, textutil.Unparsable("lsmod", "missing Module header")
	}

	records := make([]domain.Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			textutil.Warn(opts, "lsmod: skipping malformed line %q", line)
			continue
		}
		rec := domain.Record{
			"module": fields[0],
			"size":   fields[1],
			"used":   fields[2],
		}
		if len(fields) > 3 {
			rec["by"] = strings.Split(strings.Trim(fields[3], ","), ",")
		}
		if !opts.Raw {
			textutil.Convert(rec, textutil.Int, "size", "used")
		}
		records = append(records, rec)
	}
	return domain.Many(records), nil
}
