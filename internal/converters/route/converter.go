// Package route converts the output of route and route -n into routing records.
package route

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
	Name:        "route",
	Version:     "1.0",
	Description: "route command parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux},
}

// Converter handles route output.
type Converter struct{}

// New creates a new route converter.
func New() *Converter {
	return &Converter{}
}

// Descriptor returns the converter metadata.
func (c *Converter) Descriptor() *domain.ConverterDescriptor {
	return descriptor
}

// Convert parses the kernel routing table.
func (c *Converter) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("route", data); err != nil {
		return domain.Result{}, err
	}
	lines := textutil.Lines(data)
	if len(lines) > 0 && strings.HasPrefix(lines[0], "Kernel IP routing table") {
		lines = lines[1:]
	}
	if len(lines) == 0 {
		return domain.Many(nil), nil
	}
	if !strings.HasPrefix(lines[0], "Destination") {
		return domain.Result{}, textutil.Unparsable("route", "missing Destination header")
	}

	records := textutil.Table(textutil.Headers(lines[0]), lines[1:])
	if !opts.Raw {
		for _, rec := range records {
			textutil.Convert(rec, textutil.Int, "metric", "ref", "use", "mss", "window", "irtt")
		}
	}
	return domain.Many(records), nil
}
