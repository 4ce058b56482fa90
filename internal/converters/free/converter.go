// Package free converts the output of free and free -h into memory records.
package free

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
	Name:        "free",
	Version:     "1.0",
	Description: "free command parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux},
}

// Converter handles free output.
type Converter struct{}

// New creates a new free converter.
func New() *Converter {
	return &Converter{}
}

// Descriptor returns the converter metadata.
func (c *Converter) Descriptor() *domain.ConverterDescriptor {
	return descriptor
}

// Convert parses the free table. The header row has no label column, so
// each record gets a "type" key (Mem, Swap) from the row label.
func (c *Converter) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("free", data); err != nil {
		return domain.Result{}, err
	}
	lines := textutil.Lines(data)
	if len(lines) == 0 {
		return domain.Many(nil), nil
	}
	if !strings.Contains(lines[0], "total") {
		return domain.Result{}, textutil.Unparsable("free", "missing header")
	}

	keys := append([]string{"type"}, textutil.Headers(lines[0])...)
	records := textutil.Table(keys, lines[1:])
	for _, rec := range records {
		if t, ok := rec["type"].(string); ok {
			rec["type"] = strings.TrimSuffix(t, ":")
		}
		if !opts.Raw {
			for _, k := range keys[1:] {
				textutil.Convert(rec, textutil.Size, k)
			}
		}
	}
	return domain.Many(records), nil
}
