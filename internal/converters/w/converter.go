// Package w converts the output of w into logged-in user records.
package w

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
	Name:        "w",
	Version:     "1.0",
	Description: "w command parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux, domain.OSDarwin, domain.OSCygwin, domain.OSAIX, domain.OSFreeBSD},
}

// Converter handles w output.
type Converter struct{}

// New creates a new w converter.
func New() *Converter {
	return &Converter{}
}

// Descriptor returns the converter metadata.
func (c *Converter) Descriptor() *domain.ConverterDescriptor {
	return descriptor
}

// Convert parses the user table, skipping the uptime summary line.
func (c *Converter) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("w", data); err != nil {
		return domain.Result{}, err
	}
	lines := textutil.Lines(data)
	for len(lines) > 0 && !strings.HasPrefix(lines[0], "USER") {
		lines = lines[1:]
	}
	if len(lines) == 0 {
		if strings.TrimSpace(data) == "" {
			return domain.Many(nil), nil
		}
		return domain.Result{}, textutil.Unparsable("w", "missing USER header")
	}

	keys := textutil.Headers(lines[0])
	for i, k := range keys {
		if k == "login" {
			keys[i] = "login_at"
		}
	}
	records := textutil.Table(keys, lines[1:])
	if !opts.Raw {
		for _, rec := range records {
			for _, k := range keys {
				textutil.Convert(rec, textutil.Nullable, k)
			}
		}
	}
	return domain.Many(records), nil
}
