// Package df converts the output of df and df -h into filesystem records.
package df

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
	Name:        "df",
	Version:     "1.0",
	Description: "df command parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux, domain.OSDarwin},
	Details:     "Human-readable sizes are converted to bytes unless raw output is requested",
}

// Converter handles df output.
type Converter struct{}

// New creates a new df converter.
func New() *Converter {
	return &Converter{}
}

// Descriptor returns the converter metadata.
func (c *Converter) Descriptor() *domain.ConverterDescriptor {
	return descriptor
}

// Convert parses the df table.
func (c *Converter) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("df", data); err != nil {
		return domain.Result{}, err
	}
	lines := textutil.Lines(data)
	if len(lines) == 0 {
		return domain.Many(nil), nil
	}
	if !strings.HasPrefix(strings.ToLower(lines[0]), "filesystem") {
		return domain.Result{}, textutil.Unparsable("df", "missing Filesystem header")
	}

	header := strings.Replace(lines[0], "Mounted on", "Mounted_on", 1)
	keys := textutil.Headers(header)
	records := textutil.Table(keys, lines[1:])

	if opts.Raw {
		return domain.Many(records), nil
	}
	for _, rec := range records {
		for k, v := range rec {
			s, ok := v.(string)
			if !ok || k == "filesystem" || k == "mounted_on" {
				continue
			}
			if strings.HasSuffix(k, "_percent") {
				rec[k] = textutil.Int(strings.TrimSuffix(s, "%"))
				continue
			}
			rec[k] = textutil.Size(s)
		}
	}
	return domain.Many(records), nil
}
