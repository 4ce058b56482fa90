// Package hosts converts /etc/hosts into address records.
package hosts

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
	Name:        "hosts",
	Version:     "1.0",
	Description: "/etc/hosts file parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux, domain.OSDarwin, domain.OSCygwin, domain.OSWin32, domain.OSAIX, domain.OSFreeBSD},
}

// Converter handles hosts files.
type Converter struct{}

// New creates a new hosts converter.
func New() *Converter {
	return &Converter{}
}

// Descriptor returns the converter metadata.
func (c *Converter) Descriptor() *domain.ConverterDescriptor {
	return descriptor
}

// Convert parses one record per address line; inline comments are dropped.
func (c *Converter) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("hosts", data); err != nil {
		return domain.Result{}, err
	}

	var records []domain.Record
	for _, line := range textutil.Lines(data) {
		line, _, _ = strings.Cut(line, "#")
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) == 1 {
			textutil.Warn(opts, "hosts: address %s has no hostname", fields[0])
			continue
		}
		records = append(records, domain.Record{
			"ip":       fields[0],
			"hostname": fields[1:],
		})
	}
	return domain.Many(records), nil
}
