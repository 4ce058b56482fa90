// Package fstab converts /etc/fstab into mount entry records.
package fstab

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
	Name:        "fstab",
	Version:     "1.0",
	Description: "fstab file parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux},
}

var keys = []string{"fs_spec", "fs_file", "fs_vfstype", "fs_mntops", "fs_freq", "fs_passno"}

// Converter handles fstab files.
type Converter struct{}

// New creates a new fstab converter.
func New() *Converter {
	return &Converter{}
}

// Descriptor returns the converter metadata.
func (c *Converter) Descriptor() *domain.ConverterDescriptor {
	return descriptor
}

// Convert parses one record per non-comment line.
func (c *Converter) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("fstab", data); err != nil {
		return domain.Result{}, err
	}

	var records []domain.Record
	for _, line := range textutil.Lines(data) {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			textutil.Warn(opts, "fstab: skipping short entry %q", line)
			continue
		}
		rec := make(domain.Record, len(keys))
		for i, f := range fields {
			if i >= len(keys) {
				break
			}
			rec[keys[i]] = f
		}
		if !opts.Raw {
			textutil.Convert(rec, textutil.Int, "fs_freq", "fs_passno")
		}
		records = append(records, rec)
	}
	return domain.Many(records), nil
}
