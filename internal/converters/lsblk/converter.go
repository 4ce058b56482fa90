// Package lsblk converts the output of lsblk into block device records.
package lsblk

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
	Name:        "lsblk",
	Version:     "1.0",
	Description: "lsblk command parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux},
	Details:     "Tree drawing characters are removed from device names",
}

// treeChars are the drawing characters lsblk prints before child devices.
const treeChars = " \t│├└─`|-"

// Converter handles lsblk output.
type Converter struct{}

// New creates a new lsblk converter.
func New() *Converter {
	return &Converter{}
}

// Descriptor returns the converter metadata.
func (c *Converter) Descriptor() *domain.ConverterDescriptor {
	return descriptor
}

// Convert parses the device table. Cooked output turns the rm and ro
// columns into booleans and fills an empty mountpoint with null.
func (c *Converter) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("lsblk", data); err != nil {
		return domain.Result{}, err
	}
	lines := textutil.Lines(data)
	if len(lines) == 0 {
		return domain.Many(nil), nil
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[0]), "NAME") {
		return domain.Result{}, textutil.Unparsable("lsblk", "missing NAME header")
	}

	keys := textutil.Headers(lines[0])
	rows := make([]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rows = append(rows, strings.TrimLeft(line, treeChars))
	}

	records := textutil.Table(keys, rows)
	if !opts.Raw {
		for _, rec := range records {
			textutil.Convert(rec, textutil.Bool, "rm", "ro")
			textutil.Fill(rec, keys...)
		}
	}
	return domain.Many(records), nil
}
