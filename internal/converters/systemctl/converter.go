// Package systemctl converts the unit listing of systemctl -a.
package systemctl

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
	Name:        "systemctl",
	Version:     "1.0",
	Description: "systemctl command parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux},
	Details:     "The legend printed after the table is ignored",
}

// Converter handles systemctl output.
type Converter struct{}

// New creates a new systemctl converter.
func New() *Converter {
	return &Converter{}
}

// Descriptor returns the converter metadata.
func (c *Converter) Descriptor() *domain.ConverterDescriptor {
	return descriptor
}

// Convert parses the unit table, stopping at the legend.
func (c *Converter) Convert(_ context.Context, data string, _ domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("systemctl", data); err != nil {
		return domain.Result{}, err
	}
	lines := textutil.Lines(data)
	if len(lines) == 0 {
		return domain.Many(nil), nil
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[0]), "UNIT") {
		return domain.Result{}, textutil.Unparsable("systemctl", "missing UNIT header")
	}

	keys := textutil.Headers(lines[0])
	var rows []string
	for _, line := range lines[1:] {
		if strings.HasPrefix(line, "LOAD ") {
			break
		}
		line = strings.TrimLeft(line, " ●*")
		rows = append(rows, line)
	}
	return domain.Many(textutil.Table(keys, rows)), nil
}
