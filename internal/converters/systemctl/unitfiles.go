package systemctl

import (
	"context"
	"strings"

	"github.com/custodia-labs/jc/internal/converters/textutil"
	"github.com/custodia-labs/jc/internal/core/domain"
	"github.com/custodia-labs/jc/internal/core/ports/driven"
)

var _ driven.Converter = (*UnitFiles)(nil)

var unitFilesDescriptor = &domain.ConverterDescriptor{
	Name:        "systemctl_luf",
	Version:     "1.0",
	Description: "systemctl list-unit-files command parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux},
}

// UnitFiles handles systemctl list-unit-files output.
type UnitFiles struct{}

// NewUnitFiles creates a new systemctl list-unit-files converter.
func NewUnitFiles() *UnitFiles {
	return &UnitFiles{}
}

// Descriptor returns the converter metadata.
func (c *UnitFiles) Descriptor() *domain.ConverterDescriptor {
	return unitFilesDescriptor
}

// Convert parses the unit file table. The two-word headings UNIT FILE and
// VENDOR PRESET become unit_file and vendor_preset.
func (c *UnitFiles) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("systemctl_luf", data); err != nil {
		return domain.Result{}, err
	}
	lines := textutil.Lines(data)
	if len(lines) == 0 {
		return domain.Many(nil), nil
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[0]), "UNIT FILE") {
		return domain.Result{}, textutil.Unparsable("systemctl_luf", "missing UNIT FILE header")
	}

	keys := []string{"unit_file", "state"}
	if strings.Contains(lines[0], "VENDOR PRESET") {
		keys = append(keys, "vendor_preset")
	}

	rows := tableRows(lines[1:])
	records := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		fields := strings.Fields(row)
		if len(fields) < 2 {
			textutil.Warn(opts, "systemctl_luf: skipping malformed line %q", row)
			continue
		}
		rec := make(domain.Record, len(keys))
		for i, k := range keys {
			if i < len(fields) {
				rec[k] = fields[i]
			}
		}
		records = append(records, rec)
	}
	return domain.Many(records), nil
}
