// Package uname converts the output of uname -a into a single record.
package uname

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
	Name:        "uname",
	Version:     "1.0",
	Description: "uname -a command parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux},
	Details:     "Linux uname -a output only",
}

// minFields is kernel name, node name, release, at least one version word,
// machine, processor, hardware platform and operating system.
const minFields = 8

// Converter handles uname -a output.
type Converter struct{}

// New creates a new uname converter.
func New() *Converter {
	return &Converter{}
}

// Descriptor returns the converter metadata.
func (c *Converter) Descriptor() *domain.ConverterDescriptor {
	return descriptor
}

// Convert parses one line of uname -a output.
func (c *Converter) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("uname", data); err != nil {
		return domain.Result{}, err
	}
	lines := textutil.Lines(data)
	if len(lines) == 0 {
		return domain.Single(nil), nil
	}
	if len(lines) > 1 {
		textutil.Warn(opts, "uname: only the first line of input is used")
	}

	fields := strings.Fields(lines[0])
	if len(fields) < minFields {
		return domain.Result{}, textutil.Unparsable("uname", "expected uname -a output, got %d fields", len(fields))
	}

	n := len(fields)
	return domain.Single(domain.Record{
		"kernel_name":       fields[0],
		"node_name":         fields[1],
		"kernel_release":    fields[2],
		"kernel_version":    strings.Join(fields[3:n-4], " "),
		"machine":           fields[n-4],
		"processor":         fields[n-3],
		"hardware_platform": fields[n-2],
		"operating_system":  fields[n-1],
	}), nil
}
