// Package uptime converts the output of uptime into a single record.
package uptime

import (
	"context"
	"regexp"
	"strings"

	"github.com/custodia-labs/jc/internal/converters/textutil"
	"github.com/custodia-labs/jc/internal/core/domain"
	"github.com/custodia-labs/jc/internal/core/ports/driven"
)

// Ensure Converter implements the interface.
var _ driven.Converter = (*Converter)(nil)

var descriptor = &domain.ConverterDescriptor{
	Name:        "uptime",
	Version:     "1.0",
	Description: "uptime command parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux, domain.OSDarwin, domain.OSCygwin, domain.OSAIX, domain.OSFreeBSD},
}

var (
	linePattern  = regexp.MustCompile(`^\s*(\S+)\s+up\s+(.*?),\s+(\d+)\s+users?,\s+load averages?:\s+(.*)$`)
	loadSplitter = regexp.MustCompile(`,?\s+`)
)

// Converter handles uptime output.
type Converter struct{}

// New creates a new uptime converter.
func New() *Converter {
	return &Converter{}
}

// Descriptor returns the converter metadata.
func (c *Converter) Descriptor() *domain.ConverterDescriptor {
	return descriptor
}

// Convert parses the uptime summary line.
func (c *Converter) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("uptime", data); err != nil {
		return domain.Result{}, err
	}
	lines := textutil.Lines(data)
	if len(lines) == 0 {
		return domain.Single(nil), nil
	}

	m := linePattern.FindStringSubmatch(lines[0])
	if m == nil {
		return domain.Result{}, textutil.Unparsable("uptime", "no load average in %q", lines[0])
	}

	loads := loadSplitter.Split(strings.TrimSpace(m[4]), -1)
	if len(loads) != 3 {
		textutil.Warn(opts, "uptime: expected 3 load averages, found %d", len(loads))
	}
	for len(loads) < 3 {
		loads = append(loads, "")
	}

	rec := domain.Record{
		"time":     m[1],
		"uptime":   m[2],
		"users":    m[3],
		"load_1m":  loads[0],
		"load_5m":  loads[1],
		"load_15m": loads[2],
	}
	if !opts.Raw {
		textutil.Convert(rec, textutil.Int, "users")
		textutil.Convert(rec, textutil.Float, "load_1m", "load_5m", "load_15m")
	}
	return domain.Single(rec), nil
}
