// Package jobs converts the output of the shell jobs builtin.
package jobs

import (
	"context"
	"regexp"

	"github.com/custodia-labs/jc/internal/converters/textutil"
	"github.com/custodia-labs/jc/internal/core/domain"
	"github.com/custodia-labs/jc/internal/core/ports/driven"
)

// Ensure Converter implements the interface.
var _ driven.Converter = (*Converter)(nil)

var descriptor = &domain.ConverterDescriptor{
	Name:        "jobs",
	Version:     "1.0",
	Description: "jobs command parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux, domain.OSDarwin, domain.OSCygwin, domain.OSAIX, domain.OSFreeBSD},
	Details:     "Also supports the -l option",
}

// jobLine matches "[1]+  Running    sleep 100 &" and "[2]- 14321 Stopped  vi".
var jobLine = regexp.MustCompile(`^\[(\d+)\]\s*([+-])?\s+(?:(\d+)\s+)?(\S+(?:\(\d+\))?)\s+(.*)$`)

// Converter handles jobs output.
type Converter struct{}

// New creates a new jobs converter.
func New() *Converter {
	return &Converter{}
}

// Descriptor returns the converter metadata.
func (c *Converter) Descriptor() *domain.ConverterDescriptor {
	return descriptor
}

// Convert parses one record per job line.
func (c *Converter) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("jobs", data); err != nil {
		return domain.Result{}, err
	}

	var records []domain.Record
	skipped := 0
	for _, line := range textutil.Lines(data) {
		m := jobLine.FindStringSubmatch(line)
		if m == nil {
			skipped++
			continue
		}
		rec := domain.Record{
			"job_number": m[1],
			"status":     m[4],
			"command":    m[5],
		}
		switch m[2] {
		case "+":
			rec["history"] = "current"
		case "-":
			rec["history"] = "previous"
		}
		if m[3] != "" {
			rec["pid"] = m[3]
		}
		if !opts.Raw {
			textutil.Convert(rec, textutil.Int, "job_number", "pid")
		}
		records = append(records, rec)
	}
	if len(records) == 0 && skipped > 0 {
		return domain.Result{}, textutil.Unparsable("jobs", "no job lines found")
	}
	if skipped > 0 {
		textutil.Warn(opts, "jobs: %d lines were not recognised and were skipped", skipped)
	}
	return domain.Many(records), nil
}
