// Package ps converts the output of ps -ef and ps aux into process records.
package ps

import (
	"context"

	"github.com/custodia-labs/jc/internal/converters/textutil"
	"github.com/custodia-labs/jc/internal/core/domain"
	"github.com/custodia-labs/jc/internal/core/ports/driven"
)

// Ensure Converter implements the interface.
var _ driven.Converter = (*Converter)(nil)

var descriptor = &domain.ConverterDescriptor{
	Name:        "ps",
	Version:     "1.0",
	Description: "ps command parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux, domain.OSDarwin, domain.OSCygwin, domain.OSAIX, domain.OSFreeBSD},
	Details:     "Supports ps -ef and ps aux style output",
}

var (
	intColumns   = []string{"pid", "ppid", "c", "vsz", "rss"}
	floatColumns = []string{"cpu_percent", "mem_percent"}
)

// Converter handles ps output.
type Converter struct{}

// New creates a new ps converter.
func New() *Converter {
	return &Converter{}
}

// Descriptor returns the converter metadata.
func (c *Converter) Descriptor() *domain.ConverterDescriptor {
	return descriptor
}

// Convert parses the ps table. The final command column keeps its spaces.
func (c *Converter) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("ps", data); err != nil {
		return domain.Result{}, err
	}
	lines := textutil.Lines(data)
	if len(lines) == 0 {
		return domain.Many(nil), nil
	}

	keys := textutil.Headers(lines[0])
	if !contains(keys, "pid") {
		return domain.Result{}, textutil.Unparsable("ps", "missing PID column")
	}
	records := textutil.Table(keys, lines[1:])

	if !opts.Raw {
		for _, rec := range records {
			textutil.Convert(rec, textutil.Int, intColumns...)
			textutil.Convert(rec, textutil.Float, floatColumns...)
			textutil.Convert(rec, textutil.Nullable, "tty")
			textutil.Rename(rec, "cmd", "command")
		}
	}
	return domain.Many(records), nil
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
