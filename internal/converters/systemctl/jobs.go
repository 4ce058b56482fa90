package systemctl

import (
	"context"
	"strings"

	"github.com/custodia-labs/jc/internal/converters/textutil"
	"github.com/custodia-labs/jc/internal/core/domain"
	"github.com/custodia-labs/jc/internal/core/ports/driven"
)

var _ driven.Converter = (*Jobs)(nil)

var jobsDescriptor = &domain.ConverterDescriptor{
	Name:        "systemctl_lj",
	Version:     "1.0",
	Description: "systemctl list-jobs command parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux},
}

// Jobs handles systemctl list-jobs output.
type Jobs struct{}

// NewJobs creates a new systemctl list-jobs converter.
func NewJobs() *Jobs {
	return &Jobs{}
}

// Descriptor returns the converter metadata.
func (c *Jobs) Descriptor() *domain.ConverterDescriptor {
	return jobsDescriptor
}

// Convert parses the job table. "No jobs running." yields an empty list.
func (c *Jobs) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("systemctl_lj", data); err != nil {
		return domain.Result{}, err
	}
	lines := textutil.Lines(data)
	if len(lines) == 0 || footer.MatchString(strings.TrimSpace(lines[0])) {
		return domain.Many(nil), nil
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[0]), "JOB") {
		return domain.Result{}, textutil.Unparsable("systemctl_lj", "missing JOB header")
	}

	records := textutil.Table(textutil.Headers(lines[0]), tableRows(lines[1:]))
	if !opts.Raw {
		for _, rec := range records {
			textutil.Convert(rec, textutil.Int, "job")
		}
	}
	return domain.Many(records), nil
}
