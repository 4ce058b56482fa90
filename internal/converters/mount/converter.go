// Package mount converts the output of mount into filesystem records.
package mount

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
	Name:        "mount",
	Version:     "1.0",
	Description: "mount command parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux, domain.OSDarwin},
}

var (
	// linuxLine matches "sysfs on /sys type sysfs (rw,nosuid,nodev)".
	linuxLine = regexp.MustCompile(`^(\S+) on (.+) type (\S+) \((.*)\)$`)
	// darwinLine matches "/dev/disk1s1 on / (apfs, local, journaled)".
	darwinLine = regexp.MustCompile(`^(\S+) on (.+) \((.*)\)$`)
)

// Converter handles mount output.
type Converter struct{}

// New creates a new mount converter.
func New() *Converter {
	return &Converter{}
}

// Descriptor returns the converter metadata.
func (c *Converter) Descriptor() *domain.ConverterDescriptor {
	return descriptor
}

// Convert parses linux and darwin mount lines. On darwin the first option
// is the filesystem type.
func (c *Converter) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("mount", data); err != nil {
		return domain.Result{}, err
	}

	var records []domain.Record
	skipped := 0
	for _, line := range textutil.Lines(data) {
		if m := linuxLine.FindStringSubmatch(line); m != nil {
			records = append(records, domain.Record{
				"filesystem":  m[1],
				"mount_point": m[2],
				"type":        m[3],
				"options":     splitOptions(m[4], ","),
			})
			continue
		}
		if m := darwinLine.FindStringSubmatch(line); m != nil {
			options := splitOptions(m[3], ", ")
			rec := domain.Record{
				"filesystem":  m[1],
				"mount_point": m[2],
				"type":        nil,
				"options":     options,
			}
			if len(options) > 0 {
				rec["type"] = options[0]
				rec["options"] = options[1:]
			}
			records = append(records, rec)
			continue
		}
		skipped++
	}
	if len(records) == 0 && skipped > 0 {
		return domain.Result{}, textutil.Unparsable("mount", "no mount entries found")
	}
	if skipped > 0 {
		textutil.Warn(opts, "mount: %d lines were not recognised and were skipped", skipped)
	}
	return domain.Many(records), nil
}

func splitOptions(s, sep string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	return strings.Split(s, sep)
}
