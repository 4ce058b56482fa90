// Package arp converts the output of arp and arp -a into neighbour records.
package arp

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
	Name:        "arp",
	Version:     "1.0",
	Description: "arp command parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux, domain.OSDarwin, domain.OSAIX, domain.OSFreeBSD},
	Details:     "Supports the arp table and arp -a BSD style output",
}

// bsdEntry matches "? (192.168.1.1) at 00:50:56:f0:98:26 [ether] on ens33".
var bsdEntry = regexp.MustCompile(`^(\S+) \(([^)]+)\) at (\S+)(?: \[(\S+)\])? on (\S+)`)

// Converter handles arp output.
type Converter struct{}

// New creates a new arp converter.
func New() *Converter {
	return &Converter{}
}

// Descriptor returns the converter metadata.
func (c *Converter) Descriptor() *domain.ConverterDescriptor {
	return descriptor
}

// Convert parses either arp table format.
func (c *Converter) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("arp", data); err != nil {
		return domain.Result{}, err
	}
	lines := textutil.Lines(data)
	if len(lines) == 0 {
		return domain.Many(nil), nil
	}

	var records []domain.Record
	if strings.HasPrefix(lines[0], "Address") {
		header := strings.Replace(lines[0], "Flags Mask", "Flags_Mask", 1)
		records = textutil.Table(textutil.Headers(header), lines[1:])
	} else {
		skipped := 0
		for _, line := range lines {
			m := bsdEntry.FindStringSubmatch(line)
			if m == nil {
				skipped++
				continue
			}
			records = append(records, domain.Record{
				"name":      m[1],
				"address":   m[2],
				"hwaddress": m[3],
				"hwtype":    m[4],
				"iface":     m[5],
			})
		}
		if len(records) == 0 {
			return domain.Result{}, textutil.Unparsable("arp", "no arp entries found")
		}
		if skipped > 0 {
			textutil.Warn(opts, "arp: %d lines were not recognised and were skipped", skipped)
		}
	}

	if !opts.Raw {
		for _, rec := range records {
			textutil.Convert(rec, textutil.Nullable, "name", "hwtype")
		}
	}
	return domain.Many(records), nil
}
