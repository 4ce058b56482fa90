// Package ifconfig converts the output of ifconfig into interface records.
package ifconfig

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
	Name:        "ifconfig",
	Version:     "1.0",
	Description: "ifconfig command parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux, domain.OSDarwin, domain.OSAIX, domain.OSFreeBSD},
	Details:     "Reads net-tools, BSD and legacy Link encap formats",
}

// pattern fills keys from the groups of re. The first match for a key wins.
type pattern struct {
	re   *regexp.Regexp
	keys []string
}

var (
	modernHeader = regexp.MustCompile(`^(\S+?):? flags=(\d+)<([^>]*)>\s+(?:metric (\d+)\s+)?mtu (\d+)`)
	legacyHeader = regexp.MustCompile(`^(\S+)\s+Link encap:(.+?)(?:\s+HWaddr (\S+))?\s*$`)

	patterns = []pattern{
		{regexp.MustCompile(`\binet (\d+\.\d+\.\d+\.\d+)\s+netmask (\S+)(?:\s+broadcast (\S+))?`),
			[]string{"ipv4_addr", "ipv4_mask", "ipv4_bcast"}},
		{regexp.MustCompile(`\binet addr:(\S+)(?:\s+Bcast:(\S+))?\s+Mask:(\S+)`),
			[]string{"ipv4_addr", "ipv4_bcast", "ipv4_mask"}},
		{regexp.MustCompile(`\binet6 (\S+)\s+prefixlen (\d+)(?:\s+scopeid (\S+))?`),
			[]string{"ipv6_addr", "ipv6_mask", "ipv6_scope"}},
		{regexp.MustCompile(`\binet6 addr: ([^/\s]+)/(\d+)\s+Scope:(\S+)`),
			[]string{"ipv6_addr", "ipv6_mask", "ipv6_scope"}},
		{regexp.MustCompile(`\bether (\S+)`), []string{"mac_addr"}},
		{regexp.MustCompile(`txqueuelen \d+\s+\(([^)]*)\)`), []string{"type"}},
		{regexp.MustCompile(`RX packets (\d+)\s+bytes (\d+)`), []string{"rx_packets", "rx_bytes"}},
		{regexp.MustCompile(`RX errors (\d+)\s+dropped (\d+)\s+overruns (\d+)\s+frame (\d+)`),
			[]string{"rx_errors", "rx_dropped", "rx_overruns", "rx_frame"}},
		{regexp.MustCompile(`TX packets (\d+)\s+bytes (\d+)`), []string{"tx_packets", "tx_bytes"}},
		{regexp.MustCompile(`TX errors (\d+)\s+dropped (\d+)\s+overruns (\d+)\s+carrier (\d+)\s+collisions (\d+)`),
			[]string{"tx_errors", "tx_dropped", "tx_overruns", "tx_carrier", "tx_collisions"}},
		{regexp.MustCompile(`RX packets:(\d+) errors:(\d+) dropped:(\d+) overruns:(\d+) frame:(\d+)`),
			[]string{"rx_packets", "rx_errors", "rx_dropped", "rx_overruns", "rx_frame"}},
		{regexp.MustCompile(`TX packets:(\d+) errors:(\d+) dropped:(\d+) overruns:(\d+) carrier:(\d+)`),
			[]string{"tx_packets", "tx_errors", "tx_dropped", "tx_overruns", "tx_carrier"}},
		{regexp.MustCompile(`collisions:(\d+)`), []string{"tx_collisions"}},
		{regexp.MustCompile(`RX bytes:(\d+)`), []string{"rx_bytes"}},
		{regexp.MustCompile(`TX bytes:(\d+)`), []string{"tx_bytes"}},
		{regexp.MustCompile(`^\s*((?:[A-Z]+ )*[A-Z]+)\s+MTU:(\d+)\s+Metric:(\d+)`),
			[]string{"state", "mtu", "metric"}},
	}

	intKeys = []string{
		"flags", "mtu", "metric", "ipv6_mask",
		"rx_packets", "rx_bytes", "rx_errors", "rx_dropped", "rx_overruns", "rx_frame",
		"tx_packets", "tx_bytes", "tx_errors", "tx_dropped", "tx_overruns", "tx_carrier", "tx_collisions",
	}
	allKeys = append([]string{
		"name", "state", "ipv4_addr", "ipv4_mask", "ipv4_bcast",
		"ipv6_addr", "ipv6_scope", "mac_addr", "type",
	}, intKeys...)
)

// Converter handles ifconfig output.
type Converter struct{}

// New creates a new ifconfig converter.
func New() *Converter {
	return &Converter{}
}

// Descriptor returns the converter metadata.
func (c *Converter) Descriptor() *domain.ConverterDescriptor {
	return descriptor
}

// Convert starts a record at each unindented interface line and fills it
// from the indented detail lines that follow.
func (c *Converter) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("ifconfig", data); err != nil {
		return domain.Result{}, err
	}
	lines := textutil.Lines(data)
	if len(lines) == 0 {
		return domain.Many(nil), nil
	}

	var records []domain.Record
	var rec domain.Record
	for _, line := range lines {
		if line[0] != ' ' && line[0] != '\t' {
			rec = interfaceHeader(line)
			if rec == nil {
				textutil.Warn(opts, "ifconfig: skipping unrecognised interface line %q", line)
				continue
			}
			records = append(records, rec)
			continue
		}
		if rec == nil {
			continue
		}
		for _, p := range patterns {
			m := p.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			for i, k := range p.keys {
				if _, set := rec[k]; !set && m[i+1] != "" {
					rec[k] = m[i+1]
				}
			}
		}
	}
	if len(records) == 0 {
		return domain.Result{}, textutil.Unparsable("ifconfig", "no interface found")
	}

	if !opts.Raw {
		for _, rec := range records {
			textutil.Convert(rec, textutil.Int, intKeys...)
			textutil.Fill(rec, allKeys...)
		}
	}
	return domain.Many(records), nil
}

func interfaceHeader(line string) domain.Record {
	if m := modernHeader.FindStringSubmatch(line); m != nil {
		rec := domain.Record{
			"name":  m[1],
			"flags": m[2],
			"state": strings.ReplaceAll(m[3], ",", " "),
			"mtu":   m[5],
		}
		if m[4] != "" {
			rec["metric"] = m[4]
		}
		return rec
	}
	if m := legacyHeader.FindStringSubmatch(line); m != nil {
		rec := domain.Record{"name": m[1], "type": strings.TrimSpace(m[2])}
		if m[3] != "" {
			rec["mac_addr"] = m[3]
		}
		return rec
	}
	return nil
}
