// Package iptables converts iptables -L listings into chain records.
package iptables

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
	Name:        "iptables",
	Version:     "1.0",
	Description: "iptables command parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux},
	Details:     "Reads iptables -L with or without -v, -n and --line-numbers",
}

var chainLine = regexp.MustCompile(`^Chain (\S+) \((?:policy (\S+)(?: (\S+) packets, (\S+) bytes)?|(\d+) references)\)`)

// Converter handles iptables output.
type Converter struct{}

// New creates a new iptables converter.
func New() *Converter {
	return &Converter{}
}

// Descriptor returns the converter metadata.
func (c *Converter) Descriptor() *domain.ConverterDescriptor {
	return descriptor
}

// Convert builds one record per chain with its rules. Text after the
// last heading column of a rule is kept as options.
func (c *Converter) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("iptables", data); err != nil {
		return domain.Result{}, err
	}
	lines := textutil.Lines(data)
	if len(lines) == 0 {
		return domain.Many(nil), nil
	}

	var chains []domain.Record
	var chain domain.Record
	var keys []string
	for _, line := range lines {
		if m := chainLine.FindStringSubmatch(line); m != nil {
			chain = newChain(m)
			chains = append(chains, chain)
			keys = nil
			continue
		}
		if chain == nil {
			textutil.Warn(opts, "iptables: skipping line before the first chain %q", line)
			continue
		}
		if keys == nil {
			keys = append(textutil.Headers(line), "options")
			continue
		}

		rule := domain.Record{}
		for i, f := range textutil.SplitN(line, len(keys)) {
			rule[keys[i]] = f
		}
		if !opts.Raw {
			cookRule(rule)
		}
		rules, _ := chain["rules"].([]domain.Record)
		chain["rules"] = append(rules, rule)
	}
	if len(chains) == 0 {
		return domain.Result{}, textutil.Unparsable("iptables", "no Chain line")
	}

	if !opts.Raw {
		for _, chain := range chains {
			textutil.Convert(chain, textutil.DecimalSize, "default_packets", "default_bytes")
		}
	}
	return domain.Many(chains), nil
}

func newChain(m []string) domain.Record {
	chain := domain.Record{"chain": m[1], "rules": []domain.Record{}}
	if m[2] != "" {
		chain["default_policy"] = m[2]
	}
	if m[3] != "" {
		chain["default_packets"] = m[3]
		chain["default_bytes"] = m[4]
	}
	if m[5] != "" {
		chain["references"] = textutil.Int(m[5])
	}
	return chain
}

func cookRule(rule domain.Record) {
	textutil.Convert(rule, textutil.Int, "num")
	textutil.Convert(rule, textutil.DecimalSize, "pkts", "bytes")
	textutil.Convert(rule, func(s string) any {
		if s == "--" {
			return nil
		}
		return s
	}, "opt")
}
