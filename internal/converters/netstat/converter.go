// Package netstat converts the Internet connection listing of netstat into
// socket records.
package netstat

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
	Name:        "netstat",
	Version:     "1.0",
	Description: "netstat command parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux},
	Details:     "Reads the Active Internet connections section; UNIX domain sockets are skipped",
}

var (
	internetSection = regexp.MustCompile(`^Active Internet connections`)
	otherSection    = regexp.MustCompile(`^Active `)
	keys            = []string{
		"proto", "recv_q", "send_q", "local_address", "local_port", "foreign_address", "foreign_port",
		"state", "pid", "program_name", "transport_protocol", "network_protocol",
	}
)

// Converter handles netstat output.
type Converter struct{}

// New creates a new netstat converter.
func New() *Converter {
	return &Converter{}
}

// Descriptor returns the converter metadata.
func (c *Converter) Descriptor() *domain.ConverterDescriptor {
	return descriptor
}

// Convert parses rows under the Proto heading until another section begins.
func (c *Converter) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("netstat", data); err != nil {
		return domain.Result{}, err
	}
	lines := textutil.Lines(data)
	if len(lines) == 0 {
		return domain.Many(nil), nil
	}

	var records []domain.Record
	inTable, seenHeader, withPID := false, false, false
	skipped := 0
	for _, line := range lines {
		switch {
		case internetSection.MatchString(line):
			inTable = true
			continue
		case otherSection.MatchString(line):
			inTable = false
			continue
		case strings.HasPrefix(line, "Proto"):
			seenHeader = true
			inTable = !strings.Contains(line, "RefCnt")
			withPID = strings.Contains(line, "PID/Program")
			continue
		}
		if !inTable || !seenHeader {
			skipped++
			continue
		}
		rec, ok := parseRow(line, withPID)
		if !ok {
			textutil.Warn(opts, "netstat: skipping malformed line %q", line)
			continue
		}
		if !opts.Raw {
			cook(rec)
		}
		records = append(records, rec)
	}
	if !seenHeader {
		return domain.Result{}, textutil.Unparsable("netstat", "missing Proto header")
	}
	if skipped > 0 {
		textutil.Warn(opts, "netstat: %d lines outside the Internet connections section were skipped", skipped)
	}
	return domain.Many(records), nil
}

func parseRow(line string, withPID bool) (domain.Record, bool) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return nil, false
	}
	proto := fields[0]
	rec := domain.Record{
		"proto":              proto,
		"recv_q":             fields[1],
		"send_q":             fields[2],
		"transport_protocol": strings.TrimSuffix(proto, "6"),
		"network_protocol":   "ipv4",
	}
	if strings.HasSuffix(proto, "6") {
		rec["network_protocol"] = "ipv6"
	}
	rec["local_address"], rec["local_port"] = textutil.SplitHostPort(fields[3])
	rec["foreign_address"], rec["foreign_port"] = textutil.SplitHostPort(fields[4])

	rest := fields[5:]
	if len(rest) > 0 && rest[0] != "-" && !strings.Contains(rest[0], "/") {
		rec["state"] = rest[0]
		rest = rest[1:]
	}
	if withPID && len(rest) > 0 {
		pid, program, ok := strings.Cut(strings.Join(rest, " "), "/")
		if ok {
			rec["pid"], rec["program_name"] = pid, program
		}
	}
	return rec, true
}

func cook(rec domain.Record) {
	textutil.Convert(rec, textutil.Int, "recv_q", "send_q", "pid")
	for _, side := range []string{"local", "foreign"} {
		if port, ok := rec[side+"_port"].(string); ok {
			if n := textutil.Int(port); n != nil {
				rec[side+"_port_num"] = n
			}
		}
	}
	textutil.Fill(rec, keys...)
}
