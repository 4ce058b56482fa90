// Package ss converts the output of ss into socket records.
package ss

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
	Name:        "ss",
	Version:     "1.0",
	Description: "ss command parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux},
	Details:     "Extended columns such as users:(...) are kept in process",
}

var keys = []string{
	"netid", "state", "recv_q", "send_q", "local_address", "local_port",
	"peer_address", "peer_port", "interface", "process",
}

// Converter handles ss output.
type Converter struct{}

// New creates a new ss converter.
func New() *Converter {
	return &Converter{}
}

// Descriptor returns the converter metadata.
func (c *Converter) Descriptor() *domain.ConverterDescriptor {
	return descriptor
}

// Convert parses the socket table. The Netid column is absent when ss is
// filtered to a single protocol, as with ss -t.
func (c *Converter) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("ss", data); err != nil {
		return domain.Result{}, err
	}
	lines := textutil.Lines(data)
	if len(lines) == 0 {
		return domain.Many(nil), nil
	}
	head := strings.Fields(lines[0])
	if len(head) == 0 || (head[0] != "Netid" && head[0] != "State") {
		return domain.Result{}, textutil.Unparsable("ss", "missing Netid or State header")
	}
	withNetid := head[0] == "Netid"

	records := make([]domain.Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rec, ok := parseRow(strings.Fields(line), withNetid)
		if !ok {
			textutil.Warn(opts, "ss: skipping malformed line %q", line)
			continue
		}
		if !opts.Raw {
			cook(rec)
		}
		records = append(records, rec)
	}
	return domain.Many(records), nil
}

func parseRow(fields []string, withNetid bool) (domain.Record, bool) {
	rec := domain.Record{}
	if withNetid {
		if len(fields) == 0 {
			return nil, false
		}
		rec["netid"] = fields[0]
		fields = fields[1:]
	}
	if len(fields) < 5 {
		return nil, false
	}
	rec["state"], rec["recv_q"], rec["send_q"] = fields[0], fields[1], fields[2]
	fields = fields[3:]

	// UNIX sockets print the path and the inode as separate columns.
	netid, _ := rec["netid"].(string)
	if strings.HasPrefix(netid, "u_") {
		if len(fields) < 4 {
			return nil, false
		}
		rec["local_address"], rec["local_port"] = fields[0], fields[1]
		rec["peer_address"], rec["peer_port"] = fields[2], fields[3]
		fields = fields[4:]
	} else {
		local, localIf := splitInterface(fields[0])
		rec["local_address"], rec["local_port"] = textutil.SplitHostPort(local)
		rec["peer_address"], rec["peer_port"] = textutil.SplitHostPort(fields[1])
		if localIf != "" {
			rec["interface"] = localIf
		}
		fields = fields[2:]
	}
	if len(fields) > 0 {
		rec["process"] = strings.Join(fields, " ")
	}
	return rec, true
}

// splitInterface separates a %iface suffix from an address such as
// 127.0.0.53%lo:53.
func splitInterface(addr string) (string, string) {
	pct := strings.IndexByte(addr, '%')
	if pct < 0 {
		return addr, ""
	}
	colon := strings.LastIndexByte(addr, ':')
	if colon < pct {
		return addr[:pct], addr[pct+1:]
	}
	return addr[:pct] + addr[colon:], addr[pct+1 : colon]
}

func cook(rec domain.Record) {
	textutil.Convert(rec, textutil.Int, "recv_q", "send_q")
	for _, side := range []string{"local", "peer"} {
		if port, ok := rec[side+"_port"].(string); ok {
			if n := textutil.Int(port); n != nil {
				rec[side+"_port_num"] = n
			}
		}
	}
	textutil.Fill(rec, keys...)
}
