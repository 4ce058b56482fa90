// Package stat converts the output of GNU stat into file records.
package stat

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
	Name:        "stat",
	Version:     "1.0",
	Description: "stat command parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux},
	Details:     "Reads the default GNU stat format for one or more files",
}

// field is one line pattern and the keys its groups fill.
type field struct {
	re   *regexp.Regexp
	keys []string
}

var (
	fileLine = regexp.MustCompile(`^\s*File: (.+)$`)

	fields = []field{
		{regexp.MustCompile(`^\s*Size: (\d+)\s+Blocks: (\d+)\s+IO Block: (\d+)\s+(.+)$`),
			[]string{"size", "blocks", "io_blocks", "type"}},
		{regexp.MustCompile(`^\s*Device: (\S+)\s+Inode: (\d+)\s+Links: (\d+)(?:\s+Device type: (\S+))?`),
			[]string{"device", "inode", "links", "device_type"}},
		{regexp.MustCompile(`^\s*Access: \((\d+)/(\S+)\)\s+Uid: \(\s*(\d+)/\s*(\S+)\)\s+Gid: \(\s*(\d+)/\s*(\S+)\)`),
			[]string{"access", "flags", "uid", "user", "gid", "group"}},
		{regexp.MustCompile(`^\s*Access: (\d.*|-)$`), []string{"access_time"}},
		{regexp.MustCompile(`^\s*Modify: (\d.*|-)$`), []string{"modify_time"}},
		{regexp.MustCompile(`^\s*Change: (\d.*|-)$`), []string{"change_time"}},
		{regexp.MustCompile(`^\s*Birth: (\d.*|-)$`), []string{"birth_time"}},
	}

	intKeys  = []string{"size", "blocks", "io_blocks", "inode", "links", "uid", "gid"}
	allKeys  = []string{"file", "link_to", "size", "blocks", "io_blocks", "type", "device", "inode", "links", "access", "flags", "uid", "user", "gid", "group", "access_time", "modify_time", "change_time", "birth_time"}
	quotes   = "'\"‘’`"
	linkPart = " -> "
)

// Converter handles stat output.
type Converter struct{}

// New creates a new stat converter.
func New() *Converter {
	return &Converter{}
}

// Descriptor returns the converter metadata.
func (c *Converter) Descriptor() *domain.ConverterDescriptor {
	return descriptor
}

// Convert parses one record per "File:" block.
func (c *Converter) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("stat", data); err != nil {
		return domain.Result{}, err
	}
	lines := textutil.Lines(data)
	if len(lines) == 0 {
		return domain.Many(nil), nil
	}

	var records []domain.Record
	var rec domain.Record
	for _, line := range lines {
		if m := fileLine.FindStringSubmatch(line); m != nil {
			rec = domain.Record{}
			records = append(records, rec)
			name, link, ok := strings.Cut(m[1], linkPart)
			rec["file"] = strings.Trim(name, quotes)
			if ok {
				rec["link_to"] = strings.Trim(link, quotes)
			}
			continue
		}
		if rec == nil {
			textutil.Warn(opts, "stat: skipping line before the first File: %q", line)
			continue
		}
		matchFields(rec, line)
	}
	if len(records) == 0 {
		return domain.Result{}, textutil.Unparsable("stat", "no File: line")
	}

	if !opts.Raw {
		for _, rec := range records {
			textutil.Convert(rec, textutil.Int, intKeys...)
			textutil.Convert(rec, textutil.Nullable, "birth_time")
			textutil.Fill(rec, allKeys...)
		}
	}
	return domain.Many(records), nil
}

func matchFields(rec domain.Record, line string) {
	for _, f := range fields {
		m := f.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		for i, k := range f.keys {
			if m[i+1] != "" {
				rec[k] = strings.TrimSpace(m[i+1])
			}
		}
		return
	}
}
