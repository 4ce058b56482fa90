// Package ls converts the output of ls into file records.
//
// Supports plain listings (ls, ls -1, ls -a), long listings (ls -l, ls -al)
// and recursive listings (ls -R, ls -lR). In recursive listings each record
// carries the directory it was listed under as "parent".
package ls

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
	Name:        "ls",
	Version:     "1.0",
	Description: "ls command parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux, domain.OSDarwin, domain.OSCygwin, domain.OSAIX, domain.OSFreeBSD},
	Details:     "Supports ls, ls -l, ls -a and ls -R style output",
}

var longEntry = regexp.MustCompile(`^[-dlcbpsDC?][-rwxsStTl]{9}[.+@]?$`)

// Converter handles ls output.
type Converter struct{}

// New creates a new ls converter.
func New() *Converter {
	return &Converter{}
}

// Descriptor returns the converter metadata.
func (c *Converter) Descriptor() *domain.ConverterDescriptor {
	return descriptor
}

// Convert parses ls output into one record per file.
func (c *Converter) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("ls", data); err != nil {
		return domain.Result{}, err
	}

	lines := textutil.Lines(data)
	long := isLong(lines)

	records := make([]domain.Record, 0, len(lines))
	parent := ""
	skipped := 0
	for _, line := range lines {
		if strings.HasPrefix(line, "total ") {
			continue
		}
		if strings.HasSuffix(line, ":") && !strings.Contains(line, " ") || isDirHeader(line, long) {
			parent = strings.TrimSuffix(line, ":")
			continue
		}

		var rec domain.Record
		if long {
			rec = parseLong(line)
			if rec == nil {
				skipped++
				continue
			}
		} else {
			rec = domain.Record{"filename": line}
		}
		if parent != "" {
			rec["parent"] = parent
		}
		records = append(records, rec)
	}

	if long && skipped > 0 && len(records) == 0 {
		return domain.Result{}, textutil.Unparsable("ls", "no file entries found")
	}
	if skipped > 0 {
		textutil.Warn(opts, "ls: %d lines were not recognised and were skipped", skipped)
	}

	if !opts.Raw {
		for _, rec := range records {
			textutil.Convert(rec, textutil.Int, "links", "size")
		}
	}
	return domain.Many(records), nil
}

// isLong reports whether the listing is in long format.
func isLong(lines []string) bool {
	for _, line := range lines {
		if strings.HasPrefix(line, "total ") {
			return true
		}
		fields := strings.Fields(line)
		if len(fields) > 0 && longEntry.MatchString(fields[0]) {
			return true
		}
	}
	return false
}

// isDirHeader recognises "dir:" headers of recursive long listings,
// whose paths may contain spaces.
func isDirHeader(line string, long bool) bool {
	if !long || !strings.HasSuffix(line, ":") {
		return false
	}
	fields := strings.Fields(line)
	return len(fields) > 0 && !longEntry.MatchString(fields[0])
}

// parseLong parses one long-format line, or returns nil when it is not one.
func parseLong(line string) domain.Record {
	fields := textutil.SplitN(line, 9)
	if len(fields) < 9 || !longEntry.MatchString(fields[0]) {
		return nil
	}

	// device files print "major, minor" in place of the size
	if strings.HasSuffix(fields[4], ",") {
		fields = textutil.SplitN(line, 10)
		if len(fields) < 10 {
			return nil
		}
		fields = append(fields[:4], append([]string{fields[4] + " " + fields[5]}, fields[6:]...)...)
	}

	rec := domain.Record{
		"flags": fields[0],
		"links": fields[1],
		"owner": fields[2],
		"group": fields[3],
		"size":  fields[4],
		"date":  strings.Join(fields[5:8], " "),
	}
	name := fields[8]
	if strings.HasPrefix(fields[0], "l") {
		if target, link, ok := strings.Cut(name, " -> "); ok {
			name = target
			rec["link_to"] = link
		}
	}
	rec["filename"] = name
	return rec
}
