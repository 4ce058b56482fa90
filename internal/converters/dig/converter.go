// Package dig converts the output of dig into one record per DNS query.
package dig

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
	Name:        "dig",
	Version:     "1.0",
	Description: "dig command parser",
	Author:      "Kelly Brazil",
	AuthorEmail: "kellyjonbrazil@gmail.com",
	Compatible:  []domain.OSFamily{domain.OSLinux, domain.OSDarwin, domain.OSCygwin, domain.OSAIX, domain.OSFreeBSD},
	Details:     "Expects the default dig output; +short is not supported",
}

var (
	headerLine = regexp.MustCompile(`^;; ->>HEADER<<- opcode: (\S+), status: (\S+), id: (\d+)`)
	flagsLine  = regexp.MustCompile(`^;; flags:([^;]*); QUERY: (\d+), ANSWER: (\d+), AUTHORITY: (\d+), ADDITIONAL: (\d+)`)
	queryTime  = regexp.MustCompile(`^;; Query time: (\d+ \S+)`)
	serverLine = regexp.MustCompile(`^;; SERVER: (.+)$`)
	whenLine   = regexp.MustCompile(`^;; WHEN: (.+)$`)
	sizeLine   = regexp.MustCompile(`^;; MSG SIZE\s+rcvd: (\d+)`)
)

// sections maps section headings to the record key holding their entries.
var sections = map[string]string{
	";; QUESTION SECTION:":   "question",
	";; ANSWER SECTION:":     "answer",
	";; AUTHORITY SECTION:":  "authority",
	";; ADDITIONAL SECTION:": "additional",
}

var intKeys = []string{"id", "query_num", "answer_num", "authority_num", "additional_num", "rcvd"}

// Converter handles dig output.
type Converter struct{}

// New creates a new dig converter.
func New() *Converter {
	return &Converter{}
}

// Descriptor returns the converter metadata.
func (c *Converter) Descriptor() *domain.ConverterDescriptor {
	return descriptor
}

// Convert starts a record at each ->>HEADER<<- line and fills it from the
// flags line, the record sections and the trailing statistics.
func (c *Converter) Convert(_ context.Context, data string, opts domain.ConvertOptions) (domain.Result, error) {
	if err := textutil.RequireText("dig", data); err != nil {
		return domain.Result{}, err
	}
	lines := textutil.Lines(data)
	if len(lines) == 0 {
		return domain.Many(nil), nil
	}

	var records []domain.Record
	var rec domain.Record
	section := ""
	for _, line := range lines {
		if m := headerLine.FindStringSubmatch(line); m != nil {
			rec = domain.Record{"opcode": m[1], "status": m[2], "id": m[3]}
			records = append(records, rec)
			section = ""
			continue
		}
		if rec == nil {
			continue
		}
		if key, ok := sections[strings.TrimSpace(line)]; ok {
			section = key
			continue
		}

		switch {
		case flagsLine.MatchString(line):
			m := flagsLine.FindStringSubmatch(line)
			rec["flags"] = strings.Fields(m[1])
			rec["query_num"], rec["answer_num"] = m[2], m[3]
			rec["authority_num"], rec["additional_num"] = m[4], m[5]
		case queryTime.MatchString(line):
			rec["query_time"] = queryTime.FindStringSubmatch(line)[1]
			section = ""
		case serverLine.MatchString(line):
			rec["server"] = serverLine.FindStringSubmatch(line)[1]
		case whenLine.MatchString(line):
			rec["when"] = whenLine.FindStringSubmatch(line)[1]
		case sizeLine.MatchString(line):
			rec["rcvd"] = sizeLine.FindStringSubmatch(line)[1]
		case strings.HasPrefix(line, ";;"):
			section = ""
		case section == "question":
			fields := strings.Fields(strings.TrimPrefix(line, ";"))
			if len(fields) < 3 {
				textutil.Warn(opts, "dig: skipping malformed question %q", line)
				continue
			}
			rec["question"] = domain.Record{"name": fields[0], "class": fields[1], "type": fields[2]}
		case section != "" && !strings.HasPrefix(line, ";"):
			entry, ok := resourceRecord(line)
			if !ok {
				textutil.Warn(opts, "dig: skipping malformed %s record %q", section, line)
				continue
			}
			list, _ := rec[section].([]domain.Record)
			rec[section] = append(list, entry)
		}
	}
	if len(records) == 0 {
		return domain.Result{}, textutil.Unparsable("dig", "no ->>HEADER<<- line")
	}

	if !opts.Raw {
		for _, rec := range records {
			cook(rec)
		}
	}
	return domain.Many(records), nil
}

// resourceRecord splits "name ttl class type data..." lines.
func resourceRecord(line string) (domain.Record, bool) {
	fields := textutil.SplitN(line, 5)
	if len(fields) < 5 {
		return nil, false
	}
	return domain.Record{
		"name":  fields[0],
		"ttl":   fields[1],
		"class": fields[2],
		"type":  fields[3],
		"data":  fields[4],
	}, true
}

func cook(rec domain.Record) {
	textutil.Convert(rec, textutil.Int, intKeys...)
	textutil.Convert(rec, func(s string) any {
		n, _, _ := strings.Cut(s, " ")
		return textutil.Int(n)
	}, "query_time")
	for _, key := range []string{"answer", "authority", "additional"} {
		list, _ := rec[key].([]domain.Record)
		for _, entry := range list {
			textutil.Convert(entry, textutil.Int, "ttl")
		}
	}
}
