// Package textutil holds the tokenising and cooking helpers shared by the
// built-in converters.
package textutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/custodia-labs/jc/internal/core/domain"
	"github.com/custodia-labs/jc/internal/logger"
)

// RequireText rejects input that is not text at all: invalid UTF-8 or
// containing NUL bytes.
func RequireText(name, data string) error {
	if !utf8.ValidString(data) || strings.ContainsRune(data, 0) {
		return fmt.Errorf("%s: binary data: %w", name, domain.ErrUnparsable)
	}
	return nil
}

// Lines splits data into lines, dropping blank ones and trailing whitespace.
func Lines(data string) []string {
	var out []string
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// SplitN splits line on runs of whitespace into at most n fields; the last
// field keeps the remainder of the line, inner whitespace included.
// n <= 0 means no limit.
func SplitN(line string, n int) []string {
	line = strings.TrimSpace(line)
	if n <= 0 {
		return strings.Fields(line)
	}
	var out []string
	for len(out) < n-1 {
		i := strings.IndexAny(line, " \t")
		if i < 0 {
			break
		}
		out = append(out, line[:i])
		line = strings.TrimLeft(line[i:], " \t")
	}
	if line != "" {
		out = append(out, line)
	}
	return out
}

var nonWord = regexp.MustCompile(`[^a-z0-9_]+`)

// Header normalises one column heading into a record key:
// lowercase, % becomes _percent, other punctuation becomes _.
func Header(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	percent := false
	if strings.HasPrefix(h, "%") {
		h, percent = h[1:], true
	} else if strings.HasSuffix(h, "%") {
		h, percent = h[:len(h)-1], true
	}
	h = strings.Trim(nonWord.ReplaceAllString(h, "_"), "_")
	if percent {
		h += "_percent"
	}
	return h
}

// Headers normalises a heading line into keys.
func Headers(line string) []string {
	fields := strings.Fields(line)
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = Header(f)
	}
	return keys
}

// Table maps each row onto keys. The last key takes the rest of the row.
// Rows with fewer fields leave the missing keys unset.
func Table(keys []string, rows []string) []domain.Record {
	records := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		fields := SplitN(row, len(keys))
		rec := make(domain.Record, len(keys))
		for i, f := range fields {
			rec[keys[i]] = f
		}
		records = append(records, rec)
	}
	return records
}

// column is one heading of a position-aligned table.
type column struct {
	key        string
	start, end int
}

// token is one whitespace-separated field and its byte span in the line.
type token struct {
	text       string
	start, end int
}

func tokens(line string) []token {
	var out []token
	start := -1
	for i := 0; i <= len(line); i++ {
		blank := i == len(line) || line[i] == ' ' || line[i] == '\t'
		switch {
		case !blank && start < 0:
			start = i
		case blank && start >= 0:
			out = append(out, token{text: line[start:i], start: start, end: i})
			start = -1
		}
	}
	return out
}

// ColumnTable maps rows onto the headings of header by column position, for
// tables whose cells may be empty. Each field goes to the heading it overlaps
// most, or the nearest one; the last heading takes the rest of the row.
// Empty cells are left unset.
func ColumnTable(header string, rows []string) []domain.Record {
	var cols []column
	for _, t := range tokens(header) {
		cols = append(cols, column{key: Header(t.text), start: t.start, end: t.end})
	}
	records := make([]domain.Record, 0, len(rows))
	if len(cols) == 0 {
		return records
	}
	last := len(cols) - 1

	for _, row := range rows {
		rec := make(domain.Record, len(cols))
		for _, t := range tokens(row) {
			i := nearestColumn(cols, t)
			if i == last {
				rec[cols[last].key] = strings.TrimSpace(row[t.start:])
				break
			}
			if prev, ok := rec[cols[i].key].(string); ok {
				rec[cols[i].key] = prev + " " + t.text
				continue
			}
			rec[cols[i].key] = t.text
		}
		records = append(records, rec)
	}
	return records
}

func nearestColumn(cols []column, t token) int {
	best, bestScore := 0, -1<<31
	for i, c := range cols {
		overlap := min(c.end, t.end) - max(c.start, t.start)
		score := overlap
		if overlap <= 0 {
			score = -min(abs(t.start-c.end), abs(c.start-t.end))
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Fill sets every key missing from rec to nil.
func Fill(rec domain.Record, keys ...string) {
	for _, k := range keys {
		if _, ok := rec[k]; !ok {
			rec[k] = nil
		}
	}
}

// Int converts s to an int, or nil when s is not an integer.
func Int(s string) any {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return n
}

// Float converts s to a float64, or nil when s is not a number.
func Float(s string) any {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return f
}

// Size converts a plain or human-readable size to a byte count.
// Single-letter suffixes (1.9G, 512M) are read as powers of 1024, as
// printed by df -h and free -h. Returns nil when s is not a size.
func Size(s string) any {
	s = strings.TrimSpace(s)
	if n := Int(s); n != nil {
		return n
	}
	if s == "" {
		return nil
	}
	last := s[len(s)-1]
	if strings.IndexByte("KMGTPEkmgtpe", last) >= 0 {
		s += "i"
	}
	b, err := humanize.ParseBytes(s)
	if err != nil {
		return nil
	}
	return int64(b)
}

// DecimalSize converts a count with an optional decimal suffix (12K, 3M)
// to an integer, as printed by iptables -v. Returns nil otherwise.
func DecimalSize(s string) any {
	s = strings.TrimSpace(s)
	if n := Int(s); n != nil {
		return n
	}
	if s == "" {
		return nil
	}
	b, err := humanize.ParseBytes(s)
	if err != nil {
		return nil
	}
	return int64(b)
}

// Bool converts "1"/"0" and "true"/"false" to a bool, or nil otherwise.
func Bool(s string) any {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return b
}

// SplitHostPort splits an address at its last colon, removing IPv6
// brackets. Without a colon the whole string is the host.
func SplitHostPort(addr string) (host, port string) {
	i := strings.LastIndexByte(addr, ':')
	if i < 0 {
		return addr, ""
	}
	host, port = addr[:i], addr[i+1:]
	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
	return host, port
}

// Nullable returns nil for placeholder values such as "-" and "?".
func Nullable(s string) any {
	switch strings.TrimSpace(s) {
	case "", "-", "?":
		return nil
	}
	return s
}

// Convert applies fn to the string value at key, when present.
func Convert(rec domain.Record, fn func(string) any, keys ...string) {
	for _, k := range keys {
		if s, ok := rec[k].(string); ok {
			rec[k] = fn(s)
		}
	}
}

// Rename moves the value at from to to, when present.
func Rename(rec domain.Record, from, to string) {
	if v, ok := rec[from]; ok {
		delete(rec, from)
		rec[to] = v
	}
}

// Warn emits a converter warning unless the quiet option is set.
func Warn(opts domain.ConvertOptions, format string, args ...any) {
	if opts.Quiet {
		return
	}
	logger.Warn(format, args...)
}

// Unparsable builds the error a converter returns when the text is not in
// its expected format.
func Unparsable(name, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", name, fmt.Sprintf(format, args...), domain.ErrUnparsable)
}
