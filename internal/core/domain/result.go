package domain

import (
	"bytes"
	"encoding/json"
)

// Record is one structured record produced by a converter.
type Record map[string]any

// Result is the structured output of a conversion: either a single record
// or an ordered sequence of records. The zero value is an empty sequence.
type Result struct {
	single  Record
	records []Record
	isOne   bool
}

// Single wraps one record.
func Single(r Record) Result {
	if r == nil {
		r = Record{}
	}
	return Result{single: r, isOne: true}
}

// Many wraps an ordered sequence of records.
func Many(records []Record) Result {
	return Result{records: records}
}

// IsSingle reports whether the result holds one record rather than a sequence.
func (r Result) IsSingle() bool {
	return r.isOne
}

// Record returns the single record, or nil for a sequence result.
func (r Result) Record() Record {
	return r.single
}

// Records returns the sequence, or a one-element slice for a single result.
func (r Result) Records() []Record {
	if r.isOne {
		return []Record{r.single}
	}
	return r.records
}

// Len returns the number of records held.
func (r Result) Len() int {
	if r.isOne {
		return 1
	}
	return len(r.records)
}

// MarshalJSON encodes a single result as an object and a sequence as an array.
// An empty sequence encodes as [] rather than null. HTML characters are
// written as-is.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.IsSingle() {
		return marshalNoEscape(r.Record())
	}
	if r.records == nil {
		return []byte("[]"), nil
	}
	return marshalNoEscape(r.Records())
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
