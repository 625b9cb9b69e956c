// Package fields provides BAI2 field splitting and value normalization.
//
// BAI2 fields are comma-delimited with no quoting or escaping, and records
// are terminated with a "/" marker that may appear anywhere in the last
// field. Every helper here strips that marker as part of normalization.
package fields

import (
	"strconv"
	"strings"
	"time"
)

// EndOfDay is the sentinel returned by Time for the literal times 2400 and
// 9999, which BAI2 defines as "end of day".
const EndOfDay = "end of day"

// Split splits a physical line into its comma-delimited fields.
// BAI2 has no quoting, so a strict split is correct by construction.
func Split(line string) []string {
	return strings.Split(line, ",")
}

// Get returns the field at index i, or the empty string when the index is
// out of range. Variable-length record decoding probes past the end of the
// field list constantly, so missing fields read as empty rather than
// panicking.
func Get(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}

// Clean trims surrounding whitespace and removes the record-terminator
// character wherever it occurs, not only at the edges.
func Clean(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "/", "")
}

// Currency cleans a currency code field, falling back to def when the field
// is empty after normalization.
func Currency(s, def string) string {
	if c := Clean(s); c != "" {
		return c
	}
	return def
}

// Date parses a yymmdd field. Returns nil when the field does not contain a
// valid date.
func Date(s string) *time.Time {
	d, err := time.Parse("060102", Clean(s))
	if err != nil {
		return nil
	}
	return &d
}

// Time parses an HHMM field into a display string. The literal values 2400
// and 9999 both mean end of day; an empty field means no time was reported.
// Returns nil for empty or unparseable values.
func Time(s string) *string {
	cleaned := Clean(s)
	switch cleaned {
	case "":
		return nil
	case "2400", "9999":
		v := EndOfDay
		return &v
	}
	t, err := time.Parse("1504", cleaned)
	if err != nil {
		return nil
	}
	v := t.Format("15:04:05")
	return &v
}

// Integer is the constraint for Int.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Int parses an integer field. Normalization strips the terminator and any
// leading zeros before parsing, so "0005/" reads as 5. A field that fails to
// parse after normalization is absent, not an error; note that this makes a
// bare "0" read as absent, which matches how control totals of zero are
// reported in practice.
func Int[T Integer](s string) *T {
	cleaned := strings.TrimLeft(Clean(s), "0")
	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return nil
	}
	v := T(n)
	return &v
}
