package domain

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError reports a record that violates the input contract.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid record: %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid record: %s %q %s", e.Field, e.Value, e.Reason)
}

// timestampLayouts lists every timestamp shape the upstream datasets are known
// to emit, most common first. Layouts marked dateOnly carry no clock and parse
// to midnight of that calendar day.
var timestampLayouts = []struct {
	layout   string
	dateOnly bool
}{
	{"2006-01-02T15:04:05", false},
	{"2006-01-02 15:04:05", false},
	{"2006-01-02", true},
	{"02-Jan-06 15:04:05", false}, // 06-Apr-10 21:11:55
	{"2-Jan-2006 15:04:05", false}, // 9-Apr-2010 07:30:00
	{"06-002-15:04:05", false},    // YY-DOY-HH:MM:SS spacecraft night format
	{"2006.01.02_15:04:05", false}, // 2010.11.10_06:01:20
	{"2006.01.02", true},
}

// ParseTimestamp parses a raw timestamp string against the known layouts.
// dateOnly reports whether the matched layout carried no time component, in
// which case the returned time is midnight UTC of that day.
func ParseTimestamp(value string) (t time.Time, dateOnly bool, err error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false, fmt.Errorf("empty timestamp")
	}
	for _, l := range timestampLayouts {
		t, err := time.ParseInLocation(l.layout, value, time.UTC)
		if err == nil {
			return t, l.dateOnly, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("unrecognized timestamp %q", value)
}

// Normalize applies the two fill-in rules to a raw record:
//
//   - a date-only start or end expands to midnight (00:00:00 UTC) of that day,
//     while date+time values pass through unchanged;
//   - a missing end becomes the Unknown sentinel.
//
// A missing end is a modeled, expected case and never an error. An absent or
// unparseable start violates the input contract and returns a
// *ValidationError, as does an end that is present but unparseable: beyond the
// two rules above, no value is silently corrected.
func Normalize(raw RawRecord) (Entry, error) {
	if strings.TrimSpace(raw.Start) == "" {
		return Entry{}, &ValidationError{Field: "start", Reason: "is required"}
	}

	start, _, err := ParseTimestamp(raw.Start)
	if err != nil {
		return Entry{}, &ValidationError{Field: "start", Value: raw.Start, Reason: "is unparseable"}
	}

	entry := Entry{
		Start:      start,
		Source:     raw.Source,
		Instrument: raw.Instrument,
		Comment:    raw.Comment,
	}

	if strings.TrimSpace(raw.End) == "" {
		return entry, nil
	}

	end, _, err := ParseTimestamp(raw.End)
	if err != nil {
		return Entry{}, &ValidationError{Field: "end", Value: raw.End, Reason: "is unparseable"}
	}
	entry.End = end
	entry.EndKnown = true
	return entry, nil
}
