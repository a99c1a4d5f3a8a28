package domain

import "time"

// UnknownEnd is the sentinel rendered when no end time is known for a period.
// It is an explicit, modeled value distinguishing "ongoing/unknown" from a
// parse failure.
const UnknownEnd = "Unknown"

// TimestampFormat is the canonical rendering of entry timestamps in all
// published artifacts.
const TimestampFormat = "2006-01-02T15:04:05"

// RawRecord is an unnormalized row as extracted from an upstream source.
// Start and End are raw timestamp strings of mixed granularity (date-only or
// date+time); an empty End means no end time is known. Instrument and Comment
// are opaque pass-through fields.
type RawRecord struct {
	Start      string
	End        string
	Source     string
	Instrument string
	Comment    string
}

// Entry is one normalized non-nominal period in the published timeline.
type Entry struct {
	Start      time.Time
	End        time.Time
	EndKnown   bool
	Source     string
	Instrument string
	Comment    string
}

// StartLabel renders the start time in the canonical artifact format.
func (e Entry) StartLabel() string {
	return e.Start.Format(TimestampFormat)
}

// EndLabel renders the end time in the canonical artifact format, or the
// Unknown sentinel when no end time is known.
func (e Entry) EndLabel() string {
	if !e.EndKnown {
		return UnknownEnd
	}
	return e.End.Format(TimestampFormat)
}
