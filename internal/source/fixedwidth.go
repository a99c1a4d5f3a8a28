package source

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/heliodyne/sdo-timeline/internal/domain"
)

// TextSource extracts records from a whitespace-aligned text file whose first
// two columns are the start and end timestamps. The first line of the file is
// taken as the best available description of its contents; any columns after
// the end timestamp are ignored.
type TextSource struct {
	name   string
	url    string
	getter Getter
	// skipRows is the number of leading header rows before data begins.
	skipRows int
	// timestampTokens is how many whitespace-separated fields one timestamp
	// occupies (2 for "06-Apr-10 21:11:55", 1 for "16-152-05:33:05").
	timestampTokens int
}

// NewSpacecraftNight reads the SDO spacecraft night (eclipse window) file.
func NewSpacecraftNight(url string, getter Getter) *TextSource {
	return &TextSource{
		name:            "spacecraft_night",
		url:             url,
		getter:          getter,
		skipRows:        3,
		timestampTokens: 1,
	}
}

func (s *TextSource) Name() string { return s.name }

// Fetch downloads and parses the text file into raw records.
func (s *TextSource) Fetch(ctx context.Context) ([]domain.RawRecord, error) {
	body, err := s.getter.Get(ctx, s.url)
	if err != nil {
		return nil, &FetchError{Source: s.name, URL: s.url, Err: err}
	}
	records, err := parseTextFile(body, s.name, s.url, s.skipRows, s.timestampTokens)
	if err != nil {
		return nil, &FetchError{Source: s.name, URL: s.url, Err: err}
	}
	return records, nil
}

func parseTextFile(body, sourceName, url string, skipRows, timestampTokens int) ([]domain.RawRecord, error) {
	lines := strings.Split(body, "\n")
	if len(lines) <= skipRows {
		return nil, fmt.Errorf("document has %d lines, expected header plus data", len(lines))
	}

	comment := strings.TrimSpace(lines[0])
	instrument := instrumentFromURL(url)

	var records []domain.RawRecord
	for _, line := range lines[skipRows:] {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		start, end := splitTimestamps(fields, timestampTokens)
		records = append(records, domain.RawRecord{
			Start:      start,
			End:        end,
			Source:     sourceName,
			Instrument: instrument,
			Comment:    comment,
		})
	}
	return records, nil
}

// splitTimestamps pulls the start and end timestamps off the front of a data
// row. Some calibration files carry only the end clock time without a date;
// those get the start's calendar day.
func splitTimestamps(fields []string, timestampTokens int) (start, end string) {
	n := timestampTokens
	if len(fields) < n {
		return strings.Join(fields, " "), ""
	}

	start = strings.Join(fields[:n], " ")
	rest := fields[n:]

	if len(rest) >= n {
		candidate := strings.Join(rest[:n], " ")
		if _, _, err := domain.ParseTimestamp(candidate); err == nil {
			return start, candidate
		}
	}

	if len(rest) >= 1 {
		if combined, ok := combineWithStartDate(start, rest[0]); ok {
			return start, combined
		}
	}
	return start, ""
}

// combineWithStartDate joins a bare clock time with the start timestamp's
// calendar day, yielding a full date+time string.
func combineWithStartDate(start, clockToken string) (string, bool) {
	startTime, _, err := domain.ParseTimestamp(start)
	if err != nil {
		return "", false
	}

	for _, layout := range []string{"15:04:05", "15:04"} {
		t, err := time.Parse(layout, clockToken)
		if err != nil {
			continue
		}
		combined := time.Date(
			startTime.Year(), startTime.Month(), startTime.Day(),
			t.Hour(), t.Minute(), t.Second(), 0, time.UTC,
		)
		return combined.Format("2006-01-02 15:04:05"), true
	}
	return "", false
}
