package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/heliodyne/sdo-timeline/internal/domain"
)

// header is the column order of the published tables.
var header = []string{"start", "end", "source", "instrument", "comment"}

// WriteCSV serializes the timeline as comma-separated values.
func WriteCSV(w io.Writer, entries []domain.Entry) error {
	return writeTable(w, entries, ',', "timeline.csv")
}

// WriteTSV serializes the timeline as tab-separated values.
func WriteTSV(w io.Writer, entries []domain.Entry) error {
	return writeTable(w, entries, '\t', "timeline.txt")
}

func writeTable(w io.Writer, entries []domain.Entry, comma rune, artifact string) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma

	if err := cw.Write(header); err != nil {
		return &RenderError{Artifact: artifact, Err: err}
	}
	for _, e := range entries {
		row := []string{e.StartLabel(), e.EndLabel(), e.Source, e.Instrument, e.Comment}
		if err := cw.Write(row); err != nil {
			return &RenderError{Artifact: artifact, Err: err}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return &RenderError{Artifact: artifact, Err: err}
	}
	return nil
}

// ReadCSV parses a published CSV table back into entries. It is the inverse
// of WriteCSV and is lossless for start, end, and source.
func ReadCSV(r io.Reader) ([]domain.Entry, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("table has no header row")
	}
	if len(rows[0]) != len(header) || rows[0][0] != header[0] {
		return nil, fmt.Errorf("unexpected header %v", rows[0])
	}

	entries := make([]domain.Entry, 0, len(rows)-1)
	for i, row := range rows[1:] {
		start, err := time.ParseInLocation(domain.TimestampFormat, row[0], time.UTC)
		if err != nil {
			return nil, fmt.Errorf("row %d: parse start: %w", i+2, err)
		}

		entry := domain.Entry{
			Start:      start,
			Source:     row[2],
			Instrument: row[3],
			Comment:    row[4],
		}
		if row[1] != domain.UnknownEnd {
			end, err := time.ParseInLocation(domain.TimestampFormat, row[1], time.UTC)
			if err != nil {
				return nil, fmt.Errorf("row %d: parse end: %w", i+2, err)
			}
			entry.End = end
			entry.EndKnown = true
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
