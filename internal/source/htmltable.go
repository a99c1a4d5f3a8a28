package source

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/heliodyne/sdo-timeline/internal/domain"
)

// ObsInfoSource extracts observation-impacting events from the yearly
// jsocobs_info pages. Each page carries the events of one year in its second
// HTML table: start time, end time, SDO event, AIA description (column 5),
// HMI description (column 8). Date cells omit the year and frequently the
// date too; missing pieces are completed from the page year and the row's
// start time.
type ObsInfoSource struct {
	urlPattern string
	firstYear  int
	lastYear   int
	getter     Getter
}

// NewObsInfo reads the jsocobs_info pages for the years firstYear through
// lastYear inclusive. urlPattern must contain a %d year placeholder.
func NewObsInfo(urlPattern string, firstYear, lastYear int, getter Getter) *ObsInfoSource {
	return &ObsInfoSource{
		urlPattern: urlPattern,
		firstYear:  firstYear,
		lastYear:   lastYear,
		getter:     getter,
	}
}

func (s *ObsInfoSource) Name() string { return "jsocobs_info" }

// Fetch downloads and parses every yearly page in order.
func (s *ObsInfoSource) Fetch(ctx context.Context) ([]domain.RawRecord, error) {
	var records []domain.RawRecord
	for year := s.firstYear; year <= s.lastYear; year++ {
		pageURL := fmt.Sprintf(s.urlPattern, year)
		body, err := s.getter.Get(ctx, pageURL)
		if err != nil {
			return nil, &FetchError{Source: s.Name(), URL: pageURL, Err: err}
		}
		pageRecords, err := parseObsInfoPage(body, year, s.Name())
		if err != nil {
			return nil, &FetchError{Source: s.Name(), URL: pageURL, Err: err}
		}
		records = append(records, pageRecords...)
	}
	return records, nil
}

func parseObsInfoPage(body string, year int, sourceName string) ([]domain.RawRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	tables := doc.Find("table")
	if tables.Length() < 2 {
		return nil, fmt.Errorf("expected at least 2 tables, found %d", tables.Length())
	}

	var records []domain.RawRecord
	tables.Eq(1).Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // header row
		}
		cells := row.Find("td")
		if cells.Length() < 8 {
			return
		}
		cell := func(j int) string {
			return strings.TrimSpace(cells.Eq(j).Text())
		}

		event, aiaDesc, hmiDesc := cell(2), cell(4), cell(7)
		comment := event
		instrument := "SDO"
		if comment == "" {
			comment = aiaDesc
			instrument = "AIA"
		}
		if comment == "" {
			comment = hmiDesc
			instrument = "HMI"
		}
		if comment == "" && cell(0) == "" {
			return // spacer row
		}

		start := formatHTMLDate(cleanDateCell(cell(0)), year, "")
		end := ""
		if len(cell(1)) > 1 {
			end = formatHTMLDate(cleanDateCell(cell(1)), year, start)
		}

		records = append(records, domain.RawRecord{
			Start:      start,
			End:        end,
			Source:     sourceName,
			Instrument: instrument,
			Comment:    comment,
		})
	})
	return records, nil
}

// cleanDateCell strips the noise the obs_info date cells are known to carry:
// stray annotations, instrument names, dotted time separators.
func cleanDateCell(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.ReplaceAll(s, ".", ":")
	for _, junk := range []string{"UT", " TBD", "ongoing", "AIA", "HMI", "- 21:00"} {
		s = strings.ReplaceAll(s, junk, "")
	}
	return strings.TrimSpace(s)
}

// formatHTMLDate completes a cleaned obs_info date cell into a raw timestamp
// string, preserving granularity: date-only cells stay date-only so the
// normalizer's midnight rule applies. year supplies the page year for cells
// without one; baseRaw supplies the calendar day for end cells that carry
// only a clock time. Cells that fit no known shape are returned unchanged and
// left for the normalizer to reject.
func formatHTMLDate(clean string, year int, baseRaw string) string {
	if clean == "" {
		return ""
	}

	// Cells listing multiple times keep only the first.
	if fields := strings.Fields(clean); len(fields) > 2 {
		clean = strings.Join(fields[:2], " ")
	}

	// Full month/day/year with time.
	for _, layout := range []string{"1/2/2006 15:04:05", "1/2/2006 15:04"} {
		if t, err := time.Parse(layout, clean); err == nil {
			return t.Format("2006-01-02 15:04:05")
		}
	}

	// Month/day with time, year from the page.
	withYear := fmt.Sprintf("%s %d", clean, year)
	for _, layout := range []string{"1/2 15:04:05 2006", "1/2 15:04 2006"} {
		if t, err := time.Parse(layout, withYear); err == nil {
			return t.Format("2006-01-02 15:04:05")
		}
	}

	// Month/day only: keep date-only granularity.
	if t, err := time.Parse("1/2 2006", withYear); err == nil {
		return t.Format("2006-01-02")
	}

	// Clock time only: take the calendar day from the row's start.
	if baseTime, _, err := domain.ParseTimestamp(baseRaw); err == nil {
		for _, layout := range []string{"15:04:05", "15:04"} {
			if t, err := time.Parse(layout, clean); err == nil {
				combined := time.Date(
					baseTime.Year(), baseTime.Month(), baseTime.Day(),
					t.Hour(), t.Minute(), t.Second(), 0, time.UTC,
				)
				return combined.Format("2006-01-02 15:04:05")
			}
		}
	}

	return clean
}
