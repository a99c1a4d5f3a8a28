package source

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/heliodyne/sdo-timeline/internal/domain"
)

// CalibrationsSource extracts calibration windows from the jsocinst index
// page. The page links one text file per calibration campaign; every linked
// .txt file shares the same structure (one header row, dd-Mon-yy timestamps,
// first line describing the campaign).
type CalibrationsSource struct {
	indexURL string
	getter   Getter
}

// NewCalibrations reads the calibration campaign index page.
func NewCalibrations(indexURL string, getter Getter) *CalibrationsSource {
	return &CalibrationsSource{indexURL: indexURL, getter: getter}
}

func (s *CalibrationsSource) Name() string { return "jsocinst_calibrations" }

// Fetch scrapes the index for .txt links and parses every linked file.
func (s *CalibrationsSource) Fetch(ctx context.Context) ([]domain.RawRecord, error) {
	body, err := s.getter.Get(ctx, s.indexURL)
	if err != nil {
		return nil, &FetchError{Source: s.Name(), URL: s.indexURL, Err: err}
	}

	urls, err := scrapeTxtLinks(body, s.indexURL)
	if err != nil {
		return nil, &FetchError{Source: s.Name(), URL: s.indexURL, Err: err}
	}

	var records []domain.RawRecord
	for _, fileURL := range urls {
		fileBody, err := s.getter.Get(ctx, fileURL)
		if err != nil {
			return nil, &FetchError{Source: s.Name(), URL: fileURL, Err: err}
		}
		fileRecords, err := parseTextFile(fileBody, s.Name(), fileURL, 1, 2)
		if err != nil {
			return nil, &FetchError{Source: s.Name(), URL: fileURL, Err: err}
		}
		records = append(records, fileRecords...)
	}
	return records, nil
}

// scrapeTxtLinks collects every .txt link on the page, resolved against the
// page URL, sorted for a stable fetch order.
func scrapeTxtLinks(body, pageURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse index page: %w", err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse index url: %w", err)
	}

	var urls []string
	doc.Find("a").Each(func(_ int, link *goquery.Selection) {
		href, ok := link.Attr("href")
		if !ok || !strings.Contains(href, ".txt") {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		urls = append(urls, base.ResolveReference(ref).String())
	})

	sort.Strings(urls)
	return urls, nil
}
