// Package source extracts raw timeline records from the upstream LMSAL/JSOC
// datasets. Each source returns records with raw timestamp strings; all
// normalization happens downstream in the domain package.
package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/heliodyne/sdo-timeline/internal/domain"
)

// Getter fetches a document body by URL.
type Getter interface {
	Get(ctx context.Context, url string) (string, error)
}

// Source is one upstream dataset contributing timeline records.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.RawRecord, error)
}

// FetchError reports an upstream source that was unreachable or returned a
// document the extractor could not make sense of. It is surfaced to the
// caller; the core never retries.
type FetchError struct {
	Source string
	URL    string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s (%s): %v", e.Source, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// instrumentFromURL attributes a dataset file to an instrument by its URL,
// defaulting to the spacecraft itself.
func instrumentFromURL(url string) string {
	switch {
	case strings.Contains(url, "AIA"):
		return "AIA"
	case strings.Contains(url, "HMI"):
		return "HMI"
	default:
		return "SDO"
	}
}
