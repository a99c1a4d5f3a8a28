// Package pipeline orchestrates one fetch-normalize-aggregate-render-publish
// run. The job is batch and run-to-completion: a run either publishes all
// artifacts or fails outright.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heliodyne/sdo-timeline/internal/domain"
	"github.com/heliodyne/sdo-timeline/internal/observability"
	"github.com/heliodyne/sdo-timeline/internal/publish"
	"github.com/heliodyne/sdo-timeline/internal/render"
	"github.com/heliodyne/sdo-timeline/internal/source"
)

// Publisher places rendered artifacts into the site directory.
type Publisher interface {
	Publish(artifacts map[string][]byte) error
}

// Pipeline runs the aggregation job over a fixed source catalog.
type Pipeline struct {
	sources     []source.Source
	publisher   Publisher
	siteTitle   string
	concurrency int
	logger      *slog.Logger
	metrics     *observability.Metrics
	ready       atomic.Bool
}

// New creates a Pipeline with the given sources and publisher. concurrency
// bounds how many sources are fetched in parallel; ordering never depends on
// it because aggregation sorts explicitly.
func New(sources []source.Source, publisher Publisher, siteTitle string, concurrency int, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Pipeline{
		sources:     sources,
		publisher:   publisher,
		siteTitle:   siteTitle,
		concurrency: concurrency,
		logger:      logger,
		metrics:     metrics,
	}
}

// CheckReadiness returns nil once a timeline has been published, or an error
// describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("no timeline has been published yet")
	}
	return nil
}

// Run executes one complete run. Fetch and render failures abort the run;
// individual records violating the input contract are dropped with a warning.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()
	p.logger.Info("run started", "sources", len(p.sources))

	table, err := p.buildTable(ctx)
	if err == nil {
		err = p.renderAndPublish(table)
	}

	p.metrics.RunDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		p.metrics.Runs.WithLabelValues("error").Inc()
		return err
	}

	p.metrics.Runs.WithLabelValues("success").Inc()
	p.metrics.EntriesPublished.Set(float64(len(table)))
	p.metrics.LastSuccess.SetToCurrentTime()
	p.ready.Store(true)
	p.logger.Info("run complete", "entries", len(table), "duration", time.Since(start))
	return nil
}

// buildTable fetches every source and produces the normalized, ordered table.
func (p *Pipeline) buildTable(ctx context.Context) ([]domain.Entry, error) {
	raw, err := p.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	batches := make([][]domain.Entry, len(raw))
	for i, batch := range raw {
		batches[i] = p.normalizeBatch(batch)
	}
	return domain.Aggregate(batches...), nil
}

// fetchAll pulls every source, up to concurrency at a time. Results keep the
// catalog's index so tie-breaking by ingestion order stays deterministic
// regardless of which fetch finishes first.
func (p *Pipeline) fetchAll(ctx context.Context) ([][]domain.RawRecord, error) {
	results := make([][]domain.RawRecord, len(p.sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i, src := range p.sources {
		i, src := i, src
		g.Go(func() error {
			records, err := src.Fetch(ctx)
			if err != nil {
				p.metrics.FetchErrors.WithLabelValues(src.Name()).Inc()
				return err
			}
			p.metrics.RecordsFetched.WithLabelValues(src.Name()).Add(float64(len(records)))
			p.logger.Info("source fetched", "source", src.Name(), "records", len(records))
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// normalizeBatch applies the normalization rules, dropping records that
// violate the input contract with a warning.
func (p *Pipeline) normalizeBatch(batch []domain.RawRecord) []domain.Entry {
	entries := make([]domain.Entry, 0, len(batch))
	for _, raw := range batch {
		entry, err := domain.Normalize(raw)
		if err != nil {
			p.logger.Warn("record rejected", "error", err, "source", raw.Source)
			p.metrics.RecordsRejected.Inc()
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// renderAndPublish serializes the table into every artifact and publishes
// them together.
func (p *Pipeline) renderAndPublish(table []domain.Entry) error {
	var csvBuf, tsvBuf, htmlBuf bytes.Buffer
	if err := render.WriteCSV(&csvBuf, table); err != nil {
		return err
	}
	if err := render.WriteTSV(&tsvBuf, table); err != nil {
		return err
	}
	if err := render.WriteHTML(&htmlBuf, p.siteTitle, domain.Now(), table); err != nil {
		return err
	}

	return p.publisher.Publish(map[string][]byte{
		publish.CSVFile:  csvBuf.Bytes(),
		publish.TSVFile:  tsvBuf.Bytes(),
		publish.HTMLFile: htmlBuf.Bytes(),
	})
}
