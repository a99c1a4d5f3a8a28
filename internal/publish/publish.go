// Package publish places rendered artifacts into the static site directory.
// The push to the hosting branch itself is an external collaborator; this
// package only guarantees the directory is never left partially updated.
package publish

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/heliodyne/sdo-timeline/internal/render"
)

// Artifact filenames within the site directory.
const (
	CSVFile  = "timeline.csv"
	TSVFile  = "timeline.txt"
	HTMLFile = "index.html"
)

// Publisher writes artifacts into a site directory, staging each as a temp
// file and renaming into place only after all artifacts staged successfully.
type Publisher struct {
	dir    string
	logger *slog.Logger
}

// New creates a Publisher targeting dir, which is created if absent.
func New(dir string, logger *slog.Logger) *Publisher {
	return &Publisher{dir: dir, logger: logger}
}

// Publish writes all artifacts or none. Failures are RenderErrors, fatal to
// the run.
func (p *Publisher) Publish(artifacts map[string][]byte) error {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return &render.RenderError{Artifact: p.dir, Err: err}
	}

	names := make([]string, 0, len(artifacts))
	for name := range artifacts {
		names = append(names, name)
	}
	sort.Strings(names)

	staged := make(map[string]string, len(artifacts))
	cleanup := func() {
		for _, tmp := range staged {
			os.Remove(tmp)
		}
	}

	for _, name := range names {
		tmp, err := stage(p.dir, name, artifacts[name])
		if err != nil {
			cleanup()
			return &render.RenderError{Artifact: name, Err: err}
		}
		staged[name] = tmp
	}

	for _, name := range names {
		if err := os.Rename(staged[name], filepath.Join(p.dir, name)); err != nil {
			cleanup()
			return &render.RenderError{Artifact: name, Err: err}
		}
		p.logger.Debug("published artifact", "name", name, "bytes", len(artifacts[name]))
	}
	return nil
}

func stage(dir, name string, data []byte) (string, error) {
	f, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("stage %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("stage %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("stage %s: %w", name, err)
	}
	return f.Name(), nil
}
