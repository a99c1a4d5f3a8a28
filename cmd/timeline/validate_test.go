package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heliodyne/sdo-timeline/internal/domain"
	"github.com/heliodyne/sdo-timeline/internal/render"
)

func writeTimeline(t *testing.T, entries []domain.Entry) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, render.WriteCSV(&buf, entries))
	path := filepath.Join(t.TempDir(), "timeline.csv")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func allPassed(phases []*phase) bool {
	for _, p := range phases {
		if !p.passed() {
			return false
		}
	}
	return true
}

func TestValidateTable(t *testing.T) {
	base := time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("valid table passes every phase", func(t *testing.T) {
		path := writeTimeline(t, []domain.Entry{
			{Start: base, Source: "a"},
			{Start: base.Add(time.Hour), End: base.Add(2 * time.Hour), EndKnown: true, Source: "b"},
		})

		phases, err := validateTable(path)
		require.NoError(t, err)
		require.Len(t, phases, 3)
		assert.True(t, allPassed(phases))
	})

	t.Run("out-of-order rows fail the ordering phase", func(t *testing.T) {
		path := writeTimeline(t, []domain.Entry{
			{Start: base.Add(time.Hour), Source: "a"},
			{Start: base, Source: "b"},
		})

		phases, err := validateTable(path)
		require.NoError(t, err)
		assert.False(t, allPassed(phases))
	})

	t.Run("unparseable file fails the parse phase", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "timeline.csv")
		require.NoError(t, os.WriteFile(path, []byte("not,a,timeline\n"), 0o644))

		phases, err := validateTable(path)
		require.NoError(t, err)
		require.Len(t, phases, 1)
		assert.False(t, phases[0].passed())
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := validateTable(filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)
	})
}
