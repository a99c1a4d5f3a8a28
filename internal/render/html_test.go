package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heliodyne/sdo-timeline/internal/domain"
)

func TestWriteHTML(t *testing.T) {
	generatedAt := time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("renders rows and metadata", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteHTML(&buf, "SDO Non-Nominal Timeline", generatedAt, sampleEntries()))
		page := buf.String()

		assert.Contains(t, page, "<title>SDO Non-Nominal Timeline</title>")
		assert.Contains(t, page, "2 periods")
		assert.Contains(t, page, "Generated 2020-06-01T12:00:00 UTC")
		assert.Contains(t, page, "<td>2020-05-01T00:00:00</td><td>Unknown</td>")
		assert.Contains(t, page, "<td>CCD Bakeout</td>")
		assert.Contains(t, page, `href="timeline.csv"`)
	})

	t.Run("escapes markup in pass-through fields", func(t *testing.T) {
		entries := []domain.Entry{{
			Start:   time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC),
			Source:  "x",
			Comment: "<script>alert(1)</script>",
		}}

		var buf bytes.Buffer
		require.NoError(t, WriteHTML(&buf, "t", generatedAt, entries))

		assert.NotContains(t, buf.String(), "<script>")
	})

	t.Run("identical input yields identical bytes", func(t *testing.T) {
		var a, b bytes.Buffer
		require.NoError(t, WriteHTML(&a, "t", generatedAt, sampleEntries()))
		require.NoError(t, WriteHTML(&b, "t", generatedAt, sampleEntries()))
		assert.Equal(t, a.Bytes(), b.Bytes())
	})
}
