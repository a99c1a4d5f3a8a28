package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const calibrationsIndex = `<html><body>
<h1>JSOC instrument calibrations</h1>
<a href="cal/HMI_offpoint.txt">HMI offpoint</a>
<a href="AIA_bakeout.txt">AIA bakeout</a>
<a href="notes.html">notes</a>
<a>no href</a>
</body></html>`

func TestScrapeTxtLinks(t *testing.T) {
	urls, err := scrapeTxtLinks(calibrationsIndex, "http://upstream/public/jsocinst_calibrations.html")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"http://upstream/public/AIA_bakeout.txt",
		"http://upstream/public/cal/HMI_offpoint.txt",
	}, urls)
}

func TestCalibrationsFetch(t *testing.T) {
	const indexURL = "http://upstream/public/jsocinst_calibrations.html"

	t.Run("parses every linked file", func(t *testing.T) {
		getter := &fakeGetter{docs: map[string]string{
			indexURL: calibrationsIndex,
			"http://upstream/public/AIA_bakeout.txt": "AIA bakeout campaign\n" +
				"06-Apr-10 21:11:55   06-Apr-10 22:01:00\n",
			"http://upstream/public/cal/HMI_offpoint.txt": "HMI offpoint campaign\n" +
				"9-Apr-2010 07:30:00   9-Apr-2010 09:00:00\n" +
				"10-Apr-2010 07:30:00   10-Apr-2010 09:00:00\n",
		}}
		src := NewCalibrations(indexURL, getter)

		records, err := src.Fetch(context.Background())
		require.NoError(t, err)
		require.Len(t, records, 3)

		// Files are fetched in sorted URL order.
		assert.Equal(t, "AIA", records[0].Instrument)
		assert.Equal(t, "AIA bakeout campaign", records[0].Comment)
		assert.Equal(t, "HMI", records[1].Instrument)
		assert.Equal(t, "HMI offpoint campaign", records[1].Comment)

		for _, r := range records {
			assert.Equal(t, "jsocinst_calibrations", r.Source)
		}
	})

	t.Run("missing index is a FetchError", func(t *testing.T) {
		getter := &fakeGetter{docs: map[string]string{}}
		_, err := NewCalibrations(indexURL, getter).Fetch(context.Background())

		var ferr *FetchError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, "jsocinst_calibrations", ferr.Source)
	})

	t.Run("missing linked file is a FetchError", func(t *testing.T) {
		getter := &fakeGetter{docs: map[string]string{indexURL: calibrationsIndex}}
		_, err := NewCalibrations(indexURL, getter).Fetch(context.Background())

		var ferr *FetchError
		require.ErrorAs(t, err, &ferr)
		assert.Contains(t, ferr.URL, ".txt")
	})
}
