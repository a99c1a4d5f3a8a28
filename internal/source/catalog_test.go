package source

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heliodyne/sdo-timeline/internal/config"
	"github.com/heliodyne/sdo-timeline/internal/domain"
)

func TestNewCatalog(t *testing.T) {
	domain.SetClock(clockwork.NewFakeClockAt(time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)))
	defer domain.SetClock(nil)

	cfg, err := config.Load("")
	require.NoError(t, err)

	sources := NewCatalog(cfg, &fakeGetter{})
	require.Len(t, sources, 3)

	assert.Equal(t, "spacecraft_night", sources[0].Name())
	assert.Equal(t, "jsocobs_info", sources[1].Name())
	assert.Equal(t, "jsocinst_calibrations", sources[2].Name())

	obs, ok := sources[1].(*ObsInfoSource)
	require.True(t, ok)
	assert.Equal(t, 2010, obs.firstYear)
	assert.Equal(t, 2020, obs.lastYear)
}

// Upstream only carries yearly pages through the current year. A catalog that
// asked for next year's page would turn the missing page into a fatal fetch
// error and throw away every record that parsed fine.
func TestCatalogObsInfoStopsAtCurrentYear(t *testing.T) {
	domain.SetClock(clockwork.NewFakeClockAt(time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)))
	defer domain.SetClock(nil)

	cfg, err := config.Load("")
	require.NoError(t, err)

	getter := &fakeGetter{docs: map[string]string{}}
	for year := 2010; year <= 2026; year++ {
		getter.docs[fmt.Sprintf(cfg.ObsInfoURLPattern, year)] = obsInfoPage
	}

	sources := NewCatalog(cfg, getter)
	obs, ok := sources[1].(*ObsInfoSource)
	require.True(t, ok)

	records, err := obs.Fetch(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, records)

	require.NotEmpty(t, getter.calls)
	assert.Equal(t, fmt.Sprintf(cfg.ObsInfoURLPattern, 2026), getter.calls[len(getter.calls)-1])
	assert.Len(t, getter.calls, 17)
}
