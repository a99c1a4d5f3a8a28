package source

import (
	"github.com/heliodyne/sdo-timeline/internal/config"
	"github.com/heliodyne/sdo-timeline/internal/domain"
)

// NewCatalog builds the full upstream source set from config. The obs_info
// year range runs from the configured first year through the current year.
// Upstream publishes each yearly page during that year, never ahead, so
// asking for a later page would fail the run on a 404.
func NewCatalog(cfg *config.Config, getter Getter) []Source {
	lastYear := domain.Now().Year()
	return []Source{
		NewSpacecraftNight(cfg.SpacecraftNightURL, getter),
		NewObsInfo(cfg.ObsInfoURLPattern, cfg.ObsInfoFirstYear, lastYear, getter),
		NewCalibrations(cfg.CalibrationsURL, getter),
	}
}
