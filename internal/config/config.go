package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all job settings, populated from defaults, an optional config
// file, and TIMELINE_-prefixed environment variables.
type Config struct {
	OutputDir       string
	SiteTitle       string
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	FetchTimeout     time.Duration
	FetchRetryMax    int
	FetchConcurrency int

	SpacecraftNightURL string
	ObsInfoURLPattern  string
	CalibrationsURL    string
	// ObsInfoFirstYear is the first year with a jsocobs_info page. Pages are
	// fetched from this year through the current year plus one.
	ObsInfoFirstYear int
}

// Load reads configuration, applying defaults where unset. cfgFile may be
// empty; when set it names a config file that must exist and parse.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("output_dir", "site")
	v.SetDefault("site_title", "SDO Non-Nominal Timeline")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("shutdown_timeout", "10s")
	v.SetDefault("fetch_timeout", "30s")
	v.SetDefault("fetch_retry_max", 3)
	v.SetDefault("fetch_concurrency", 4)
	v.SetDefault("spacecraft_night_url", "https://aia.lmsal.com/public/sdo_spacecraft_night.txt")
	v.SetDefault("obs_info_url_pattern", "https://aia.lmsal.com/public/jsocobs_info%d.html")
	v.SetDefault("calibrations_url", "https://aia.lmsal.com/public/jsocinst_calibrations.html")
	v.SetDefault("obs_info_first_year", 2010)

	v.SetEnvPrefix("TIMELINE")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	shutdownTimeout, err := parseDuration(v, "shutdown_timeout")
	if err != nil {
		return nil, err
	}
	fetchTimeout, err := parseDuration(v, "fetch_timeout")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		OutputDir:       v.GetString("output_dir"),
		SiteTitle:       v.GetString("site_title"),
		HTTPAddr:        v.GetString("http_addr"),
		LogLevel:        v.GetString("log_level"),
		LogFormat:       v.GetString("log_format"),
		ShutdownTimeout: shutdownTimeout,

		FetchTimeout:     fetchTimeout,
		FetchRetryMax:    v.GetInt("fetch_retry_max"),
		FetchConcurrency: v.GetInt("fetch_concurrency"),

		SpacecraftNightURL: v.GetString("spacecraft_night_url"),
		ObsInfoURLPattern:  v.GetString("obs_info_url_pattern"),
		CalibrationsURL:    v.GetString("calibrations_url"),
		ObsInfoFirstYear:   v.GetInt("obs_info_first_year"),
	}

	if cfg.OutputDir == "" {
		return nil, errors.New("TIMELINE_OUTPUT_DIR is required")
	}
	if cfg.FetchRetryMax < 0 {
		return nil, errors.New("TIMELINE_FETCH_RETRY_MAX must be >= 0")
	}
	if cfg.FetchConcurrency < 1 || cfg.FetchConcurrency > 32 {
		return nil, errors.New("TIMELINE_FETCH_CONCURRENCY must be between 1 and 32")
	}
	if !strings.Contains(cfg.ObsInfoURLPattern, "%d") {
		return nil, errors.New("TIMELINE_OBS_INFO_URL_PATTERN must contain a %d year placeholder")
	}
	if cfg.ObsInfoFirstYear < 2010 {
		return nil, errors.New("TIMELINE_OBS_INFO_FIRST_YEAR must be 2010 or later")
	}

	return cfg, nil
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid TIMELINE_%s", strings.ToUpper(key))
	}
	return d, nil
}
