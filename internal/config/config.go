// Package config carries the source endpoints and fetch tuning for the
// library builder.
//
// The built-in defaults target the public sites; an optional YAML file
// overlays them, which keeps scheduled runs reproducible and lets tests
// point the pipeline at local servers.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default endpoints for the two content sources.
const (
	DefaultNewsURL     = "https://pokemongolive.com/news/"
	DefaultFeedURL     = "https://pokemongolive.com/news/?format=rss"
	DefaultEventsURL   = "https://leekduck.com/events/"
	DefaultCalendarURL = "https://leekduck.com/calendar/"
)

// Default fetch tuning.
const (
	DefaultUserAgent   = "Mozilla/5.0 (POGO-Library-Builder)"
	DefaultTimeoutSecs = 25
	DefaultDelayMillis = 800
	DefaultMaxPages    = 10
)

// Sources holds the endpoints discovery runs against.
type Sources struct {
	NewsURL     string `yaml:"news_url"`
	FeedURL     string `yaml:"feed_url"`
	EventsURL   string `yaml:"events_url"`
	CalendarURL string `yaml:"calendar_url"`
}

// Fetch holds the HTTP client tuning.
type Fetch struct {
	UserAgent   string `yaml:"user_agent"`
	TimeoutSecs int    `yaml:"timeout_seconds"`
	DelayMillis int    `yaml:"delay_milliseconds"`
	MaxPages    int    `yaml:"max_pages"`
}

// Timeout returns the per-request timeout as a duration.
func (f Fetch) Timeout() time.Duration {
	return time.Duration(f.TimeoutSecs) * time.Second
}

// Delay returns the politeness delay between requests as a duration.
func (f Fetch) Delay() time.Duration {
	return time.Duration(f.DelayMillis) * time.Millisecond
}

// Config is the full runtime configuration.
type Config struct {
	Sources Sources `yaml:"sources"`
	Fetch   Fetch   `yaml:"fetch"`
}

// Default returns the built-in configuration matching the public sites.
func Default() Config {
	return Config{
		Sources: Sources{
			NewsURL:     DefaultNewsURL,
			FeedURL:     DefaultFeedURL,
			EventsURL:   DefaultEventsURL,
			CalendarURL: DefaultCalendarURL,
		},
		Fetch: Fetch{
			UserAgent:   DefaultUserAgent,
			TimeoutSecs: DefaultTimeoutSecs,
			DelayMillis: DefaultDelayMillis,
			MaxPages:    DefaultMaxPages,
		},
	}
}

// Load reads path and overlays it on the defaults; keys absent from the
// file keep their default values. An empty path returns the defaults
// unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
