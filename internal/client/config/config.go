// Package config loads runtime settings for the feed client.
package config

import "time"

// Config holds runtime settings for the feed client.
//
// Fields:
//   - BaseAPIURL: root of the REST resource store.
//   - SessionDBPath: sqlite file holding the persisted session snapshot.
//   - PageLimit: feed page size.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	BaseAPIURL     string
	SessionDBPath  string
	PageLimit      int
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseAPIURL = "http://127.0.0.1:3000"
	c.SessionDBPath = "session.db"
	c.PageLimit = 10
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
