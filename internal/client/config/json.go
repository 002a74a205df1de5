package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pulsefeed/pulsefeed/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Timeouts are
// given in whole seconds; zero values leave the current Config untouched.
type JsonConfig struct {
	BaseAPIURL        string `json:"base_api_url"`
	SessionDBPath     string `json:"session_db_path"`
	PageLimit         int    `json:"page_limit"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flags. If no file is named, nothing happens. Read and parse
// errors panic; config files are developer-provided and a broken one should
// not start the app half-configured.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseAPIURL != "" {
		cfg.BaseAPIURL = jc.BaseAPIURL
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
	if jc.PageLimit > 0 {
		cfg.PageLimit = jc.PageLimit
	}
	if jc.RequestTimeoutSec > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSec) * time.Second
	}
}
