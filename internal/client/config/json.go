package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/lumina/internal/flagx"
	"github.com/dmitrijs2005/lumina/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "empty" so a partial file only
// overrides what it names.
type JsonConfig struct {
	DatabasePath     *string         `json:"database_path"`
	APIKey           *string         `json:"api_key"`
	Model            *string         `json:"model"`
	ProviderBaseURL  *string         `json:"provider_base_url"`
	SimulatedLatency *timex.Duration `json:"simulated_latency"`
	LogLevel         *string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c or -config in args.
// It does nothing when neither flag is present and panics on read or
// unmarshal errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.APIKey, jc.APIKey)
	setString(&cfg.Model, jc.Model)
	setString(&cfg.ProviderBaseURL, jc.ProviderBaseURL)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.SimulatedLatency != nil {
		cfg.SimulatedLatency = jc.SimulatedLatency.Duration
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
