package config

import (
	"time"

	"github.com/dmitrijs2005/lumina/internal/client/client"
)

// MemoryDatabase selects the in-process record store instead of a file.
const MemoryDatabase = ":memory:"

// Config holds runtime settings for the Lumina CLI.
//
// Fields:
//   - DatabasePath: SQLite file holding the local records, or ":memory:".
//   - APIKey: Gemini API key; empty means every insight falls back.
//   - Model: generation model id.
//   - ProviderBaseURL: optional API endpoint override.
//   - SimulatedLatency: artificial delay for signup, login and logout.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	DatabasePath     string
	APIKey           string
	Model            string
	ProviderBaseURL  string
	SimulatedLatency time.Duration
	LogLevel         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "lumina.db"
	c.Model = client.DefaultModel
	c.SimulatedLatency = 0
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones. args excludes the program name.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
