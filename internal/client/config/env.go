package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "LUMINA"

// envConfig mirrors Config for envconfig. Each variable is read as
// LUMINA_<NAME> first and as the bare <NAME> second, so a plain API_KEY
// works as well.
type envConfig struct {
	DatabasePath     string        `envconfig:"DATABASE_PATH"`
	APIKey           string        `envconfig:"API_KEY"`
	Model            string        `envconfig:"MODEL"`
	ProviderBaseURL  string        `envconfig:"PROVIDER_BASE_URL"`
	SimulatedLatency time.Duration `envconfig:"SIMULATED_LATENCY"`
	LogLevel         string        `envconfig:"LOG_LEVEL"`
}

// parseEnv overlays cfg with environment variables. Unset variables keep
// the current value. It panics on malformed values, like the other loaders.
func parseEnv(cfg *Config) {
	ec := envConfig{
		DatabasePath:     cfg.DatabasePath,
		APIKey:           cfg.APIKey,
		Model:            cfg.Model,
		ProviderBaseURL:  cfg.ProviderBaseURL,
		SimulatedLatency: cfg.SimulatedLatency,
		LogLevel:         cfg.LogLevel,
	}

	if err := envconfig.Process(envPrefix, &ec); err != nil {
		panic(err)
	}

	cfg.DatabasePath = ec.DatabasePath
	cfg.APIKey = ec.APIKey
	cfg.Model = ec.Model
	cfg.ProviderBaseURL = ec.ProviderBaseURL
	cfg.SimulatedLatency = ec.SimulatedLatency
	cfg.LogLevel = ec.LogLevel
}
