package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/lumina/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   database path, or ":memory:"
//	-m string   generation model id
//	-l int      simulated latency in milliseconds
//	-v string   log level
//
// args is filtered with flagx.FilterArgs first, so flags owned by other
// loaders (-c) do not interfere. Parse errors panic.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-d", "-m", "-l", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "database path")
	fs.StringVar(&cfg.Model, "m", cfg.Model, "generation model id")
	latency := fs.Int("l", int(cfg.SimulatedLatency.Milliseconds()), "simulated latency (in milliseconds)")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SimulatedLatency = time.Duration(*latency) * time.Millisecond
}
