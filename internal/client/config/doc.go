// Package config loads runtime configuration for the Lumina CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables LUMINA_<NAME>, falling back to <NAME>.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   database path (":memory:" keeps records in process)
//	-m string   generation model id
//	-l int      simulated latency (milliseconds)
//	-v string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like
// "800ms" or integer nanoseconds:
//
//	{
//	  "database_path": "lumina.db",
//	  "api_key": "…",
//	  "model": "gemini-2.5-flash",
//	  "provider_base_url": "",
//	  "simulated_latency": "800ms",
//	  "log_level": "info"
//	}
package config
