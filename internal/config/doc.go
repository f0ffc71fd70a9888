// Package config loads runtime configuration for the campusfind CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the sqlite database file
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
//	{
//	  "database_dsn": "campusfind.db",
//	  "log_level": "info"
//	}
//
// Primary API
//
//   - type Config                     — holds DatabaseDSN and LogLevel
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
