// Package config defines the configuration structure for the taskpool daemon.
//
// Configuration is organized into logical sections (Server, Pool, Store) and
// uses code generation via optgen to create functional option helpers.
//
// # Configuration Structure
//
//	Configuration
//	├── Server         - HTTP server settings
//	├── Pool           - Worker pool sizing
//	├── Store          - Run-history storage
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Server Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field            │ Default │ Description                            │
//	├──────────────────┼─────────┼────────────────────────────────────────┤
//	│ Mode             │ "dev"   │ Server mode: "prod" or "dev"           │
//	│ HTTPPort         │ 8000    │ HTTP server listen port                │
//	└──────────────────┴─────────┴────────────────────────────────────────┘
//
// # Pool Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field            │ Default │ Description                            │
//	├──────────────────┼─────────┼────────────────────────────────────────┤
//	│ NumWorkers       │ 4       │ Number of worker goroutines            │
//	│ QueueSize        │ 64      │ Task queue capacity (backpressure)     │
//	└──────────────────┴─────────┴────────────────────────────────────────┘
//
// # Store Configuration
//
//	┌──────────┬─────────┬──────────────────────────────────────────────┐
//	│ Field    │ Default │ Description                                  │
//	├──────────┼─────────┼──────────────────────────────────────────────┤
//	│ DataFile │ ""      │ DuckDB file path; empty keeps data in memory │
//	└──────────┴─────────┴──────────────────────────────────────────────┘
//
// # Code Generation
//
// The package uses optgen to generate functional option helpers:
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Pool Store
//
// Generated helpers include:
//
//   - NewConfigurationWithOptions(...ConfigurationOption) - Create with options
//   - NewConfigurationWithOptionsAndDefaults(...ConfigurationOption) - Create with defaults + options
//   - WithServer(Server), WithPool(Pool), etc. - Set nested structs
//   - DebugMap() - Returns map for debug logging (respects debugmap tags)
//
// # Loading
//
// Load layers three sources in increasing precedence: struct defaults
// (creasty/defaults tags), an optional config file, and TASKPOOL_*
// environment variables, all through Viper.
//
// # Debug Logging
//
// All fields are tagged with `debugmap:"visible"` allowing safe logging
// of configuration values via DebugMap():
//
//	log.Infow("configuration loaded", "config", cfg.DebugMap())
package config
