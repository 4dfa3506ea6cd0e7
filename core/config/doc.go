// Package config provides configuration management for numcompare.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file, with defaults declared on the config structs
// themselves.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided
// into subsections:
//   - Input: record format applied to both inputs
//   - Tolerance: comparison mode and epsilons
//   - Report: findings cap and diff switch
//   - Log: logging level and format
//
// Environment variables map to nested keys by underscore, e.g.
// TOLERANCE_MODE sets tolerance.mode and REPORT_MAX_FINDINGS sets
// report.max_findings. Command-line flags override both.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    // invalid mode, epsilon or format combination
//	}
package config
