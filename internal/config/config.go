// Package config provides functionality for managing configuration options
// for the application using a JSON config file and environment variables.
// Command-line flags stay with cobra; this package only supplies defaults.
package config

import (
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Options holds the configuration values for the application.
type Options struct {
	// VaultPath is the location of the encrypted vault file.
	VaultPath string

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string

	// Config is the path to the Config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{
	VaultPath: "gadgets.vault",
	LogLevel:  "info",
	Config:    "config.json",
}

// Parse resolves the configuration from defaults, an optional JSON config
// file, and environment variables, in that order of precedence. It returns
// a pointer to the Options struct containing the resolved values.
func Parse() *Options {
	// A local .env file is a convenience for development; missing is fine.
	_ = godotenv.Load()

	if configPath := os.Getenv("GADGETKEEPER_CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if vaultPath := os.Getenv("GADGETKEEPER_VAULT"); vaultPath != "" {
		options.VaultPath = vaultPath
	}

	if logLevel := os.Getenv("GADGETKEEPER_LOG_LEVEL"); logLevel != "" {
		options.LogLevel = logLevel
	}

	return options
}
