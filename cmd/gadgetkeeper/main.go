// Package main wires configuration, logging and the vault-backed inventory
// into the gadgetkeeper command-line interface.
package main

import (
	"cmp"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/atinyakov/GadgetKeeper/internal/cli"
	"github.com/atinyakov/GadgetKeeper/internal/config"
	"github.com/atinyakov/GadgetKeeper/internal/logger"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Resolve configuration from defaults, config file and environment.
	options := config.Parse()

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	cmd := cli.NewRootCommand(os.Stdout, cli.BuildInfo{
		Version:   cmp.Or(version, "N/A"),
		BuildDate: cmp.Or(buildDate, "N/A"),
	}, options, zapLogger)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var withExitCode interface{ ExitCode() int }
		if errors.As(err, &withExitCode) {
			os.Exit(withExitCode.ExitCode())
		}
		os.Exit(1)
	}
}
