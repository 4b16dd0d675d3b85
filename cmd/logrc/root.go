package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/logrc/cmd/logrc/opts"
	"github.com/walteh/logrc/pkg/config"
	"github.com/walteh/logrc/pkg/operation"
	"github.com/walteh/logrc/pkg/status"
	"github.com/walteh/logrc/pkg/userlog"
)

var (
	// Flags
	configFile string
	debug      bool
	async      bool
)

// newRootOpts creates a new rootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	// Create user logger
	userLogger := userlog.New(ctx, status.NewDefaultFileFormatter())

	// Load config
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	if async {
		cfg.Async = true
	}

	logger := zerolog.Ctx(ctx)
	return &opts.RootOpts{
		Config:     cfg,
		StatusMgr:  status.NewManager(cfg.Root),
		UserLogger: userLogger,
		Runner:     operation.NewRunner(logger, cfg.Async),
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".logrc.hcl", "config file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&async, "async", false, "process file blocks in parallel")
}

// setupLogging configures zerolog based on flags
func setupLogging() zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger().Level(level)
	return logger
}
