// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/H0llyW00dzZ/marshal-buffer/src/config"
	"github.com/H0llyW00dzZ/marshal-buffer/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/marshal-buffer/src/logger"
	"github.com/spf13/cobra"
)

var (
	// ErrInputFileRequired is returned by roundtrip when no input file is given.
	ErrInputFileRequired = errors.New("cli: input file is required")
	// ErrNoSizes is returned by simulate when no message sizes are given.
	ErrNoSizes = errors.New("cli: at least one message size is required")
	// ErrNegativeSize is returned by simulate for a negative message size.
	ErrNegativeSize = errors.New("cli: message sizes must not be negative")
)

var (
	// OperationPerformed reports whether a subcommand started its work.
	OperationPerformed bool
	// OperationPerformedSuccessfully reports whether that work finished without error.
	OperationPerformedSuccessfully bool
)

// options holds the flags shared by every subcommand.
type options struct {
	configFile  string
	maxCapacity int
	verbose     bool
}

// loadConfig loads the configuration and applies flag overrides.
func (o *options) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("max-capacity") {
		cfg.Buffer.MaxCapacity = o.maxCapacity
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// bufferLogger returns the logger that receives reallocation events, or nil
// when they are not wanted.
func (o *options) bufferLogger(cmd *cobra.Command, cfg *config.Config) logger.Logger {
	if !o.verbose {
		return nil
	}
	return cfg.NewLogger(cmd.ErrOrStderr())
}

// NewRootCommand builds the marshal-buffer command tree.
//
// Parameters:
//   - version: Version string reported by --version
//   - log: Logger receiving operation summaries
//
// Returns:
//   - *cobra.Command: Root command with the simulate and roundtrip subcommands
func NewRootCommand(version string, log logger.Logger) *cobra.Command {
	opts := &options{}
	exeName := posix.GetExecutableName()

	rootCmd := &cobra.Command{
		Use:     exeName,
		Short:   "Growable marshaling buffer toolkit",
		Long:    "Exercise the marshaling buffer used by the RPC wire layer: simulate its growth and shrink policy, or round-trip files through it.",
		Version: version,
		Example: fmt.Sprintf(`  %[1]s simulate --sizes 480,100,100,100
  %[1]s roundtrip message.bin -o copy.bin --message-size 4096`, exeName),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "path to a JSON or YAML config file (default: $"+config.EnvConfigFile+")")
	rootCmd.PersistentFlags().IntVar(&opts.maxCapacity, "max-capacity", config.DefaultMaxCapacity, "ceiling for speculative capacity doubling")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every storage reallocation to stderr")

	rootCmd.AddCommand(
		newSimulateCommand(opts, log),
		newRoundtripCommand(opts, log),
	)
	return rootCmd
}

// Execute runs the root command with the process arguments until it
// completes or ctx is cancelled.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	OperationPerformed = false
	OperationPerformedSuccessfully = false
	return NewRootCommand(version, log).ExecuteContext(ctx)
}

// run marks the operation state around fn.
func run(fn func() error) error {
	OperationPerformed = true
	if err := fn(); err != nil {
		return err
	}
	OperationPerformedSuccessfully = true
	return nil
}
