// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/H0llyW00dzZ/marshal-buffer/src/cli"
	"github.com/H0llyW00dzZ/marshal-buffer/src/logger"
	verpkg "github.com/H0llyW00dzZ/marshal-buffer/src/version"
)

const (
	exitOK        = 0
	exitFailure   = 1
	exitCancelled = 130 // Standard exit code for SIGINT

	// cleanupGrace is how long a cancelled command may take to release its buffer.
	cleanupGrace = 100 * time.Millisecond
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	// Summaries go to stderr so stdout carries only command output
	log := logger.NewCLILogger()
	log.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, log)
	stop()
	os.Exit(code)
}

// run executes the CLI until it finishes or ctx is cancelled and returns the
// process exit code.
func run(ctx context.Context, log logger.Logger) int {
	done := make(chan error, 1)
	go func() {
		done <- cli.Execute(ctx, version, log)
	}()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		select {
		case err = <-done:
		case <-time.After(cleanupGrace):
			err = ctx.Err()
		}
	}

	if ctx.Err() != nil {
		log.Println("Operation cancelled by signal. Exiting...")
		return exitCancelled
	}
	if err != nil {
		// Cobra already printed the error
		return exitFailure
	}

	if cli.OperationPerformedSuccessfully {
		log.Println("marshal-buffer stopped.")
	}
	return exitOK
}
