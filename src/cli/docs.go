// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the marshal-buffer toolkit.
// It implements a Cobra-based CLI with two subcommands:
//
//   - simulate: replays a list of message sizes through a buffer and renders its
//     capacity and shrink counter after every write-then-reset cycle as a markdown table
//   - roundtrip: receives a file into a buffer one message at a time and sends each
//     message back out, reusing a single buffer throughout
//
// Both subcommands honour the --config, --max-capacity and --verbose flags and
// report a summary through the logger package.
package cli
