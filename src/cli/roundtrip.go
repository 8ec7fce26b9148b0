// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/H0llyW00dzZ/marshal-buffer/src/logger"
	"github.com/H0llyW00dzZ/marshal-buffer/src/marshal"
	"github.com/spf13/cobra"
)

// RoundtripResult summarizes a [Roundtrip] run.
type RoundtripResult struct {
	// Messages: number of messages received and sent
	Messages int
	// Bytes: total payload bytes copied
	Bytes int64
	// Stats: buffer bookkeeping after the last message
	Stats marshal.Stats
}

// Roundtrip receives r as a sequence of messages of up to messageSize bytes,
// sending each one to w before the buffer is reset for the next. A
// messageSize of 0 treats the whole of r, whose length is total, as one message.
//
// Parameters:
//   - ctx: Context checked between messages
//   - buf: Buffer reused for every message
//   - r: Message source
//   - total: Number of bytes available from r
//   - messageSize: Largest message in bytes, 0 for a single message
//   - w: Message destination
//
// Returns:
//   - RoundtripResult: What was copied
//   - error: ctx.Err() on cancellation, a read error from [marshal.Buffer.ReadMessage],
//     or a write error from [marshal.Buffer.WriteTo]
func Roundtrip(ctx context.Context, buf *marshal.Buffer, r io.Reader, total int64, messageSize int, w io.Writer) (RoundtripResult, error) {
	var res RoundtripResult
	if messageSize <= 0 {
		messageSize = int(total)
	}

	for remaining := total; remaining > 0; {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		n := int(min(remaining, int64(messageSize)))
		if err := buf.ReadMessage(r, n); err != nil {
			return res, err
		}

		written, err := buf.WriteTo(w)
		res.Bytes += written
		if err != nil {
			return res, fmt.Errorf("cli: failed to send message %d: %w", res.Messages+1, err)
		}
		res.Messages++
		remaining -= int64(n)

		if err := buf.Reset(); err != nil {
			return res, err
		}
	}

	res.Stats = buf.Stats()
	return res, nil
}

func newRoundtripCommand(opts *options, log logger.Logger) *cobra.Command {
	var (
		outputFile  string
		messageSize int
	)

	cmd := &cobra.Command{
		Use:   "roundtrip INPUT_FILE",
		Short: "Receive a file into a buffer and send it back out",
		Long: "Roundtrip reads INPUT_FILE into the buffer in messages of --message-size bytes " +
			"and writes each message to OUTPUT_FILE or stdout, reusing one buffer throughout.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrInputFileRequired
			}
			if messageSize < 0 {
				return fmt.Errorf("cli: invalid message size %d", messageSize)
			}

			return run(func() (err error) {
				cfg, err := opts.loadConfig(cmd)
				if err != nil {
					return err
				}

				in, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("cli: failed to open input file: %w", err)
				}
				defer in.Close()

				info, err := in.Stat()
				if err != nil {
					return fmt.Errorf("cli: failed to stat input file: %w", err)
				}

				out := cmd.OutOrStdout()
				if outputFile != "" {
					f, createErr := os.Create(outputFile)
					if createErr != nil {
						return fmt.Errorf("cli: failed to create output file: %w", createErr)
					}
					defer func() {
						err = errors.Join(err, f.Close())
					}()
					out = f
				}

				buf := cfg.NewBuffer(opts.bufferLogger(cmd, cfg))
				defer buf.Clear()

				res, err := Roundtrip(cmd.Context(), buf, in, info.Size(), messageSize, out)
				if err != nil {
					return err
				}

				log.Printf("roundtrip: %d bytes in %d messages, final capacity %d",
					res.Bytes, res.Messages, res.Stats.Capacity)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	cmd.Flags().IntVarP(&messageSize, "message-size", "m", 0, "largest message in bytes (default: whole file)")
	return cmd
}
