// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/marshal-buffer/src/logger"
	"github.com/H0llyW00dzZ/marshal-buffer/src/marshal"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Cycle is one write-then-reset round of a simulation.
type Cycle struct {
	// Size: bytes written during the cycle
	Size int
	// Capacity: storage capacity after the reset
	Capacity int
	// ShrinkCounter: consecutive underutilized resets after the reset
	ShrinkCounter int
	// Grew: the write reallocated to a larger capacity
	Grew bool
	// Shrank: the reset reallocated to a smaller capacity
	Shrank bool
}

// Event describes the reallocation of the cycle, "-" when there was none.
func (c Cycle) Event() string {
	var events []string
	if c.Grew {
		events = append(events, "grow")
	}
	if c.Shrank {
		events = append(events, "shrink")
	}
	if len(events) == 0 {
		return "-"
	}
	return strings.Join(events, ", ")
}

// Simulate writes each size into buf as one message and resets it afterwards,
// recording the buffer state after every cycle.
//
// Parameters:
//   - ctx: Context checked between cycles
//   - buf: Buffer under test
//   - sizes: Message sizes, one per cycle
//
// Returns:
//   - []Cycle: The cycles completed so far
//   - error: ctx.Err() on cancellation, or a [*marshal.MarshalError]
func Simulate(ctx context.Context, buf *marshal.Buffer, sizes []int) ([]Cycle, error) {
	cycles := make([]Cycle, 0, len(sizes))
	for _, size := range sizes {
		if err := ctx.Err(); err != nil {
			return cycles, err
		}
		if size < 0 {
			return cycles, fmt.Errorf("%w: %d", ErrNegativeSize, size)
		}

		before := buf.Stats()
		if err := buf.Resize(size, false); err != nil {
			return cycles, err
		}
		grown := buf.Stats()
		if err := buf.Reset(); err != nil {
			return cycles, err
		}
		after := buf.Stats()

		cycles = append(cycles, Cycle{
			Size:          size,
			Capacity:      after.Capacity,
			ShrinkCounter: after.ShrinkCounter,
			Grew:          grown.Grows > before.Grows,
			Shrank:        after.Shrinks > grown.Shrinks,
		})
	}
	return cycles, nil
}

// RenderCycles writes the cycles to w as a markdown table.
func RenderCycles(w io.Writer, cycles []Cycle) error {
	p := message.NewPrinter(language.English)

	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	headers := []string{"Cycle", "Size", "Capacity", "Shrink Counter", "Event"}
	table.Header(headers)

	rows := make([][]string, 0, len(cycles))
	for i, c := range cycles {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			p.Sprintf("%d", c.Size),
			p.Sprintf("%d", c.Capacity),
			strconv.Itoa(c.ShrinkCounter),
			c.Event(),
		})
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

// parseSizes parses a comma separated list of message sizes.
func parseSizes(raw []string) ([]int, error) {
	var sizes []int
	for _, field := range raw {
		for part := range strings.SplitSeq(field, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("cli: invalid message size %q: %w", part, err)
			}
			if n < 0 {
				return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
			}
			sizes = append(sizes, n)
		}
	}
	if len(sizes) == 0 {
		return nil, ErrNoSizes
	}
	return sizes, nil
}

func newSimulateCommand(opts *options, log logger.Logger) *cobra.Command {
	var rawSizes []string

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Replay message sizes through a buffer and tabulate its capacity",
		Long: "Simulate writes one message per size into a fresh buffer and resets it after each, " +
			"printing the capacity and shrink counter after every cycle as a markdown table.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(func() error {
				sizes, err := parseSizes(rawSizes)
				if err != nil {
					return err
				}

				cfg, err := opts.loadConfig(cmd)
				if err != nil {
					return err
				}

				buf := cfg.NewBuffer(opts.bufferLogger(cmd, cfg))
				defer buf.Clear()

				cycles, err := Simulate(cmd.Context(), buf, sizes)
				if err != nil {
					return err
				}
				if err := RenderCycles(cmd.OutOrStdout(), cycles); err != nil {
					return err
				}

				stats := buf.Stats()
				log.Printf("simulated %d cycles: %d grows, %d shrinks, final capacity %d",
					len(cycles), stats.Grows, stats.Shrinks, stats.Capacity)
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVarP(&rawSizes, "sizes", "s", nil, "comma separated message sizes in bytes, one per cycle")
	return cmd
}
