// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package marshal

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/H0llyW00dzZ/marshal-buffer/src/bytebuf"
	"github.com/H0llyW00dzZ/marshal-buffer/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/marshal-buffer/src/logger"
)

const (
	// MinCapacity is the smallest capacity any growth allocates.
	MinCapacity = 240

	// shrinkStrikes is how many consecutive underutilized resets are tolerated;
	// the next one shrinks the storage.
	shrinkStrikes = 2
)

// Buffer is a growable byte buffer over fixed-capacity [bytebuf.ByteBuffer] storage.
//
// The zero value is not usable; construct with [New].
type Buffer struct {
	b             *bytebuf.ByteBuffer
	size          int
	capacity      int
	maxCapacity   int
	shrinkCounter int

	alloc   Allocator
	log     logger.Logger
	grows   int
	shrinks int
}

// Stats is a point-in-time view of a Buffer's bookkeeping.
type Stats struct {
	Size          int
	Capacity      int
	MaxCapacity   int
	ShrinkCounter int
	Grows         int
	Shrinks       int
}

// New creates an empty Buffer without storage.
//
// Parameters:
//   - maxCapacity: ceiling for speculative doubling. It is not a hard bound; an
//     explicit request beyond it is still honoured in full.
//   - opts: optional allocator and logger
//
// Returns:
//   - *Buffer: buffer in WRITE mode with size and capacity 0
func New(maxCapacity int, opts ...Option) *Buffer {
	buf := &Buffer{
		maxCapacity: maxCapacity,
		alloc:       gc.Heap,
	}
	for _, opt := range opts {
		opt(buf)
	}
	return buf
}

// Size returns the number of valid bytes.
func (buf *Buffer) Size() int { return buf.size }

// Empty reports whether the buffer holds no valid bytes.
func (buf *Buffer) Empty() bool { return buf.size == 0 }

// Capacity returns the allocated storage size.
func (buf *Buffer) Capacity() int { return buf.capacity }

// MaxCapacity returns the configured doubling ceiling.
func (buf *Buffer) MaxCapacity() int { return buf.maxCapacity }

// Storage returns the backing storage, or nil when the buffer has none.
// Encoders write and decoders read through it at its current position.
func (buf *Buffer) Storage() *bytebuf.ByteBuffer { return buf.b }

// Stats returns the current bookkeeping counters.
func (buf *Buffer) Stats() Stats {
	return Stats{
		Size:          buf.size,
		Capacity:      buf.capacity,
		MaxCapacity:   buf.maxCapacity,
		ShrinkCounter: buf.shrinkCounter,
		Grows:         buf.grows,
		Shrinks:       buf.shrinks,
	}
}

// Clear releases the storage back to the allocator and sets size and capacity to 0.
// Calling it on a buffer without storage is a no-op.
func (buf *Buffer) Clear() {
	if buf.b != nil {
		buf.alloc.Free(buf.b.Raw())
		buf.b = nil
	}
	buf.size = 0
	buf.capacity = 0
}

// Expand makes room for n more bytes starting at the current position.
//
// Nothing happens when the bytes already fall inside the valid region, so
// callers rewriting earlier bytes do not grow the buffer.
//
// Parameters:
//   - n: number of bytes about to be written; must not be negative, and
//     position+n must fit in an int
//
// Returns:
//   - error: a [*MarshalError] if the storage could not be allocated
func (buf *Buffer) Expand(n int) error {
	if n < 0 {
		panic(fmt.Sprintf("marshal: negative expand %d", n))
	}

	sz := n
	if buf.b != nil {
		pos := buf.b.Position()
		if n > math.MaxInt-pos {
			panic(fmt.Sprintf("marshal: expand %d at position %d overflows int", n, pos))
		}
		sz = pos + n
	}
	if sz > buf.size {
		return buf.Resize(sz, false)
	}
	return nil
}

// Resize sets the number of valid bytes to n.
//
// A size of 0 clears the buffer. A size beyond the capacity grows the storage.
// With reading set, the storage limit becomes n so decoders see exactly the
// valid region (READ mode); otherwise the whole capacity stays writable
// (WRITE mode).
//
// Parameters:
//   - n: new size; must not be negative
//   - reading: whether to bound subsequent reads to n bytes
//
// Returns:
//   - error: a [*MarshalError] if the storage could not be allocated
func (buf *Buffer) Resize(n int, reading bool) error {
	if n < 0 {
		panic(fmt.Sprintf("marshal: negative size %d", n))
	}

	if n == 0 {
		buf.Clear()
	} else if n > buf.capacity {
		if err := buf.reserve(n); err != nil {
			return err
		}
	}
	buf.size = n

	if buf.b == nil {
		return nil
	}
	if reading {
		buf.b.SetLimit(n)
	} else {
		buf.b.SetLimit(buf.b.Capacity())
	}
	return nil
}

// Reset prepares the buffer for the next message in WRITE mode.
//
// A reset of a buffer that is less than half used counts as a strike; the third
// consecutive strike shrinks the storage down to the current size. Any other
// reset clears the strikes. Afterwards size is 0 and the storage, if any, is
// fully writable from position 0.
//
// Returns:
//   - error: a [*MarshalError] if the shrunk storage could not be allocated.
//     The buffer must be discarded after such a failure.
func (buf *Buffer) Reset() error {
	if buf.size > 0 && buf.size*2 < buf.capacity {
		buf.shrinkCounter++
		if buf.shrinkCounter > shrinkStrikes {
			if err := buf.reserve(buf.size); err != nil {
				return err
			}
			buf.shrinkCounter = 0
		}
	} else {
		buf.shrinkCounter = 0
	}

	buf.size = 0
	if buf.b != nil {
		buf.b.Clear()
	}
	return nil
}

// reserve reallocates the storage for a target of n bytes. Growth doubles the
// capacity up to maxCapacity but never below n or MinCapacity; shrinking goes
// to n exactly. The valid prefix and the position survive the move.
func (buf *Buffer) reserve(n int) error {
	var capacity int
	switch {
	case n > buf.capacity:
		capacity = max(n, min(2*buf.capacity, buf.maxCapacity))
		capacity = max(MinCapacity, capacity)
	case n < buf.capacity:
		capacity = n
	default:
		return nil
	}

	data, err := buf.alloc.Allocate(capacity)
	if err != nil {
		return allocationError(err)
	}

	next := bytebuf.Wrap(data)
	if old := buf.b; old != nil {
		pos := old.Position()
		old.SetPosition(0)
		old.SetLimit(min(capacity, old.Capacity()))
		// cannot overflow: next holds at least old.Limit() bytes
		_ = next.PutBuffer(old)
		next.SetPosition(min(pos, capacity))
		buf.alloc.Free(old.Raw())
	}
	next.SetOrder(binary.LittleEndian)

	if capacity > buf.capacity {
		buf.grows++
		if buf.log != nil {
			buf.log.Printf("marshal: grow capacity %d -> %d", buf.capacity, capacity)
		}
	} else {
		buf.shrinks++
		if buf.log != nil {
			buf.log.Printf("marshal: shrink capacity %d -> %d", buf.capacity, capacity)
		}
	}

	buf.b = next
	buf.capacity = capacity
	return nil
}
