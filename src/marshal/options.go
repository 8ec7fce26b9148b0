// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package marshal

import (
	"github.com/H0llyW00dzZ/marshal-buffer/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/marshal-buffer/src/logger"
)

// Allocator hands out fixed-size storage for a Buffer and takes it back when
// the Buffer reallocates or clears. Implementations live in the gc helper
// package (heap, pooled and limited allocators).
type Allocator = gc.Allocator

// Option configures a Buffer at construction.
type Option func(*Buffer)

// WithAllocator sets the storage allocator. A nil allocator keeps the default heap allocator.
func WithAllocator(a Allocator) Option {
	return func(buf *Buffer) {
		if a != nil {
			buf.alloc = a
		}
	}
}

// WithLogger reports every storage reallocation through l.
// Without it the buffer logs nothing.
func WithLogger(l logger.Logger) Option {
	return func(buf *Buffer) { buf.log = l }
}
