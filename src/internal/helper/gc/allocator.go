// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"errors"
	"fmt"

	"github.com/valyala/bytebufferpool"
)

// ErrOutOfMemory reports that an allocator could not satisfy a request.
var ErrOutOfMemory = errors.New("gc: out of memory")

// Allocator hands out fixed-size byte storage and takes it back.
//
// Allocate returns a slice with len(b) == n. Free is called at most once per
// slice, after which the caller must not touch it again.
type Allocator interface {
	Allocate(n int) ([]byte, error)
	Free(b []byte)
}

// HeapAllocator allocates with make and leaves reclamation to the garbage collector.
type HeapAllocator struct{}

// Heap is the default allocator.
var Heap HeapAllocator

// Allocate returns n zeroed bytes. Runtime allocation panics (for example a
// length beyond what the platform can address) are returned as [ErrOutOfMemory].
func (HeapAllocator) Allocate(n int) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b = nil
			err = fmt.Errorf("%w: %v", ErrOutOfMemory, r)
		}
	}()
	return make([]byte, n), nil
}

// Free is a no-op; the garbage collector reclaims b once it is unreachable.
func (HeapAllocator) Free([]byte) {}

// PooledAllocator recycles storage through a [bytebufferpool.Pool].
//
// The pool calibrates itself from the sizes it sees on Free, so storage that is
// much larger than typical messages is eventually dropped instead of retained.
//
// PooledAllocator is safe for concurrent use by multiple goroutines.
type PooledAllocator struct{ p *bytebufferpool.Pool }

// NewPooled returns a PooledAllocator with its own pool.
func NewPooled() *PooledAllocator {
	return &PooledAllocator{p: &bytebufferpool.Pool{}}
}

// Allocate returns n zeroed bytes, reusing pooled storage when its capacity suffices.
func (a *PooledAllocator) Allocate(n int) ([]byte, error) {
	bb := a.p.Get()
	if cap(bb.B) < n {
		// dropped rather than returned: a Put here would record a zero-length
		// buffer and skew the pool's size calibration
		return Heap.Allocate(n)
	}

	b := bb.B[:n]
	clear(b) // no bytes from a previous message may leak into this one
	return b, nil
}

// Free hands b back to the pool.
func (a *PooledAllocator) Free(b []byte) {
	if b == nil {
		return
	}
	a.p.Put(&bytebufferpool.ByteBuffer{B: b})
}

// LimitedAllocator enforces a hard per-allocation ceiling on top of another allocator.
type LimitedAllocator struct {
	Allocator Allocator
	Max       int
}

// Limited wraps a with a ceiling of limit bytes per allocation.
// A nil a falls back to [Heap].
func Limited(a Allocator, limit int) *LimitedAllocator {
	if a == nil {
		a = Heap
	}
	return &LimitedAllocator{Allocator: a, Max: limit}
}

// Allocate fails with [ErrOutOfMemory] when n exceeds the ceiling.
func (l *LimitedAllocator) Allocate(n int) ([]byte, error) {
	if n > l.Max {
		return nil, fmt.Errorf("%w: %d bytes exceeds allocation limit of %d", ErrOutOfMemory, n, l.Max)
	}
	return l.Allocator.Allocate(n)
}

// Free delegates to the wrapped allocator.
func (l *LimitedAllocator) Free(b []byte) { l.Allocator.Free(b) }
