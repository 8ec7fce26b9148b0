// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package marshal_test

import "errors"

var errAllocatorExhausted = errors.New("allocator exhausted")

// recordingAllocator hands out heap storage and records every request.
type recordingAllocator struct {
	sizes []int
	freed []int
	fail  bool
}

func (r *recordingAllocator) Allocate(n int) ([]byte, error) {
	if r.fail {
		return nil, errAllocatorExhausted
	}
	r.sizes = append(r.sizes, n)
	return make([]byte, n), nil
}

func (r *recordingAllocator) Free(b []byte) { r.freed = append(r.freed, len(b)) }

// shortWriter accepts at most limit bytes per call without reporting an error.
type shortWriter struct{ limit int }

func (s shortWriter) Write(p []byte) (int, error) { return min(len(p), s.limit), nil }
