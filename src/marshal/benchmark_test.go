// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package marshal_test

import (
	"bytes"
	"testing"

	"github.com/H0llyW00dzZ/marshal-buffer/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/marshal-buffer/src/marshal"
)

func benchmarkReuse(b *testing.B, opts ...marshal.Option) {
	buf := marshal.New(1<<20, opts...)
	payload := bytes.Repeat([]byte{0xAB}, 512)

	b.ReportAllocs()

	for b.Loop() {
		buf.Write(payload)
		buf.Reset()
	}
}

func BenchmarkBuffer_ReuseHeap(b *testing.B) { benchmarkReuse(b) }

func BenchmarkBuffer_ReusePooled(b *testing.B) {
	benchmarkReuse(b, marshal.WithAllocator(gc.NewPooled()))
}

func BenchmarkBuffer_GrowFromEmpty(b *testing.B) {
	payload := bytes.Repeat([]byte{0xCD}, 64)

	b.ReportAllocs()

	for b.Loop() {
		buf := marshal.New(1 << 20)
		for range 256 {
			buf.Write(payload)
		}
	}
}

func BenchmarkBuffer_PutUint32(b *testing.B) {
	buf := marshal.New(1 << 20)

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		if buf.Size() >= 4096 {
			buf.Reset()
		}
		buf.Expand(4)
		buf.Storage().PutUint32(uint32(i))
	}
}
