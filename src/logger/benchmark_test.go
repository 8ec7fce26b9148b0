// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"io"
	"testing"

	"github.com/H0llyW00dzZ/marshal-buffer/src/logger"
)

func BenchmarkJSONLogger_Printf(b *testing.B) {
	log := logger.NewJSONLogger(io.Discard, false)

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		log.Printf("marshal: grow capacity %d -> %d", i, i*2)
	}
}

func BenchmarkJSONLogger_PrintfConcurrent(b *testing.B) {
	log := logger.NewJSONLogger(io.Discard, false)

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			log.Printf("Concurrent message %d", i)
			i++
		}
	})
}

func BenchmarkJSONLogger_Silent(b *testing.B) {
	log := logger.NewJSONLogger(io.Discard, true)

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		log.Printf("Silent message %d", i)
	}
}

func BenchmarkCLILogger_Printf(b *testing.B) {
	log := logger.NewCLILogger()
	log.SetOutput(io.Discard)

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		log.Printf("Benchmark message %d", i)
	}
}
