// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or use this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBufferInterface verifies that bytebufferpool.ByteBuffer satisfies Buffer interface
func TestBufferInterface(t *testing.T) {
	tests := []struct {
		name  string
		setup func(buf Buffer)
		check func(t *testing.T, buf Buffer)
	}{
		{
			name: "Write byte slice",
			setup: func(buf Buffer) {
				buf.Write([]byte("hello"))
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, "hello", buf.String())
				assert.Equal(t, 5, buf.Len())
			},
		},
		{
			name: "Multiple operations",
			setup: func(buf Buffer) {
				buf.Write([]byte("hello"))
				buf.WriteString(" test")
				buf.WriteByte('!')
			},
			check: func(t *testing.T, buf Buffer) {
				expected := "hello test!"
				assert.Equal(t, expected, buf.String())
				assert.Equal(t, []byte(expected), buf.Bytes())
			},
		},
		{
			name: "SetString replaces content",
			setup: func(buf Buffer) {
				buf.WriteString("initial")
				buf.SetString("new content")
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, "new content", buf.String())
			},
		},
		{
			name: "JSON encoder target",
			setup: func(buf Buffer) {
				json.NewEncoder(buf).Encode(map[string]string{"level": "info"})
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, "{\"level\":\"info\"}\n", buf.String())
			},
		},
		{
			name: "Reset clears buffer",
			setup: func(buf Buffer) {
				buf.WriteString("data to clear")
				buf.Reset()
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, 0, buf.Len(), "Reset() failed, buffer still contains data: %q", buf.Bytes())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Default.Get()
			defer func() {
				buf.Reset()
				Default.Put(buf)
			}()

			tt.setup(buf)
			tt.check(t, buf)
		})
	}
}

// TestPoolGetPut verifies pool Get/Put operations
func TestPoolGetPut(t *testing.T) {
	p := NewPool()

	buf1 := p.Get()
	require.NotNil(t, buf1, "Get() returned nil buffer")

	buf1.WriteString("test data")
	assert.Equal(t, 9, buf1.Len(), "WriteString() length")
	buf1.Reset()
	p.Put(buf1)

	buf2 := p.Get()
	require.NotNil(t, buf2, "Get() returned nil buffer after Put()")
	assert.Equal(t, 0, buf2.Len(), "Buffer from pool should be empty")
	p.Put(buf2)
}

// TestPoolPutNonByteBuffer verifies Put handles non-ByteBuffer types gracefully
func TestPoolPutNonByteBuffer(t *testing.T) {
	mockBuf := &mockBuffer{buf: bytes.NewBuffer(nil)}
	assert.NotPanics(t, func() { Default.Put(mockBuf) })
}

// TestGoroutineCooking verifies the pool is safe for concurrent use
func TestGoroutineCooking(t *testing.T) {
	const goroutines = 100
	const iterations = 500

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := range goroutines {
		go func(id int) {
			defer wg.Done()
			for range iterations {
				buf := Default.Get()
				buf.WriteString("goroutine #")
				buf.WriteByte(byte('0' + (id % 10)))
				assert.True(t, strings.HasPrefix(buf.String(), "goroutine #"))
				buf.Reset()
				Default.Put(buf)
			}
		}(i)
	}

	wg.Wait()
}
