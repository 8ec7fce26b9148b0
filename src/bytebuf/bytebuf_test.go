// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bytebuf_test

import (
	"encoding/binary"
	"testing"

	"github.com/H0llyW00dzZ/marshal-buffer/src/bytebuf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	b := bytebuf.Wrap(make([]byte, 16))

	assert.Equal(t, 16, b.Capacity())
	assert.Equal(t, 0, b.Position())
	assert.Equal(t, 16, b.Limit())
	assert.Equal(t, 16, b.Remaining())
	assert.True(t, b.HasRemaining())
	assert.Equal(t, binary.BigEndian, b.Order(), "fresh storage defaults to network order")
}

func TestCursors(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T, b *bytebuf.ByteBuffer)
	}{
		{
			name: "SetLimit clamps position",
			testFunc: func(t *testing.T, b *bytebuf.ByteBuffer) {
				b.SetPosition(10)
				b.SetLimit(4)
				assert.Equal(t, 4, b.Position())
				assert.Equal(t, 4, b.Limit())
				assert.False(t, b.HasRemaining())
			},
		},
		{
			name: "Flip bounds to written bytes",
			testFunc: func(t *testing.T, b *bytebuf.ByteBuffer) {
				require.NoError(t, b.Put([]byte("abc")))
				b.Flip()
				assert.Equal(t, 0, b.Position())
				assert.Equal(t, 3, b.Limit())
				assert.Equal(t, []byte("abc"), b.Bytes())
			},
		},
		{
			name: "Clear restores full capacity",
			testFunc: func(t *testing.T, b *bytebuf.ByteBuffer) {
				b.SetLimit(2)
				b.Clear()
				assert.Equal(t, 0, b.Position())
				assert.Equal(t, b.Capacity(), b.Limit())
			},
		},
		{
			name: "Rewind keeps limit",
			testFunc: func(t *testing.T, b *bytebuf.ByteBuffer) {
				b.SetLimit(8)
				b.SetPosition(5)
				b.Rewind()
				assert.Equal(t, 0, b.Position())
				assert.Equal(t, 8, b.Limit())
			},
		},
		{
			name: "Raw ignores limit",
			testFunc: func(t *testing.T, b *bytebuf.ByteBuffer) {
				b.SetLimit(3)
				assert.Len(t, b.Raw(), 16)
				assert.Len(t, b.Bytes(), 3)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t, bytebuf.Wrap(make([]byte, 16)))
		})
	}
}

func TestCursorContractViolations(t *testing.T) {
	b := bytebuf.Wrap(make([]byte, 8))

	assert.Panics(t, func() { b.SetPosition(-1) })
	assert.Panics(t, func() { b.SetPosition(9) })
	assert.Panics(t, func() { b.SetLimit(-1) })
	assert.Panics(t, func() { b.SetLimit(9) })
	assert.Panics(t, func() { b.SetOrder(nil) })

	b.SetLimit(4)
	assert.Panics(t, func() { b.SetPosition(5) }, "position may not pass the limit")
}

func TestFixedWidthByteOrder(t *testing.T) {
	tests := []struct {
		name  string
		order binary.ByteOrder
		want  []byte
	}{
		{name: "LittleEndian", order: binary.LittleEndian, want: []byte{0x04, 0x03, 0x02, 0x01}},
		{name: "BigEndian", order: binary.BigEndian, want: []byte{0x01, 0x02, 0x03, 0x04}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bytebuf.Wrap(make([]byte, 4))
			b.SetOrder(tt.order)

			require.NoError(t, b.PutUint32(0x01020304))
			assert.Equal(t, tt.want, b.Raw())

			b.Flip()
			v, err := b.GetUint32()
			require.NoError(t, err)
			assert.Equal(t, uint32(0x01020304), v)
		})
	}
}

func TestPutGetValues(t *testing.T) {
	b := bytebuf.Wrap(make([]byte, 32))
	b.SetOrder(binary.LittleEndian)

	require.NoError(t, b.PutByte(0xAB))
	require.NoError(t, b.PutUint16(0xBEEF))
	require.NoError(t, b.PutUint64(0x0102030405060708))
	require.NoError(t, b.PutFloat32(1.5))
	require.NoError(t, b.PutFloat64(-2.25))
	require.NoError(t, b.Put([]byte("hi")))
	assert.Equal(t, 1+2+8+4+8+2, b.Position())

	b.Flip()

	c, err := b.GetByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0xAB), c)

	u16, err := b.GetUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0xBEEF), u16)

	u64, err := b.GetUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0102030405060708), u64)

	f32, err := b.GetFloat32()
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), f32)

	f64, err := b.GetFloat64()
	require.NoError(t, err)
	assert.Equal(t, -2.25, f64)

	p := make([]byte, 2)
	require.NoError(t, b.Get(p))
	assert.Equal(t, "hi", string(p))
	assert.False(t, b.HasRemaining())
}

func TestOverflowUnderflow(t *testing.T) {
	b := bytebuf.Wrap(make([]byte, 3))

	assert.ErrorIs(t, b.PutUint32(1), bytebuf.ErrOverflow)
	assert.Equal(t, 0, b.Position(), "failed put must not advance")

	require.NoError(t, b.PutUint16(7))
	assert.ErrorIs(t, b.Put([]byte{1, 2}), bytebuf.ErrOverflow)
	require.NoError(t, b.PutByte(1))
	assert.ErrorIs(t, b.PutByte(2), bytebuf.ErrOverflow)

	b.Flip()
	_, err := b.GetUint64()
	assert.ErrorIs(t, err, bytebuf.ErrUnderflow)
	assert.Equal(t, 0, b.Position(), "failed get must not advance")

	assert.ErrorIs(t, b.Get(make([]byte, 4)), bytebuf.ErrUnderflow)
}

func TestPutBuffer(t *testing.T) {
	src := bytebuf.Wrap([]byte("hello world"))
	src.SetLimit(5)

	dst := bytebuf.Wrap(make([]byte, 8))
	require.NoError(t, dst.PutBuffer(src))

	assert.Equal(t, 5, dst.Position())
	assert.Equal(t, 5, src.Position(), "source is consumed up to its limit")
	assert.Equal(t, "hello", string(dst.Raw()[:5]))

	big := bytebuf.Wrap(make([]byte, 16))
	small := bytebuf.Wrap(make([]byte, 4))
	assert.ErrorIs(t, small.PutBuffer(big), bytebuf.ErrOverflow)
	assert.Equal(t, 0, big.Position())
}
