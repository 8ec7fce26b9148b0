// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bytebuf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrOverflow is returned when a put needs more bytes than remain before the limit.
	ErrOverflow = errors.New("bytebuf: buffer overflow")
	// ErrUnderflow is returned when a get needs more bytes than remain before the limit.
	ErrUnderflow = errors.New("bytebuf: buffer underflow")
)

// ByteBuffer is a fixed-capacity byte region with position and limit cursors.
//
// ByteBuffer is not safe for concurrent use.
type ByteBuffer struct {
	data  []byte
	pos   int
	limit int
	order binary.ByteOrder
}

// Wrap returns a ByteBuffer backed by data. The capacity is len(data), the
// position is 0, the limit is the capacity and the byte order is big-endian.
//
// The returned buffer shares memory with data.
func Wrap(data []byte) *ByteBuffer {
	return &ByteBuffer{
		data:  data,
		limit: len(data),
		order: binary.BigEndian,
	}
}

// Capacity returns the number of allocated bytes.
func (b *ByteBuffer) Capacity() int { return len(b.data) }

// Position returns the index of the next byte to write or read.
func (b *ByteBuffer) Position() int { return b.pos }

// Limit returns the exclusive bound of visible bytes.
func (b *ByteBuffer) Limit() int { return b.limit }

// Remaining returns the number of bytes between the position and the limit.
func (b *ByteBuffer) Remaining() int { return b.limit - b.pos }

// HasRemaining reports whether any bytes remain before the limit.
func (b *ByteBuffer) HasRemaining() bool { return b.pos < b.limit }

// Order returns the byte order used by the fixed-width accessors.
func (b *ByteBuffer) Order() binary.ByteOrder { return b.order }

// SetPosition moves the cursor to p. It panics unless 0 <= p <= Limit().
func (b *ByteBuffer) SetPosition(p int) {
	if p < 0 || p > b.limit {
		panic(fmt.Sprintf("bytebuf: position %d out of range [0, %d]", p, b.limit))
	}
	b.pos = p
}

// SetLimit sets the visible bound to l, clamping the position to it.
// It panics unless 0 <= l <= Capacity().
func (b *ByteBuffer) SetLimit(l int) {
	if l < 0 || l > len(b.data) {
		panic(fmt.Sprintf("bytebuf: limit %d out of range [0, %d]", l, len(b.data)))
	}
	b.limit = l
	if b.pos > l {
		b.pos = l
	}
}

// SetOrder sets the byte order used by the fixed-width accessors.
func (b *ByteBuffer) SetOrder(order binary.ByteOrder) {
	if order == nil {
		panic("bytebuf: nil byte order")
	}
	b.order = order
}

// Clear makes the whole capacity writable again: position 0, limit capacity.
// The contents are left untouched.
func (b *ByteBuffer) Clear() {
	b.pos = 0
	b.limit = len(b.data)
}

// Flip bounds the buffer to what has been written so far and rewinds it.
func (b *ByteBuffer) Flip() {
	b.limit = b.pos
	b.pos = 0
}

// Rewind sets the position to 0 and keeps the limit.
func (b *ByteBuffer) Rewind() { b.pos = 0 }

// Raw returns the whole backing slice [0, Capacity()) regardless of cursors.
// Transports use it to receive directly into the storage.
func (b *ByteBuffer) Raw() []byte { return b.data }

// Bytes returns the visible slice [0, Limit()).
func (b *ByteBuffer) Bytes() []byte { return b.data[:b.limit] }

// next reserves n bytes at the position and advances past them.
func (b *ByteBuffer) next(n int, err error) ([]byte, error) {
	if b.limit-b.pos < n {
		return nil, err
	}
	p := b.data[b.pos : b.pos+n]
	b.pos += n
	return p, nil
}

// Put copies p at the position. Nothing is written if p does not fit.
func (b *ByteBuffer) Put(p []byte) error {
	dst, err := b.next(len(p), ErrOverflow)
	if err != nil {
		return err
	}
	copy(dst, p)
	return nil
}

// PutBuffer copies the remaining bytes of src into b, advancing both positions.
func (b *ByteBuffer) PutBuffer(src *ByteBuffer) error {
	n := src.Remaining()
	dst, err := b.next(n, ErrOverflow)
	if err != nil {
		return err
	}
	copy(dst, src.data[src.pos:src.limit])
	src.pos = src.limit
	return nil
}

// PutByte writes a single byte.
func (b *ByteBuffer) PutByte(c byte) error {
	dst, err := b.next(1, ErrOverflow)
	if err != nil {
		return err
	}
	dst[0] = c
	return nil
}

// PutUint16 writes v in the buffer's byte order.
func (b *ByteBuffer) PutUint16(v uint16) error {
	dst, err := b.next(2, ErrOverflow)
	if err != nil {
		return err
	}
	b.order.PutUint16(dst, v)
	return nil
}

// PutUint32 writes v in the buffer's byte order.
func (b *ByteBuffer) PutUint32(v uint32) error {
	dst, err := b.next(4, ErrOverflow)
	if err != nil {
		return err
	}
	b.order.PutUint32(dst, v)
	return nil
}

// PutUint64 writes v in the buffer's byte order.
func (b *ByteBuffer) PutUint64(v uint64) error {
	dst, err := b.next(8, ErrOverflow)
	if err != nil {
		return err
	}
	b.order.PutUint64(dst, v)
	return nil
}

// PutFloat32 writes the IEEE 754 bits of v in the buffer's byte order.
func (b *ByteBuffer) PutFloat32(v float32) error { return b.PutUint32(math.Float32bits(v)) }

// PutFloat64 writes the IEEE 754 bits of v in the buffer's byte order.
func (b *ByteBuffer) PutFloat64(v float64) error { return b.PutUint64(math.Float64bits(v)) }

// Get fills p from the position. Nothing is consumed if fewer than len(p) bytes remain.
func (b *ByteBuffer) Get(p []byte) error {
	src, err := b.next(len(p), ErrUnderflow)
	if err != nil {
		return err
	}
	copy(p, src)
	return nil
}

// GetByte reads a single byte.
func (b *ByteBuffer) GetByte() (byte, error) {
	src, err := b.next(1, ErrUnderflow)
	if err != nil {
		return 0, err
	}
	return src[0], nil
}

// GetUint16 reads a value in the buffer's byte order.
func (b *ByteBuffer) GetUint16() (uint16, error) {
	src, err := b.next(2, ErrUnderflow)
	if err != nil {
		return 0, err
	}
	return b.order.Uint16(src), nil
}

// GetUint32 reads a value in the buffer's byte order.
func (b *ByteBuffer) GetUint32() (uint32, error) {
	src, err := b.next(4, ErrUnderflow)
	if err != nil {
		return 0, err
	}
	return b.order.Uint32(src), nil
}

// GetUint64 reads a value in the buffer's byte order.
func (b *ByteBuffer) GetUint64() (uint64, error) {
	src, err := b.next(8, ErrUnderflow)
	if err != nil {
		return 0, err
	}
	return b.order.Uint64(src), nil
}

// GetFloat32 reads IEEE 754 bits in the buffer's byte order.
func (b *ByteBuffer) GetFloat32() (float32, error) {
	v, err := b.GetUint32()
	return math.Float32frombits(v), err
}

// GetFloat64 reads IEEE 754 bits in the buffer's byte order.
func (b *ByteBuffer) GetFloat64() (float64, error) {
	v, err := b.GetUint64()
	return math.Float64frombits(v), err
}
