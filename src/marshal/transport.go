// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package marshal

import (
	"fmt"
	"io"
)

// Write appends p at the current position, growing the storage as needed.
// It implements [io.Writer] for encoders.
func (buf *Buffer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := buf.Expand(len(p)); err != nil {
		return 0, err
	}
	if err := buf.b.Put(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Read copies valid bytes from the current position into p.
// It implements [io.Reader] for decoders and returns [io.EOF] once the
// position reaches the end of the valid region.
func (buf *Buffer) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if buf.b == nil {
		return 0, io.EOF
	}

	end := min(buf.b.Limit(), buf.size)
	avail := end - buf.b.Position()
	if avail <= 0 {
		return 0, io.EOF
	}

	n := min(len(p), avail)
	if err := buf.b.Get(p[:n]); err != nil {
		return 0, err
	}
	return n, nil
}

// Bytes returns the valid region [0, Size()). It is nil when the buffer has no storage.
func (buf *Buffer) Bytes() []byte {
	if buf.b == nil {
		return nil
	}
	return buf.b.Raw()[:buf.size]
}

// WriteTo writes the valid region [0, Size()) to w.
// It implements [io.WriterTo] for transports sending an encoded message.
func (buf *Buffer) WriteTo(w io.Writer) (int64, error) {
	p := buf.Bytes()
	if len(p) == 0 {
		return 0, nil
	}

	n, err := w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// ReadMessage receives exactly n bytes from r into the storage starting at
// offset 0 and switches the buffer to READ mode at position 0, ready for a decoder.
//
// Previous contents are replaced. On a short read the bytes received so far
// are kept as the valid region and the read error is returned.
//
// Parameters:
//   - r: source of the message bytes
//   - n: expected message length; must not be negative
//
// Returns:
//   - error: a [*MarshalError] on allocation failure, or the wrapped read error
func (buf *Buffer) ReadMessage(r io.Reader, n int) error {
	if n < 0 {
		panic(fmt.Sprintf("marshal: negative message length %d", n))
	}

	if err := buf.Resize(n, false); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	got, err := io.ReadFull(r, buf.b.Raw()[:n])

	// got <= n <= capacity, so this never reallocates
	_ = buf.Resize(got, true)
	if buf.b != nil {
		buf.b.SetPosition(0)
	}

	if err != nil {
		return fmt.Errorf("marshal: received %d of %d bytes: %w", got, n, err)
	}
	return nil
}
