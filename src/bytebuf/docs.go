// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package bytebuf provides a fixed-capacity byte region with position and limit
// cursors and a configurable byte order.
//
// A [ByteBuffer] never grows. Callers that need growth wrap it, as the marshal
// package does, and replace the storage with a larger one when required.
//
// Three quantities are kept separate:
//   - capacity: the number of allocated bytes
//   - limit: the exclusive bound of bytes visible for the current mode
//   - position: the next byte to write or read
//
// The invariant 0 <= position <= limit <= capacity always holds. Setting a cursor
// outside those bounds is a caller bug and panics.
package bytebuf
