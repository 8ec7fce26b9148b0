// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package marshal implements the growable marshaling buffer of the RPC wire layer.
// It provides capabilities to:
//   - Accumulate outgoing message bytes with amortized doubling growth,
//     throttled by a soft maximum capacity.
//   - Expose received message bytes to decoders in a bounded read mode.
//   - Shrink oversized storage after three consecutive underutilized reuse
//     cycles, so long-lived buffers do not pin memory after one large message.
//   - Keep storage in little-endian order across every reallocation.
//
// A [Buffer] switches between two modes:
//   - WRITE: limit == capacity. Entered on construction, on [Buffer.Reset] and on
//     [Buffer.Resize] with reading=false.
//   - READ: limit == size. Entered only through [Buffer.Resize] with reading=true,
//     typically after a transport has filled the storage.
//
// A Buffer has exactly one owner at a time and is not safe for concurrent use.
// Storage returned by [Buffer.Storage] or [Buffer.Bytes] is only valid until the
// next call that may reallocate ([Buffer.Expand], [Buffer.Resize], [Buffer.Reset],
// [Buffer.Clear]).
package marshal
