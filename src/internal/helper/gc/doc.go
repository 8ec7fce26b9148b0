// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides reusable byte buffer pooling and storage allocators to
// reduce garbage collection overhead on the marshaling hot path.
//
// It abstracts the [bytebufferpool] library behind two small surfaces:
//   - [Pool] and [Buffer] for scratch buffers (used by the JSON logger)
//   - allocators ([Heap], [Pooled], [Limited]) that hand fixed-size storage to
//     the marshal package and take it back on reallocation or clear
//
// Allocation failures are reported as [ErrOutOfMemory] instead of crashing
// the process, so the marshal layer can translate them into its own error kind.
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
package gc
