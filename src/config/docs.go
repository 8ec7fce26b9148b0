// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads marshal-buffer settings from JSON or YAML files and the
// environment, validates them against an embedded [JSON Schema], and builds
// the runtime allocator, logger and buffer from them.
//
// [JSON Schema]: https://json-schema.org
package config
