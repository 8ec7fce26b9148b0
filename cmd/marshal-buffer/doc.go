// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// marshal-buffer is a command-line tool for exercising the growable
// marshaling buffer of the RPC wire layer.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/marshal-buffer/cmd/marshal-buffer@latest
//
// # Usage
//
//	marshal-buffer simulate --sizes SIZES [FLAGS]
//	marshal-buffer roundtrip INPUT_FILE [FLAGS]
//
// # Flags
//
//	    --config            JSON or YAML config file (default: $MARSHAL_BUFFER_CONFIG_FILE)
//	    --max-capacity      Ceiling for speculative capacity doubling (default: 1048576)
//	-v, --verbose           Log every storage reallocation to stderr
//	-s, --sizes             Comma separated message sizes (simulate)
//	-o, --output            Destination file (roundtrip, default: stdout)
//	-m, --message-size      Largest message in bytes (roundtrip, default: whole file)
//
// # Examples
//
// Watch the shrink policy reclaim storage after three small messages:
//
//	marshal-buffer simulate --sizes 4096,100,100,100 --verbose
//
// Copy a file through a reused 4 KiB message buffer:
//
//	marshal-buffer roundtrip payload.bin -o copy.bin --message-size 4096
//
// # Configuration
//
//	buffer:
//	  maxCapacity: 1048576
//	  allocator: pool        # heap or pool
//	  allocationLimit: 0     # hard per-allocation ceiling, 0 disables it
//	log:
//	  format: text           # text or json
//	  silent: false
//
// MARSHAL_BUFFER_MAX_CAPACITY overrides buffer.maxCapacity.
package main
