// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strings"
)

// fallbackName is reported when the process has no usable argv[0].
const fallbackName = "marshal-buffer"

// GetExecutableName returns the executable name without extension, cross-platform compatible.
//
// Both '/' and '\' are treated as separators regardless of the host OS, so a
// Windows path seen on a Unix host still yields its base name. A trailing
// ".exe" is removed.
//
// Examples:
//   - "/usr/local/bin/marshal-buffer" → "marshal-buffer"
//   - "C:\bin\marshal-buffer.exe" → "marshal-buffer"
//   - empty os.Args → "marshal-buffer"
//
// Returns:
//   - string: Clean executable name suitable for CLI usage
func GetExecutableName() string {
	if len(os.Args) == 0 {
		return fallbackName
	}
	return executableName(os.Args[0])
}

// executableName extracts the command name from an argv[0] value.
func executableName(arg0 string) string {
	name := strings.TrimRight(arg0, `/\`)
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, ".exe")
	if name == "" || name == "." {
		return fallbackName
	}
	return name
}
