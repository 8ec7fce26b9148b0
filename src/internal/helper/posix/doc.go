// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-style helpers for the command-line tool.
//
// GetExecutableName derives the command name shown in usage strings from
// os.Args[0], so help output matches whatever name the binary was installed as:
//
//	rootCmd := &cobra.Command{
//	    Use:   posix.GetExecutableName(),
//	    Short: "Growable marshaling buffer toolkit",
//	}
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
