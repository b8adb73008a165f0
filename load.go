// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginswc

package pluginswc

import (
	"fmt"
	"os"
)

// LoadEntriesFile reads and parses filter entries from a file.
func LoadEntriesFile(path string) ([]FilterEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open entries file: %w", err)
	}
	defer func() { _ = f.Close() }()

	entries, err := ParseEntriesFile(f)
	if err != nil {
		return nil, fmt.Errorf("parse entries file %s: %w", path, err)
	}

	return entries, nil
}

// LoadEntriesFiles reads and merges entries from files in the given order.
func LoadEntriesFiles(paths ...string) ([]FilterEntry, error) {
	out := make([]FilterEntry, 0, len(paths)*8)
	for _, path := range paths {
		entries, err := LoadEntriesFile(path)
		if err != nil {
			return nil, err
		}

		out = append(out, entries...)
	}

	return out, nil
}
