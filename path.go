// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginswc

package pluginswc

import (
	"path"
	"strings"
)

// CleanURL strips the hash and then the query suffix from a module id.
//
// Hash goes first: a fragment may itself carry a literal "?".
func CleanURL(id string) string {
	if i := strings.IndexByte(id, '#'); i >= 0 {
		id = id[:i]
	}

	if i := strings.IndexByte(id, '?'); i >= 0 {
		id = id[:i]
	}

	return id
}

// normalizeID cleans a module id into slash-separated form used for matching.
//
// Unlike rule paths, ids keep their leading "/" because hosts hand over
// absolute file system paths.
func normalizeID(raw string) string {
	raw = CleanURL(raw)
	if strings.Contains(raw, `\`) {
		raw = strings.ReplaceAll(raw, `\`, `/`)
	}

	if raw == "" {
		return ""
	}

	// Fast path for already-normalized ids.
	if isSimpleNormalizedID(raw) {
		return raw
	}

	// Repeated slashes collapse, URL-like ids included, as with posix normalize.
	cleaned := path.Clean(raw)
	if cleaned == "." {
		return ""
	}

	return cleaned
}

// isSimpleNormalizedID reports whether id is already normalized enough to skip path.Clean.
func isSimpleNormalizedID(id string) bool {
	if id == "." ||
		id == ".." ||
		strings.HasSuffix(id, "/") ||
		strings.HasPrefix(id, "./") ||
		strings.HasPrefix(id, "../") ||
		strings.Contains(id, "//") ||
		strings.Contains(id, "/./") ||
		strings.Contains(id, "/../") ||
		strings.HasSuffix(id, "/.") ||
		strings.HasSuffix(id, "/..") {
		return false
	}

	return true
}
