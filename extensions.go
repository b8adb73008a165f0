// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginswc

package pluginswc

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultExtensions are the source extensions swc handles natively.
var DefaultExtensions = []string{".js", ".jsx", ".es6", ".es", ".mjs", ".ts", ".tsx", ".cts", ".mts"}

// ParseExtensions normalizes extension list input.
//
// Accepted extension forms:
//   - "ts"
//   - ".ts"
//   - "*.ts"
//
// Empty values are skipped. Returned extensions are in ".ext" form and
// preserve input order. Case is kept: the gate is case-sensitive.
func ParseExtensions(exts []string) ([]string, error) {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		raw := ext
		ext = strings.TrimSpace(ext)
		ext = strings.TrimPrefix(ext, "*.")
		ext = strings.TrimLeft(ext, ".")
		if ext == "" {
			continue
		}

		if strings.ContainsAny(ext, `/\*?#`) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidExtension, raw)
		}

		out = append(out, "."+ext)
	}

	return out, nil
}

// extensionPattern builds the gate expression "\.(a|b|...)$".
//
// The same source is handed to esbuild as the OnLoad filter, so it must stay
// within the regexp syntax shared by Go and esbuild.
func extensionPattern(exts []string) (string, error) {
	parsed, err := ParseExtensions(exts)
	if err != nil {
		return "", err
	}

	if len(parsed) == 0 {
		parsed = DefaultExtensions
	}

	quoted := make([]string, 0, len(parsed))
	for _, ext := range parsed {
		quoted = append(quoted, regexp.QuoteMeta(strings.TrimPrefix(ext, ".")))
	}

	return `\.(` + strings.Join(quoted, "|") + `)$`, nil
}
