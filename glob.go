// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginswc

package pluginswc

import (
	"fmt"
	"strings"
)

// globSource converts a gitignore-like glob into regexp source usable inside
// the filter alternation.
//
// Unanchored globs match from any segment boundary to the end of the id.
// A leading "/" anchors to the id start, a trailing "/" matches everything
// below the directory.
func globSource(raw string) (string, error) {
	pattern := strings.ReplaceAll(strings.TrimSpace(raw), `\`, `/`)
	anchored := strings.HasPrefix(pattern, "/")
	dirOnly := strings.HasSuffix(pattern, "/")

	pattern = strings.Trim(pattern, "/")
	if pattern == "" {
		return "", fmt.Errorf("%w: empty glob after normalization (%q)", ErrInvalidPattern, raw)
	}

	prefix := `(?:^|/)`
	if anchored {
		prefix = `^/?`
	}

	suffix := `$`
	if dirOnly {
		suffix = `/`
	}

	return prefix + globToRegexPath(pattern) + suffix, nil
}

// globToRegexPath converts a gitignore-like path pattern to regex body.
func globToRegexPath(pat string) string {
	var b strings.Builder

	for i := 0; i < len(pat); i++ {
		// Handle "**/" so it can match zero or more directories.
		if pat[i] == '*' && i+2 < len(pat) && pat[i+1] == '*' && pat[i+2] == '/' {
			b.WriteString(`(?:.*/)?`)
			i += 2
			continue
		}

		if next, ok := appendCharClassRegex(pat, i, &b); ok {
			i = next
			continue
		}

		c := pat[i]
		switch c {
		case '*':
			if i+1 < len(pat) && pat[i+1] == '*' {
				b.WriteString(`.*`)
				i++
				continue
			}
			b.WriteString(`[^/]*`)
		case '?':
			b.WriteString(`[^/]`)
		default:
			b.WriteString(regexEscapeByte(c))
		}
	}

	return b.String()
}

// appendCharClassRegex appends a parsed glob char class (`[...]`) as regex class.
func appendCharClassRegex(pat string, start int, b *strings.Builder) (int, bool) {
	end := findCharClassEnd(pat, start)
	if end < 0 {
		return start, false
	}

	b.WriteByte('[')

	idx := start + 1
	if idx < end && pat[idx] == '!' {
		// "[!x]" maps to regex "[^x]".
		b.WriteByte('^')
		idx++
	} else if idx < end && pat[idx] == '^' {
		b.WriteString(`\^`)
		idx++
	}

	if idx < end && pat[idx] == ']' {
		b.WriteString(`\]`)
		idx++
	}

	for ; idx < end; idx++ {
		if pat[idx] == '\\' || pat[idx] == '[' {
			b.WriteByte('\\')
		}

		b.WriteByte(pat[idx])
	}

	b.WriteByte(']')
	return end, true
}

// findCharClassEnd locates closing bracket for a glob char class.
func findCharClassEnd(pat string, start int) int {
	if start < 0 || start >= len(pat) || pat[start] != '[' {
		return -1
	}

	idx := start + 1
	if idx < len(pat) && (pat[idx] == '!' || pat[idx] == '^') {
		idx++
	}

	if idx < len(pat) && pat[idx] == ']' {
		idx++
	}

	for ; idx < len(pat); idx++ {
		if pat[idx] == ']' {
			return idx
		}
	}

	return -1
}

// regexEscapeByte escapes one byte for regexp source.
func regexEscapeByte(c byte) string {
	switch c {
	case '.', '+', '(', ')', '|', '{', '}', '[', ']', '^', '$', '\\':
		return `\` + string(c)
	default:
		return string(c)
	}
}
