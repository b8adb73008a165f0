// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginswc

package pluginswc

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

const globPrefix = "glob:"

// ParseEntry parses one filter entry from its text form.
//
// Syntax:
// - "/source/flags" creates a regular expression entry (flags: i, m, s)
// - "glob:pattern" creates a glob entry
// - anything else names a dependency module
func ParseEntry(s string) (FilterEntry, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return FilterEntry{}, fmt.Errorf("%w: empty", ErrInvalidFilterEntry)
	}

	if strings.HasPrefix(s, "/") {
		return parseRegexLiteral(s)
	}

	if glob, ok := strings.CutPrefix(s, globPrefix); ok {
		glob = strings.TrimSpace(glob)
		if glob == "" {
			return FilterEntry{}, fmt.Errorf("%w: empty glob", ErrInvalidFilterEntry)
		}

		return Glob(glob), nil
	}

	return Module(s), nil
}

// ParseEntries converts dynamically typed configuration values to entries.
//
// Strings are parsed with ParseEntry, *regexp.Regexp values become pattern
// entries and FilterEntry values are kept. Any other type is rejected.
func ParseEntries(values []any) ([]FilterEntry, error) {
	entries := make([]FilterEntry, 0, len(values))
	for i, v := range values {
		var (
			entry FilterEntry
			err   error
		)

		switch val := v.(type) {
		case string:
			entry, err = ParseEntry(val)
		case *regexp.Regexp:
			if val == nil {
				err = fmt.Errorf("%w: nil pattern", ErrInvalidFilterEntry)
				break
			}
			entry = Pattern(val)
		case FilterEntry:
			entry = val
		default:
			err = fmt.Errorf("%w: only accepts strings or regular expressions, got %T", ErrInvalidFilterEntry, v)
		}

		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// ParseEntriesFile parses one entry per line from reader.
//
// Blank lines and lines starting with "#" are ignored.
func ParseEntriesFile(r io.Reader) ([]FilterEntry, error) {
	s := bufio.NewScanner(r)
	entries := make([]FilterEntry, 0, 16)

	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSpace(strings.TrimRight(s.Text(), "\r"))
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		entry, err := ParseEntry(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		entries = append(entries, entry)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan entries: %w", err)
	}

	return entries, nil
}

// ParseEntriesString parses entries from string input.
func ParseEntriesString(src string) ([]FilterEntry, error) {
	return ParseEntriesFile(strings.NewReader(src))
}

// parseRegexLiteral parses "/source/flags" into a pattern entry.
func parseRegexLiteral(s string) (FilterEntry, error) {
	end := strings.LastIndexByte(s, '/')
	if end <= 0 {
		return FilterEntry{}, fmt.Errorf("%w: unterminated expression %q", ErrInvalidPattern, s)
	}

	body, flags := s[1:end], s[end+1:]
	if body == "" {
		return FilterEntry{}, fmt.Errorf("%w: empty expression %q", ErrInvalidPattern, s)
	}

	for i := 0; i < len(flags); i++ {
		switch flags[i] {
		case 'i', 'm', 's':
		default:
			return FilterEntry{}, fmt.Errorf("%w: unsupported flag %q in %q", ErrInvalidPattern, flags[i], s)
		}
	}

	if flags != "" {
		body = "(?" + flags + ")" + body
	}

	re, err := regexp.Compile(body)
	if err != nil {
		return FilterEntry{}, fmt.Errorf("%w: compile %q: %v", ErrInvalidPattern, s, err)
	}

	return Pattern(re), nil
}
