// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginswc

package pluginswc

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// internalModules are host virtual modules that must never be transformed.
var internalModules = []string{"@vite/client", "@vite/env"}

var internalRE = regexp.MustCompile(joinAlternation(quoteAll(internalModules)))

// Filter evaluates eligibility decisions against compiled include/exclude lists.
type Filter struct {
	// extensionRE is the source extension gate.
	extensionRE *regexp.Regexp
	// includeRE is nil when include list is empty.
	includeRE *regexp.Regexp
	// excludeRE is nil when exclude list is empty.
	excludeRE *regexp.Regexp
}

// NewFilter compiles include and exclude entries into a filter.
//
// Empty extensions use DefaultExtensions. Invalid entries fail here, never
// during per-file evaluation.
func NewFilter(include, exclude []FilterEntry, extensions []string) (*Filter, error) {
	gate, err := extensionPattern(extensions)
	if err != nil {
		return nil, err
	}

	extensionRE, err := regexp.Compile(gate)
	if err != nil {
		return nil, fmt.Errorf("%w: extensions: %v", ErrInvalidExtension, err)
	}

	includeRE, err := compileEntries(include)
	if err != nil {
		return nil, fmt.Errorf("include: %w", err)
	}

	excludeRE, err := compileEntries(exclude)
	if err != nil {
		return nil, fmt.Errorf("exclude: %w", err)
	}

	return &Filter{
		extensionRE: extensionRE,
		includeRE:   includeRE,
		excludeRE:   excludeRE,
	}, nil
}

// ShouldTransform is the one-shot form of Filter.ShouldTransform using
// DefaultExtensions.
func ShouldTransform(id string, include, exclude []FilterEntry) (bool, error) {
	f, err := NewFilter(include, exclude, nil)
	if err != nil {
		return false, err
	}

	return f.ShouldTransform(id), nil
}

// ExtensionFilter returns the extension gate source.
func (f *Filter) ExtensionFilter() string {
	return f.extensionRE.String()
}

// Decide returns deterministic eligibility decision for one id.
//
// Decision policy:
// - no recognized source extension: not eligible
// - non-empty include list without a match: not eligible
// - exclude list match: not eligible
// - host internal module: not eligible
// - otherwise eligible
func (f *Filter) Decide(id string) Decision {
	candidate := normalizeID(id)
	res := Decision{ID: candidate}

	switch {
	case !f.extensionRE.MatchString(candidate):
		res.Reason = ReasonExtension
	case f.includeRE != nil && !f.includeRE.MatchString(candidate):
		res.Reason = ReasonInclude
	case f.excludeRE != nil && f.excludeRE.MatchString(candidate):
		res.Reason = ReasonExclude
	case internalRE.MatchString(candidate):
		res.Reason = ReasonInternal
	default:
		res.Reason = ReasonEligible
		res.Eligible = true
	}

	return res
}

// ShouldTransform reports whether id is eligible for transformation.
func (f *Filter) ShouldTransform(id string) bool {
	return f.Decide(id).Eligible
}

// compileEntries joins entries into one alternation, nil for an empty list.
func compileEntries(entries []FilterEntry) (*regexp.Regexp, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	sources := make([]string, 0, len(entries))
	for i, entry := range entries {
		src, err := entrySource(entry)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		sources = append(sources, src)
	}

	re, err := regexp.Compile(joinAlternation(sources))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	return re, nil
}

// entrySource converts one entry into regexp source.
func entrySource(entry FilterEntry) (string, error) {
	switch entry.Kind {
	case EntryModule:
		name := strings.Trim(strings.ReplaceAll(strings.TrimSpace(entry.Value), `\`, `/`), "/")
		if name == "" {
			return "", fmt.Errorf("%w: empty module name", ErrInvalidFilterEntry)
		}

		return regexp.QuoteMeta(path.Join("node_modules", name) + "/"), nil
	case EntryPattern:
		if entry.Pattern == nil {
			return "", fmt.Errorf("%w: nil pattern", ErrInvalidFilterEntry)
		}

		return entry.Pattern.String(), nil
	case EntryGlob:
		return globSource(entry.Value)
	default:
		return "", fmt.Errorf("%w: unsupported kind %d", ErrInvalidFilterEntry, entry.Kind)
	}
}

// joinAlternation groups every source so flags and anchors stay local.
func joinAlternation(sources []string) string {
	var b strings.Builder
	for i, src := range sources {
		if i > 0 {
			b.WriteByte('|')
		}

		b.WriteString("(?:")
		b.WriteString(src)
		b.WriteByte(')')
	}

	return b.String()
}

// quoteAll returns regexp-quoted copies of literals.
func quoteAll(literals []string) []string {
	out := make([]string, 0, len(literals))
	for _, lit := range literals {
		out = append(out, regexp.QuoteMeta(lit))
	}

	return out
}
