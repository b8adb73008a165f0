// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginswc

package pluginswc

import (
	"log/slog"
	"regexp"

	"github.com/prometheus/client_golang/prometheus"
)

// EntryKind is a filter entry variant.
type EntryKind uint8

const (
	// EntryUnknown is unset/invalid kind placeholder.
	EntryUnknown EntryKind = iota
	// EntryModule matches files inside "node_modules/<name>/".
	EntryModule
	// EntryPattern matches with a precompiled regular expression.
	EntryPattern
	// EntryGlob matches with a gitignore-like glob.
	EntryGlob
)

// String returns the kind name.
func (k EntryKind) String() string {
	switch k {
	case EntryModule:
		return "module"
	case EntryPattern:
		return "pattern"
	case EntryGlob:
		return "glob"
	default:
		return "unknown"
	}
}

// FilterEntry is one include or exclude rule.
type FilterEntry struct {
	// Pattern is set for EntryPattern.
	Pattern *regexp.Regexp
	// Value is the module name for EntryModule and the glob for EntryGlob.
	Value string
	// Kind selects the matching strategy.
	Kind EntryKind
}

// Module returns an entry matching files of the named dependency.
func Module(name string) FilterEntry {
	return FilterEntry{Kind: EntryModule, Value: name}
}

// Pattern returns an entry matching ids with re.
func Pattern(re *regexp.Regexp) FilterEntry {
	return FilterEntry{Kind: EntryPattern, Pattern: re}
}

// Glob returns an entry matching ids with a gitignore-like glob.
func Glob(pattern string) FilterEntry {
	return FilterEntry{Kind: EntryGlob, Value: pattern}
}

// String returns the entry in ParseEntry syntax.
func (e FilterEntry) String() string {
	switch e.Kind {
	case EntryModule:
		return e.Value
	case EntryPattern:
		if e.Pattern == nil {
			return "//"
		}
		return "/" + e.Pattern.String() + "/"
	case EntryGlob:
		return globPrefix + e.Value
	default:
		return "<invalid>"
	}
}

// Apply is the host run mode the plugin is active in.
//
// The value is passed through to the host untouched.
type Apply string

const (
	// ApplyAlways activates the plugin for every host command.
	ApplyAlways Apply = ""
	// ApplyServe activates the plugin for the dev server only.
	ApplyServe Apply = "serve"
	// ApplyBuild activates the plugin for production builds only.
	ApplyBuild Apply = "build"
)

// Matches reports whether the plugin is active for host command.
func (a Apply) Matches(command string) bool {
	return a == ApplyAlways || string(a) == command
}

// Options configures the plugin.
type Options struct {
	// Transformer runs the external source-to-source transform. Required.
	Transformer Transformer `json:"-" yaml:"-"`
	// ReadFile reads pre-bundled dependency files. Defaults to os.ReadFile.
	ReadFile func(name string) ([]byte, error) `json:"-" yaml:"-"`
	// Logger receives decision logs. Defaults to the process logger.
	Logger *slog.Logger `json:"-" yaml:"-"`
	// Registerer receives plugin metrics. Nil keeps metrics unregistered.
	Registerer prometheus.Registerer `json:"-" yaml:"-"`
	// TransformOptions are passed to the transformer under the forced overlay.
	TransformOptions map[string]any `json:"transform_options,omitempty" yaml:"transform_options,omitempty"`
	// Apply scopes the plugin to host run modes.
	Apply Apply `json:"apply,omitempty" yaml:"apply,omitempty"`
	// Include limits transformation to matching ids when non-empty.
	Include []FilterEntry `json:"-" yaml:"-"`
	// Exclude skips matching ids.
	Exclude []FilterEntry `json:"-" yaml:"-"`
	// Extensions overrides DefaultExtensions when non-empty.
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// Reason explains an eligibility decision.
type Reason string

const (
	// ReasonEligible means the id passed every check.
	ReasonEligible Reason = "ok"
	// ReasonExtension means the id has no recognized source extension.
	ReasonExtension Reason = "extension"
	// ReasonInclude means a non-empty include list did not match.
	ReasonInclude Reason = "include"
	// ReasonExclude means the exclude list matched.
	ReasonExclude Reason = "exclude"
	// ReasonInternal means the id is a host internal module.
	ReasonInternal Reason = "internal"
)

// Decision is a deterministic eligibility result for one id.
type Decision struct {
	// ID is the normalized id the decision was made on.
	ID string `json:"id" yaml:"id"`
	// Reason names the check that decided.
	Reason Reason `json:"reason" yaml:"reason"`
	// Eligible reports whether the id should be transformed.
	Eligible bool `json:"eligible" yaml:"eligible"`
}

// Result is the outcome shared by both hooks for an eligible file.
type Result struct {
	// Code is the transformed source; empty when the transformer yielded none.
	Code string
	// Map is the source map, if the transformer produced one.
	Map string
}

// TransformResult is the bundler transform hook return value.
type TransformResult struct {
	Code string `json:"code"`
	Map  string `json:"map,omitempty"`
}
