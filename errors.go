// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginswc

package pluginswc

import "errors"

// Sentinel errors for pluginswc operations.
var (
	// ErrInvalidFilterEntry indicates an include/exclude entry that is neither
	// a module name, a regular expression nor a glob.
	ErrInvalidFilterEntry = errors.New("invalid filter entry")
	// ErrInvalidPattern indicates a filter pattern that failed to compile.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidExtension indicates malformed extension gate input.
	ErrInvalidExtension = errors.New("invalid extension")
	// ErrNilTransformer indicates plugin options without a transformer.
	ErrNilTransformer = errors.New("transformer is nil")
	// ErrTransformFailed indicates the external transformer rejected the source.
	ErrTransformFailed = errors.New("transform failed")
)
