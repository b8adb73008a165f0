// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginswc

package pluginswc

import (
	"context"
	"fmt"
	"maps"
)

// TransformRequest is one transformer call.
type TransformRequest struct {
	// Options are the caller options with the forced overlay applied.
	Options map[string]any
	// Code is the source text.
	Code string
	// Path is the cleaned module id, used for diagnostics.
	Path string
}

// TransformOutput is what the transformer produced.
type TransformOutput struct {
	Code string `json:"code"`
	Map  string `json:"map,omitempty"`
}

// Transformer runs the external source-to-source transform.
type Transformer interface {
	Transform(ctx context.Context, req TransformRequest) (*TransformOutput, error)
}

// TransformerFunc adapts a function to Transformer.
type TransformerFunc func(ctx context.Context, req TransformRequest) (*TransformOutput, error)

// Transform calls f.
func (f TransformerFunc) Transform(ctx context.Context, req TransformRequest) (*TransformOutput, error) {
	return f(ctx, req)
}

// MergeTransformOptions returns a shallow copy of opts with the decorator
// syntax forced.
//
// "jsc.parser" and "jsc.transform" are always replaced; other "jsc" keys and
// every other top-level option pass through. The input map is not modified.
func MergeTransformOptions(opts map[string]any) map[string]any {
	out := make(map[string]any, len(opts)+1)
	maps.Copy(out, opts)

	jsc := make(map[string]any, 4)
	if callerJSC, ok := opts["jsc"].(map[string]any); ok {
		maps.Copy(jsc, callerJSC)
	}

	jsc["parser"] = map[string]any{
		"syntax":                 "ecmascript",
		"decorators":             true,
		"decoratorsBeforeExport": true,
	}
	jsc["transform"] = map[string]any{
		"legacyDecorator":   true,
		"decoratorMetadata": true,
	}
	out["jsc"] = jsc

	return out
}

// runTransform invokes t exactly once. Missing output degrades to empty code.
func runTransform(ctx context.Context, t Transformer, code, id string, opts map[string]any) (*Result, error) {
	out, err := t.Transform(ctx, TransformRequest{
		Code:    code,
		Path:    id,
		Options: MergeTransformOptions(opts),
	})
	if err != nil {
		return nil, fmt.Errorf("transform %s: %w", id, err)
	}

	if out == nil {
		return &Result{}, nil
	}

	return &Result{Code: out.Code, Map: out.Map}, nil
}
