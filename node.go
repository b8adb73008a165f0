// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginswc

package pluginswc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

// nodeScript reads {code, options} from stdin and writes {code, map} to stdout.
const nodeScript = `
const swc = require('@swc/core');
let input = '';
process.stdin.setEncoding('utf8');
process.stdin.on('data', (chunk) => { input += chunk; });
process.stdin.on('end', () => {
  const req = JSON.parse(input);
  const out = swc.transformSync(req.code, req.options) || {};
  process.stdout.write(JSON.stringify({ code: out.code || '', map: out.map || '' }));
});
`

// NodeTransformer runs @swc/core through a node process.
//
// One process is spawned per file; @swc/core must be resolvable from Dir.
type NodeTransformer struct {
	// Binary is the node executable. Defaults to "node".
	Binary string
	// Dir is the working directory, usually the project root.
	Dir string
}

type nodeRequest struct {
	Options map[string]any `json:"options"`
	Code    string         `json:"code"`
}

// Transform implements Transformer.
func (t NodeTransformer) Transform(ctx context.Context, req TransformRequest) (*TransformOutput, error) {
	payload, err := json.Marshal(nodeRequest{Code: req.Code, Options: req.Options})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	binary := t.Binary
	if binary == "" {
		binary = "node"
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, "-e", nodeScript)
	cmd.Dir = t.Dir
	cmd.Stdin = bytes.NewReader(payload)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}

		return nil, fmt.Errorf("%w: %s", ErrTransformFailed, msg)
	}

	var out TransformOutput
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		return nil, fmt.Errorf("%w: decode output: %v", ErrTransformFailed, err)
	}

	return &out, nil
}
