// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pluginswc

package pluginswc

import (
	"errors"
	"regexp"
	"testing"
)

func mustFilter(t *testing.T, include, exclude []FilterEntry) *Filter {
	t.Helper()

	f, err := NewFilter(include, exclude, nil)
	if err != nil {
		t.Fatalf("NewFilter: %v", err)
	}

	return f
}

func TestFilterNoRules(t *testing.T) {
	t.Parallel()

	f := mustFilter(t, nil, nil)

	if !f.ShouldTransform("src/app.tsx") {
		t.Fatalf("src/app.tsx must be eligible without rules")
	}

	if !f.ShouldTransform("node_modules/any/index.js") {
		t.Fatalf("dependencies must be eligible without rules")
	}
}

func TestFilterExtensionGate(t *testing.T) {
	t.Parallel()

	f := mustFilter(t, []FilterEntry{Pattern(regexp.MustCompile("."))}, nil)

	for _, id := range []string{"src/readme.md", "src/style.css", "src/a.ts.map", "src/ts", "index.json"} {
		d := f.Decide(id)
		if d.Eligible || d.Reason != ReasonExtension {
			t.Fatalf("Decide(%q)=%+v, want extension rejection", id, d)
		}
	}

	for _, id := range []string{"a.js", "a.jsx", "a.es6", "a.es", "a.mjs", "a.ts", "a.tsx", "a.cts", "a.mts"} {
		if !f.ShouldTransform(id) {
			t.Fatalf("%s must pass the extension gate", id)
		}
	}
}

func TestFilterCustomExtensions(t *testing.T) {
	t.Parallel()

	f, err := NewFilter(nil, nil, []string{"vue", ".svelte"})
	if err != nil {
		t.Fatalf("NewFilter: %v", err)
	}

	if !f.ShouldTransform("src/App.vue") || !f.ShouldTransform("src/App.svelte") {
		t.Fatalf("custom extensions must pass the gate")
	}

	if f.ShouldTransform("src/main.ts") {
		t.Fatalf("custom extensions replace the default set")
	}
}

func TestFilterModuleInclude(t *testing.T) {
	t.Parallel()

	f := mustFilter(t, []FilterEntry{Module("my-lib")}, nil)

	if !f.ShouldTransform("node_modules/my-lib/index.js") {
		t.Fatalf("node_modules/my-lib/index.js must be eligible")
	}

	if !f.ShouldTransform("/home/u/proj/node_modules/my-lib/dist/esm/a.mjs") {
		t.Fatalf("nested my-lib file must be eligible")
	}

	d := f.Decide("node_modules/other-lib/index.js")
	if d.Eligible || d.Reason != ReasonInclude {
		t.Fatalf("other-lib decision=%+v, want include rejection", d)
	}

	if f.ShouldTransform("src/my-lib/index.js") {
		t.Fatalf("module entries must not match outside node_modules")
	}

	if f.ShouldTransform("node_modules/my-lib-extra/index.js") {
		t.Fatalf("module entries must match the full package segment")
	}
}

func TestFilterModuleNameIsLiteral(t *testing.T) {
	t.Parallel()

	f := mustFilter(t, []FilterEntry{Module("lodash.merge")}, nil)

	if !f.ShouldTransform("node_modules/lodash.merge/index.js") {
		t.Fatalf("lodash.merge must match itself")
	}

	if f.ShouldTransform("node_modules/lodashxmerge/index.js") {
		t.Fatalf("dot in module name must not act as wildcard")
	}
}

func TestFilterScopedModule(t *testing.T) {
	t.Parallel()

	f := mustFilter(t, []FilterEntry{Module(`@scope\pkg/`)}, nil)

	if !f.ShouldTransform(`C:\proj\node_modules\@scope\pkg\lib\a.ts`) {
		t.Fatalf("scoped module must match with windows separators")
	}
}

func TestFilterPatternExclude(t *testing.T) {
	t.Parallel()

	f := mustFilter(t, nil, []FilterEntry{Pattern(regexp.MustCompile("legacy"))})

	d := f.Decide("src/legacy/util.ts")
	if d.Eligible || d.Reason != ReasonExclude {
		t.Fatalf("legacy decision=%+v, want exclude rejection", d)
	}

	if !f.ShouldTransform("src/modern/util.ts") {
		t.Fatalf("src/modern/util.ts must be eligible")
	}
}

func TestFilterIncludeAndExclude(t *testing.T) {
	t.Parallel()

	f := mustFilter(t,
		[]FilterEntry{Module("my-lib"), Glob("src/**")},
		[]FilterEntry{Glob("*.test.ts"), Module("my-lib/node_modules/dep")},
	)

	cases := map[string]bool{
		"src/a.ts":                                  true,
		"src/deep/b.tsx":                            true,
		"src/a.test.ts":                             false,
		"node_modules/my-lib/a.js":                  true,
		"node_modules/my-lib/a.test.ts":             false,
		"node_modules/other/a.js":                   false,
		"lib/a.ts":                                  false,
		"node_modules/my-lib/node_modules/dep/a.js": false,
	}

	for id, want := range cases {
		if got := f.ShouldTransform(id); got != want {
			t.Fatalf("ShouldTransform(%q)=%v, want %v", id, got, want)
		}
	}
}

func TestFilterIgnoresQueryAndHash(t *testing.T) {
	t.Parallel()

	f := mustFilter(t, nil, []FilterEntry{Pattern(regexp.MustCompile(`\?raw`))})

	if !f.ShouldTransform("src/a.ts?raw") {
		t.Fatalf("query must not take part in matching")
	}

	if f.ShouldTransform("src/a.md?x=.ts") {
		t.Fatalf("query must not satisfy the extension gate")
	}

	if f.ShouldTransform("src/a.md#x.ts") {
		t.Fatalf("hash must not satisfy the extension gate")
	}
}

func TestFilterInternalModulesNeverTransformed(t *testing.T) {
	t.Parallel()

	f := mustFilter(t, []FilterEntry{Pattern(regexp.MustCompile("@vite"))}, nil)

	d := f.Decide("/@vite/client.mjs")
	if d.Eligible || d.Reason != ReasonInternal {
		t.Fatalf("internal decision=%+v, want internal rejection", d)
	}

	if f.ShouldTransform("node_modules/vite/dist/client/@vite/env.js") {
		t.Fatalf("@vite/env must never be transformed")
	}
}

func TestFilterSentinelsDoNotQualifyInclude(t *testing.T) {
	t.Parallel()

	f := mustFilter(t, []FilterEntry{Module("my-lib")}, nil)

	d := f.Decide("src/@vite/client.ts")
	if d.Reason != ReasonInclude {
		t.Fatalf("decision=%+v, want include rejection, not an include match", d)
	}
}

func TestNewFilterInvalidEntries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		include []FilterEntry
		exclude []FilterEntry
		want    error
	}{
		{include: []FilterEntry{{}}, want: ErrInvalidFilterEntry},
		{exclude: []FilterEntry{{Kind: EntryPattern}}, want: ErrInvalidFilterEntry},
		{include: []FilterEntry{Module("  ")}, want: ErrInvalidFilterEntry},
		{exclude: []FilterEntry{Glob("/")}, want: ErrInvalidPattern},
		{include: []FilterEntry{{Kind: EntryKind(99), Value: "x"}}, want: ErrInvalidFilterEntry},
	}

	for i, tc := range cases {
		if _, err := NewFilter(tc.include, tc.exclude, nil); !errors.Is(err, tc.want) {
			t.Fatalf("case %d: err=%v, want %v", i, err, tc.want)
		}
	}
}

func TestShouldTransformOneShot(t *testing.T) {
	t.Parallel()

	ok, err := ShouldTransform("node_modules/my-lib/index.js", []FilterEntry{Module("my-lib")}, nil)
	if err != nil || !ok {
		t.Fatalf("ShouldTransform=%v err=%v, want eligible", ok, err)
	}

	if _, err := ShouldTransform("a.ts", []FilterEntry{{}}, nil); !errors.Is(err, ErrInvalidFilterEntry) {
		t.Fatalf("err=%v, want ErrInvalidFilterEntry", err)
	}
}
