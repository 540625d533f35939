// Copyright © 2025 The Tanuki authors

package repl

import (
	"testing"

	"github.com/tanukilang/tanuki/hostfn"
	"github.com/tanukilang/tanuki/hostfn/funclib"
)

func TestFunctionCompleter(t *testing.T) {
	rt := hostfn.StandardRuntime()
	if err := funclib.LoadLibrary(rt.Registry); err != nil {
		t.Fatal(err)
	}
	c := &functionCompleter{env: hostfn.NewEnv(rt)}

	// "string:u" should match string:uppercase.
	candidates, offset := c.Do([]rune("string:u"), 8)
	if offset != 8 {
		t.Errorf("offset = %d, want 8", offset)
	}
	if len(candidates) != 1 || string(candidates[0]) != "ppercase" {
		t.Errorf("candidates = %q, want [ppercase]", candidates)
	}

	// Completion applies to the word under the cursor, not the whole line.
	candidates, offset = c.Do([]rune("seq:concat [1] seq:r"), 20)
	if offset != 5 {
		t.Errorf("offset = %d, want 5", offset)
	}
	if len(candidates) == 0 {
		t.Error("expected completions for 'seq:r', got none")
	}

	// "zzz-nonexistent" should have no completions.
	candidates, _ = c.Do([]rune("zzz-nonexistent"), 15)
	if len(candidates) != 0 {
		t.Errorf("expected no completions for 'zzz-nonexistent', got %d", len(candidates))
	}
}
