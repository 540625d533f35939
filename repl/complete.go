// Copyright © 2025 The Tanuki authors

package repl

import (
	"sort"
	"strings"

	"github.com/tanukilang/tanuki/hostfn"
)

// functionCompleter implements readline.AutoCompleter by enumerating
// function names registered with the console's runtime.
type functionCompleter struct {
	env *hostfn.Env
}

func (c *functionCompleter) Do(line []rune, pos int) ([][]rune, int) {
	// Extract the word being typed (backwards from cursor to whitespace or
	// an open bracket).
	start := pos
	for start > 0 {
		ch := line[start-1]
		if ch == ' ' || ch == '\t' || ch == '[' || ch == '\n' {
			break
		}
		start--
	}
	prefix := string(line[start:pos])
	if prefix == "" {
		return nil, 0
	}

	names := c.env.Runtime.Registry.Names()
	sort.Strings(names)

	// Build completions: each entry is the suffix to append.
	var result [][]rune
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			result = append(result, []rune(name[len(prefix):]))
		}
	}
	return result, len(prefix)
}
