// Copyright © 2025 The Tanuki authors

// Package callfile runs scripted sequences of host function calls loaded
// from YAML documents.  Call files drive smoke tests and the command line
// runner without requiring a full template front end.
package callfile

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/tanukilang/tanuki/hostfn"
	"github.com/tanukilang/tanuki/token"
)

// Call is one scripted invocation.  Want is only checked when the document
// supplies it, so a call may be run purely for its side effects.
type Call struct {
	Fn      string
	Args    []interface{}
	Named   map[string]interface{}
	Want    interface{}
	HasWant bool
	Line    int
}

// UnmarshalYAML decodes a call mapping and records its source line so
// failures can point back into the document.
func (c *Call) UnmarshalYAML(node *yaml.Node) error {
	// Decode applied to a node ignores the decoder's KnownFields setting
	// so the keys have to be checked by hand.
	for i := 0; i+1 < len(node.Content); i += 2 {
		switch key := node.Content[i].Value; key {
		case "fn", "args", "named", "want":
		default:
			return fmt.Errorf("line %d: unknown field %q", node.Content[i].Line, key)
		}
	}
	// The want field decodes into a value yaml.Node so presence survives
	// the unmarshal; a pointer field would make the decoder unmarshal the
	// scalar into the Node struct itself and fail.
	var raw struct {
		Fn    string                 `yaml:"fn"`
		Args  []interface{}          `yaml:"args"`
		Named map[string]interface{} `yaml:"named"`
		Want  yaml.Node              `yaml:"want"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if raw.Fn == "" {
		return fmt.Errorf("line %d: call is missing fn", node.Line)
	}
	c.Fn = raw.Fn
	c.Args = raw.Args
	c.Named = raw.Named
	c.Line = node.Line
	if raw.Want.Kind != 0 {
		c.HasWant = true
		if err := raw.Want.Decode(&c.Want); err != nil {
			return err
		}
	}
	return nil
}

// Script is a parsed call file.
type Script struct {
	Path  string
	Calls []*Call
}

type document struct {
	Calls []*Call `yaml:"calls"`
}

// Load reads and parses the call file at path.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(path, f)
}

// Read parses a call file from r.  The path is only used in locations
// reported for failing calls.
func Read(path string, r io.Reader) (*Script, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(doc.Calls) == 0 {
		return nil, fmt.Errorf("%s: no calls", path)
	}
	return &Script{Path: path, Calls: doc.Calls}, nil
}

// Run invokes every call in the script against env, stopping at the first
// call that fails or returns a value other than its want.
func (s *Script) Run(env *hostfn.Env) error {
	for _, c := range s.Calls {
		if err := s.run(env, c); err != nil {
			return err
		}
	}
	return nil
}

func (s *Script) run(env *hostfn.Env, c *Call) error {
	loc := &token.Location{File: s.Path, Line: c.Line, Col: 1}
	v, err := env.Invoke(c.Fn, loc, hostfn.Args{
		Positional: c.Args,
		Named:      namedArgs(c.Named),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", c.Fn, err)
	}
	if c.HasWant && !reflect.DeepEqual(v, c.Want) {
		return fmt.Errorf("%s: %s: got %v, want %v", loc, c.Fn, v, c.Want)
	}
	return nil
}

// namedArgs flattens a YAML mapping into named arguments.  The names are
// sorted so a script runs the same way every time.
func namedArgs(m map[string]interface{}) []hostfn.NamedArg {
	if len(m) == 0 {
		return nil
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	named := make([]hostfn.NamedArg, len(names))
	for i, name := range names {
		named[i] = hostfn.NamedArg{Name: name, Value: m[name]}
	}
	return named
}
