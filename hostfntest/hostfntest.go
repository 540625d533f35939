// Copyright © 2025 The Tanuki authors

// Package hostfntest provides helpers for testing code built on the
// hostfn runtime.
package hostfntest

import (
	"fmt"
	"testing"

	"github.com/tanukilang/tanuki/hostfn"
	"github.com/tanukilang/tanuki/hostfn/funclib"
)

// Runner builds test environments.
type Runner struct {
	// Load initializes the registry for the test environment.  When Load is
	// nil funclib.LoadLibrary is used.
	Load func(*hostfn.Registry) error
}

// NewEnv returns an env backed by a fresh runtime whose registry was
// initialized by the runner's loader and whose debug output goes to the
// test log.
func (r *Runner) NewEnv(t testing.TB) (*hostfn.Env, error) {
	rt := hostfn.StandardRuntime()
	rt.Stderr = NewLogger(t)
	load := r.Load
	if load == nil {
		load = funclib.LoadLibrary
	}
	if err := load(rt.Registry); err != nil {
		return nil, fmt.Errorf("failed to initialize function registry: %v", err)
	}
	return hostfn.NewEnv(rt), nil
}

// NewEnv returns a test env loaded with the standard function library,
// failing the test on initialization errors.
func NewEnv(t testing.TB) *hostfn.Env {
	t.Helper()
	r := &Runner{}
	env, err := r.NewEnv(t)
	if err != nil {
		t.Fatal(err)
	}
	return env
}

// MustCall invokes a registered function with positional arguments and
// fails the test on any error.
func MustCall(t testing.TB, env *hostfn.Env, name string, args ...interface{}) interface{} {
	t.Helper()
	v, err := env.Invoke(name, nil, hostfn.Args{Positional: args})
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	return v
}
