// Copyright © 2025 The Tanuki authors

package cmd

import (
	"github.com/tanukilang/tanuki/hostfn"
	"github.com/tanukilang/tanuki/hostfn/funclib"
)

// Option configures an exported command factory (DocCommand, CallCommand,
// RunCommand).
type Option func(*cmdConfig)

type cmdConfig struct {
	registry *hostfn.Registry
	env      *hostfn.Env
}

// WithRegistry injects a function registry. Embedders use this to expose
// their own host functions through the CLI alongside the standard library.
func WithRegistry(reg *hostfn.Registry) Option {
	return func(c *cmdConfig) { c.registry = reg }
}

// WithEnv injects a fully configured Env, including its runtime registry
// and profiler.
func WithEnv(env *hostfn.Env) Option {
	return func(c *cmdConfig) { c.env = env }
}

// resolveEnv returns the best available environment from the options.  When
// neither an env nor a registry was provided a standard runtime with the
// standard function library is built.
func (c *cmdConfig) resolveEnv() (*hostfn.Env, error) {
	if c.env != nil {
		return c.env, nil
	}
	if c.registry != nil {
		rt := hostfn.StandardRuntime()
		rt.Registry = c.registry
		return hostfn.NewEnv(rt), nil
	}
	rt := hostfn.StandardRuntime()
	if err := funclib.LoadLibrary(rt.Registry); err != nil {
		return nil, err
	}
	return hostfn.NewEnv(rt), nil
}
