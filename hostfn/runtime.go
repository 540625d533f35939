// Copyright © 2025 The Tanuki authors

package hostfn

import (
	"fmt"
	"io"
	"os"

	"github.com/tanukilang/tanuki/token"
)

// Profiler annotates function dispatch.  See the hostfn/x/profiler package
// for implementations backed by OpenTelemetry, OpenCensus, and pprof.
type Profiler interface {
	// IsEnabled returns true when the profiler is recording.
	IsEnabled() bool
	// Enable attaches the profiler to its runtime.
	Enable() error
	// Start begins recording an invocation of fun and returns the function
	// to stop recording it.
	Start(fun *BoundFunction) func()
	// Complete finalizes profiling.
	Complete() error
}

// Runtime holds state shared by a family of Env values: the function
// registry, an optional dispatch profiler, and the stream for debugging
// output.
type Runtime struct {
	Registry *Registry
	Profiler Profiler
	Stderr   io.Writer
}

// StandardRuntime returns a Runtime with an empty registry and Stderr set
// to os.Stderr.
func StandardRuntime() *Runtime {
	return &Runtime{
		Registry: NewRegistry(),
		Stderr:   os.Stderr,
	}
}

// Env is the execution context handed to host callables declaring a
// context parameter.
type Env struct {
	Runtime *Runtime
}

// NewEnv returns an Env backed by rt, or by a standard runtime when rt is
// nil.
func NewEnv(rt *Runtime) *Env {
	if rt == nil {
		rt = StandardRuntime()
	}
	return &Env{Runtime: rt}
}

func (env *Env) profiler() Profiler {
	if env == nil || env.Runtime == nil {
		return nil
	}
	return env.Runtime.Profiler
}

// Invoke looks a function up in the runtime registry and invokes it.
func (env *Env) Invoke(name string, caller *token.Location, args Args) (interface{}, error) {
	fun := env.Runtime.Registry.Lookup(name)
	if fun == nil {
		return nil, fmt.Errorf("unbound function: %v", name)
	}
	return fun.Invoke(env, caller, args)
}

// InvokeAsync looks a function up in the runtime registry and invokes it
// asynchronously.
func (env *Env) InvokeAsync(name string, caller *token.Location, args Args) (*Future, error) {
	fun := env.Runtime.Registry.Lookup(name)
	if fun == nil {
		return nil, fmt.Errorf("unbound function: %v", name)
	}
	return fun.InvokeAsync(env, caller, args)
}
