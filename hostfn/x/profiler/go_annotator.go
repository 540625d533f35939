// Copyright © 2025 The Tanuki authors

package profiler

import (
	"context"
	"runtime/pprof"

	"github.com/tanukilang/tanuki/hostfn"
)

// This profiler type appends tags to pprof output if pprof is enabled.
// Starting pprof is left to the user since doing it here would be more
// annoying than useful in the majority of contexts where this could be
// used.
type pprofAnnotator struct {
	profiler
	currentContext context.Context
}

var _ hostfn.Profiler = &pprofAnnotator{}

func NewPprofAnnotator(runtime *hostfn.Runtime, parentContext context.Context, opts ...Option) *pprofAnnotator {
	p := &pprofAnnotator{
		profiler: profiler{
			runtime: runtime,
		},
		currentContext: parentContext,
	}
	p.profiler.applyConfigs(opts...)
	return p
}

func (p *pprofAnnotator) Enable() error {
	p.runtime.Profiler = p
	if p.currentContext == nil {
		p.currentContext = context.Background()
	}
	return p.profiler.Enable()
}

func (p *pprofAnnotator) Complete() error {
	pprof.SetGoroutineLabels(context.Background())
	return nil
}

func (p *pprofAnnotator) Start(fun *hostfn.BoundFunction) func() {
	if p.skipTrace(fun) {
		return func() {}
	}
	oldContext := p.currentContext
	prettyLabel, _ := p.prettyFunName(fun)
	p.currentContext = pprof.WithLabels(p.currentContext, pprof.Labels("function", prettyLabel))
	// The labels apply to the current goroutine and propagate to any
	// goroutines it starts.
	pprof.SetGoroutineLabels(p.currentContext)

	return func() {
		p.currentContext = oldContext
		pprof.SetGoroutineLabels(p.currentContext)
	}
}
