// Copyright © 2025 The Tanuki authors

// Package profiler annotates host function dispatch with tracing and
// profiling metadata.  Annotators are available for OpenTelemetry,
// OpenCensus, and pprof goroutine labels.
package profiler

import (
	"fmt"
	"strings"

	"github.com/tanukilang/tanuki/hostfn"
)

// profiler is a minimal hostfn.Profiler
type profiler struct {
	runtime    *hostfn.Runtime
	enabled    bool
	skipFilter SkipFilter
	funLabeler FunLabeler
}

var _ hostfn.Profiler = &profiler{}

func (p *profiler) IsEnabled() bool {
	return p.enabled
}

type Option func(*profiler)

func (p *profiler) applyConfigs(opts ...Option) {
	for _, opt := range opts {
		opt(p)
	}
}

func (p *profiler) Enable() error {
	if p.enabled {
		return fmt.Errorf("profiler already enabled")
	}
	p.enabled = true
	return nil
}

func (p *profiler) Start(fun *hostfn.BoundFunction) func() {
	return func() {}
}

func (p *profiler) Complete() error {
	return nil
}

// prettyFunName returns a pretty name and original name for a fun.  If there
// is no pretty name, then the pretty name is the original name.
func (p *profiler) prettyFunName(fun *hostfn.BoundFunction) (string, string) {
	origLabel := fun.Name()
	if origLabel == "" {
		origLabel = fun.FID()
	}
	prettyLabel := origLabel
	if p.funLabeler != nil {
		prettyLabel = p.funLabeler(p.runtime, fun)
	}
	if prettyLabel == "" {
		prettyLabel = origLabel
	}
	return prettyLabel, origLabel
}

// skipTrace is a helper function to decide whether to skip tracing.
func (p *profiler) skipTrace(fun *hostfn.BoundFunction) bool {
	return !p.enabled || fun == nil || p.skipFilter != nil && p.skipFilter(fun)
}

// funNamespace returns the package portion of a qualified function name.
func funNamespace(name string) string {
	if i := strings.Index(name, ":"); i > 0 {
		return name[:i]
	}
	return ""
}
