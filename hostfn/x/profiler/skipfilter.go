// Copyright © 2025 The Tanuki authors

package profiler

import (
	"regexp"

	"github.com/tanukilang/tanuki/hostfn"
)

type SkipFilter func(fun *hostfn.BoundFunction) bool

// WithDocFilter filters to only include spans for functions whose doc
// string denotes tracing.
func WithDocFilter() Option {
	return WithSkipFilter(docSkipFilter)
}

// WithSkipFilter sets the filter for tracing spans.
func WithSkipFilter(skipFilter SkipFilter) Option {
	return func(p *profiler) {
		p.skipFilter = skipFilter
	}
}

// DocTrace is a magic string used to enable tracing in a profiler
// configured WithDocFilter.  All functions with a doc string that contains
// this string will be traced.
const DocTrace = "@trace"

var docTraceRegExp = regexp.MustCompile(DocTrace)

func docSkipFilter(fun *hostfn.BoundFunction) bool {
	docStr := fun.Doc()
	if docStr == "" {
		return true
	}
	// do not skip docs that include the trace constant
	return !docTraceRegExp.MatchString(docStr)
}
