// Copyright © 2025 The Tanuki authors

package profiler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opencensus.io/trace"

	"github.com/tanukilang/tanuki/hostfn"
	"github.com/tanukilang/tanuki/hostfn/funclib"
	"github.com/tanukilang/tanuki/hostfn/x/profiler"
)

type spanCollector struct {
	spans []*trace.SpanData
}

func (c *spanCollector) ExportSpan(s *trace.SpanData) {
	c.spans = append(c.spans, s)
}

func TestNewOpenCensusAnnotator(t *testing.T) {
	collector := &spanCollector{}
	trace.RegisterExporter(collector)
	defer trace.UnregisterExporter(collector)
	trace.ApplyConfig(trace.Config{DefaultSampler: trace.AlwaysSample()})

	rt := hostfn.StandardRuntime()
	require.NoError(t, funclib.LoadLibrary(rt.Registry))
	oca := profiler.NewOpenCensusAnnotator(rt, context.Background())
	assert.NoError(t, oca.Enable())
	env := hostfn.NewEnv(rt)

	_, err := env.Invoke("string:trim", nil, hostfn.Args{Positional: []interface{}{"  x  "}})
	require.NoError(t, err)
	_, err = env.Invoke("math:floor", nil, hostfn.Args{Positional: []interface{}{1.9}})
	require.NoError(t, err)
	assert.NoError(t, oca.Complete())

	require.GreaterOrEqual(t, len(collector.spans), 2)
	assert.Equal(t, "string:trim", collector.spans[0].Name)
}
