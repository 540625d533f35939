// Copyright © 2025 The Tanuki authors

package libseq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanukilang/tanuki/hostfn"
	"github.com/tanukilang/tanuki/hostfntest"
)

func TestSeqBuiltins(t *testing.T) {
	env := hostfntest.NewEnv(t)
	assert.Equal(t, []interface{}{1, 2, 3}, hostfntest.MustCall(t, env, "seq:list", 1, 2, 3))
	assert.Equal(t, []interface{}{}, hostfntest.MustCall(t, env, "seq:list"))
	assert.Equal(t, 3, hostfntest.MustCall(t, env, "seq:len", []interface{}{1, 2, 3}))
	assert.Equal(t, 5, hostfntest.MustCall(t, env, "seq:len", "hello"))
	assert.Equal(t, 2, hostfntest.MustCall(t, env, "seq:nth", []interface{}{1, 2, 3}, 1))
	assert.Equal(t, []interface{}{3, 2, 1},
		hostfntest.MustCall(t, env, "seq:reverse", []interface{}{1, 2, 3}))
	assert.Equal(t, []interface{}{1, 2, 3, 4},
		hostfntest.MustCall(t, env, "seq:concat", []interface{}{1, 2}, []interface{}{3, 4}))
	assert.Equal(t, []interface{}{0, 1, 2}, hostfntest.MustCall(t, env, "seq:range", 0, 3))
	assert.Equal(t, []interface{}{3, 2, 1}, hostfntest.MustCall(t, env, "seq:range", 3, 0, -1))
}

func TestNthDefault(t *testing.T) {
	env := hostfntest.NewEnv(t)
	assert.Nil(t, hostfntest.MustCall(t, env, "seq:nth", []interface{}{1}, 5))
	v, err := env.Invoke("seq:nth", nil, hostfn.Args{
		Positional: []interface{}{[]interface{}{1}, 5},
		Named:      []hostfn.NamedArg{{Name: "default", Value: "fallback"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "fallback", v)
}

func TestRangeZeroStep(t *testing.T) {
	env := hostfntest.NewEnv(t)
	_, err := env.Invoke("seq:range", nil, hostfn.Args{Positional: []interface{}{0, 3, 0}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step cannot be zero")
}
