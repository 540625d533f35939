// Copyright © 2025 The Tanuki authors

package hostfn_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanukilang/tanuki/hostfn"
)

func identityDef(name string) *hostfn.Def {
	return &hostfn.Def{
		Name:    name,
		Returns: hostfn.TAny,
		Formals: hostfn.Formals(hostfn.P("v")),
		Fn: func(args []interface{}) (interface{}, error) {
			return args[0], nil
		},
	}
}

func TestRegistry(t *testing.T) {
	reg := hostfn.NewRegistry()
	for _, name := range []string{"c", "a", "b"} {
		_, err := reg.Register(nil, identityDef(name))
		require.NoError(t, err)
	}
	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, []string{"c", "a", "b"}, reg.Names())
	assert.NotNil(t, reg.Lookup("a"))
	assert.Nil(t, reg.Lookup("zz"))

	_, err := reg.Register(nil, identityDef("a"))
	require.Error(t, err)
}

func TestEnvInvokeUnbound(t *testing.T) {
	env := hostfn.NewEnv(nil)
	_, err := env.Invoke("missing", nil, hostfn.Args{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unbound function")
}

func TestConcurrentInvocation(t *testing.T) {
	// The same descriptor and bound function may be used from many
	// evaluation goroutines with no coordination.
	rt := hostfn.StandardRuntime()
	fun, err := rt.Registry.Register(nil, identityDef("id"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			env := hostfn.NewEnv(rt)
			v, err := fun.Invoke(env, nil, hostfn.Args{Positional: []interface{}{i}})
			assert.NoError(t, err)
			assert.Equal(t, i, v)
		}(i)
	}
	wg.Wait()
}
