// Copyright © 2025 The Tanuki authors

package hostfn_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanukilang/tanuki/hostfn"
	"github.com/tanukilang/tanuki/token"
)

func mustCreate(t *testing.T, target interface{}, def *hostfn.Def) *hostfn.BoundFunction {
	t.Helper()
	fun, err := hostfn.Create(target, def)
	require.NoError(t, err)
	return fun
}

func TestInvokeSimple(t *testing.T) {
	fun := mustCreate(t, nil, &hostfn.Def{
		Name:    "concat",
		Returns: hostfn.TString,
		Formals: hostfn.Formals(hostfn.P("a"), hostfn.P("b")),
		Fn: func(args []interface{}) (interface{}, error) {
			return args[0].(string) + args[1].(string), nil
		},
	})
	env := hostfn.NewEnv(nil)
	v, err := fun.Invoke(env, nil, hostfn.Args{Positional: []interface{}{"foo", "bar"}})
	require.NoError(t, err)
	assert.Equal(t, "foobar", v)
}

func TestInvokeContextAndSpan(t *testing.T) {
	var gotEnv *hostfn.Env
	var gotLoc *token.Location
	fun := mustCreate(t, nil, &hostfn.Def{
		Name:    "where",
		Returns: hostfn.TString,
		Formals: hostfn.Formals(hostfn.Context(), hostfn.Span(), hostfn.P("a")),
		Fn: func(env *hostfn.Env, caller *token.Location, args []interface{}) (interface{}, error) {
			gotEnv = env
			gotLoc = caller
			return args[0], nil
		},
	})
	env := hostfn.NewEnv(nil)
	loc := &token.Location{File: "test", Line: 3, Col: 9}
	v, err := fun.Invoke(env, loc, hostfn.Args{Positional: []interface{}{"v"}})
	require.NoError(t, err)
	assert.Equal(t, "v", v)
	assert.Same(t, env, gotEnv)
	assert.Same(t, loc, gotLoc)
}

func TestInvokeVariadicAssembly(t *testing.T) {
	fun := mustCreate(t, nil, &hostfn.Def{
		Name:    "tail",
		Returns: hostfn.TList,
		Formals: hostfn.Formals(hostfn.P("first"), hostfn.Rest("rest")),
		Fn: func(args []interface{}) (interface{}, error) {
			// The tail arrives as one sequence in the final slot.
			return args[1], nil
		},
	})
	env := hostfn.NewEnv(nil)
	v, err := fun.Invoke(env, nil, hostfn.Args{Positional: []interface{}{1, 2, 3, 4}})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{2, 3, 4}, v)
}

func TestInvokeErrorPropagatesVerbatim(t *testing.T) {
	sentinel := errors.New("boom")
	fun := mustCreate(t, nil, &hostfn.Def{
		Name:    "fail",
		Returns: hostfn.TAny,
		Formals: hostfn.Formals(),
		Fn: func(args []interface{}) (interface{}, error) {
			return nil, sentinel
		},
	})
	env := hostfn.NewEnv(nil)
	_, err := fun.Invoke(env, nil, hostfn.Args{})
	assert.Same(t, sentinel, err)
}

func TestInvokeBindingErrorCarriesLocation(t *testing.T) {
	fun := mustCreate(t, nil, &hostfn.Def{
		Name:    "f",
		Returns: hostfn.TAny,
		Formals: hostfn.Formals(hostfn.P("a")),
		Fn: func(args []interface{}) (interface{}, error) {
			return args[0], nil
		},
	})
	env := hostfn.NewEnv(nil)
	loc := &token.Location{File: "tpl", Line: 12, Col: 1}
	_, err := fun.Invoke(env, loc, hostfn.Args{Named: []hostfn.NamedArg{{Name: "zz", Value: 1}}})
	require.Error(t, err)
	uerr, ok := err.(*hostfn.UnknownArgumentError)
	require.True(t, ok)
	assert.Same(t, loc, uerr.Loc)
	assert.True(t, strings.HasPrefix(err.Error(), "tpl:12:1: "), err.Error())
}

func TestInvokeBlock(t *testing.T) {
	fun := mustCreate(t, nil, &hostfn.Def{
		Name:    "with-block",
		Returns: hostfn.TString,
		Formals: hostfn.Formals(hostfn.P("a"), hostfn.Block("body")),
		Fn: func(args []interface{}) (interface{}, error) {
			block := args[1].(hostfn.Expr)
			return args[0].(string) + "|" + block.String(), nil
		},
	})
	env := hostfn.NewEnv(nil)
	v, err := fun.Invoke(env, nil, hostfn.Args{
		Positional: []interface{}{"head"},
		Block:      hostfn.Literal("body text", nil),
	})
	require.NoError(t, err)
	assert.Equal(t, "head|body text", v)
}

func TestCreateRejectsShapeMismatch(t *testing.T) {
	// Declares a context parameter but takes none.
	_, err := hostfn.Create(nil, &hostfn.Def{
		Name:    "f",
		Returns: hostfn.TAny,
		Formals: hostfn.Formals(hostfn.Context(), hostfn.P("a")),
		Fn: func(args []interface{}) (interface{}, error) {
			return nil, nil
		},
	})
	require.Error(t, err)
	assert.IsType(t, &hostfn.SignatureError{}, err)

	// Unsupported callable shape entirely.
	_, err = hostfn.Create(nil, &hostfn.Def{
		Name:    "g",
		Returns: hostfn.TAny,
		Formals: hostfn.Formals(hostfn.P("a")),
		Fn:      func(x complex128) complex128 { return x },
	})
	require.Error(t, err)
	assert.IsType(t, &hostfn.SignatureError{}, err)
}

func TestCreateUniqueFIDs(t *testing.T) {
	def := &hostfn.Def{
		Name:    "id",
		Returns: hostfn.TAny,
		Formals: hostfn.Formals(hostfn.P("a")),
		Fn: func(args []interface{}) (interface{}, error) {
			return args[0], nil
		},
	}
	a := mustCreate(t, nil, def)
	b := mustCreate(t, nil, def)
	assert.NotEmpty(t, a.FID())
	assert.NotEqual(t, a.FID(), b.FID())
}

func TestRequiredParameterCount(t *testing.T) {
	fun := mustCreate(t, nil, &hostfn.Def{
		Name:    "f",
		Returns: hostfn.TAny,
		Formals: hostfn.Formals(hostfn.P("a"), hostfn.P("b"), hostfn.Opt("c")),
		Fn: func(args []interface{}) (interface{}, error) {
			return nil, nil
		},
	})
	assert.Equal(t, 2, fun.RequiredParameterCount())
	assert.Equal(t, 1, fun.ParameterIndex("b"))
	assert.Equal(t, -1, fun.ParameterIndex("zz"))
}
