// Copyright © 2025 The Tanuki authors

package hostfn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanukilang/tanuki/hostfn"
)

func mustSignature(t *testing.T, ret hostfn.Type, formals []hostfn.Param) *hostfn.Signature {
	t.Helper()
	sig, err := hostfn.NewSignature(ret, formals)
	require.NoError(t, err)
	return sig
}

func planSlots(p *hostfn.Plan) []interface{} {
	values := make([]interface{}, p.NumSlots())
	for i := range values {
		_, values[i] = p.Slot(i)
	}
	return values
}

func TestBindPositional(t *testing.T) {
	sig := mustSignature(t, hostfn.TAny, hostfn.Formals(hostfn.P("a"), hostfn.P("b")))
	plan, err := sig.Bind("f", hostfn.Args{Positional: []interface{}{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{1, 2}, planSlots(plan))
	src, _ := plan.Slot(0)
	assert.Equal(t, hostfn.SlotPositional, src)
	assert.Empty(t, plan.Tail())
}

func TestBindNamedOrderIndependent(t *testing.T) {
	sig := mustSignature(t, hostfn.TAny, hostfn.Formals(hostfn.P("a"), hostfn.P("b")))
	plan1, err := sig.Bind("f", hostfn.Args{Named: []hostfn.NamedArg{
		{Name: "b", Value: 2}, {Name: "a", Value: 1},
	}})
	require.NoError(t, err)
	plan2, err := sig.Bind("f", hostfn.Args{Named: []hostfn.NamedArg{
		{Name: "a", Value: 1}, {Name: "b", Value: 2},
	}})
	require.NoError(t, err)
	assert.Equal(t, planSlots(plan2), planSlots(plan1))
	assert.Equal(t, []interface{}{1, 2}, planSlots(plan1))
}

func TestBindNamedLastWins(t *testing.T) {
	sig := mustSignature(t, hostfn.TAny, hostfn.Formals(hostfn.P("a")))
	plan, err := sig.Bind("f", hostfn.Args{Named: []hostfn.NamedArg{
		{Name: "a", Value: 1}, {Name: "a", Value: 9},
	}})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{9}, planSlots(plan))
}

func TestBindMixed(t *testing.T) {
	// Positional values skip slots already filled by name.
	sig := mustSignature(t, hostfn.TAny, hostfn.Formals(hostfn.P("a"), hostfn.P("b"), hostfn.P("c")))
	plan, err := sig.Bind("f", hostfn.Args{
		Positional: []interface{}{"x", "z"},
		Named:      []hostfn.NamedArg{{Name: "b", Value: "y"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"x", "y", "z"}, planSlots(plan))
}

func TestBindDefaults(t *testing.T) {
	sig := mustSignature(t, hostfn.TAny, hostfn.Formals(
		hostfn.P("a"), hostfn.OptDefault("b", 42), hostfn.Opt("c"),
	))
	plan, err := sig.Bind("f", hostfn.Args{Positional: []interface{}{1}})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{1, 42, nil}, planSlots(plan))
	src, _ := plan.Slot(1)
	assert.Equal(t, hostfn.SlotDefault, src)
}

func TestBindUnknownArgument(t *testing.T) {
	sig := mustSignature(t, hostfn.TAny, hostfn.Formals(hostfn.P("a"), hostfn.P("b")))
	_, err := sig.Bind("f", hostfn.Args{Named: []hostfn.NamedArg{{Name: "c", Value: 1}}})
	require.Error(t, err)
	uerr, ok := err.(*hostfn.UnknownArgumentError)
	require.True(t, ok, "expected *UnknownArgumentError, got %T", err)
	assert.Equal(t, "f", uerr.Fun)
	assert.Equal(t, "c", uerr.Name)
}

func TestBindArity(t *testing.T) {
	sig := mustSignature(t, hostfn.TAny, hostfn.Formals(hostfn.P("a"), hostfn.P("b")))
	for _, n := range []int{1, 3} {
		args := make([]interface{}, n)
		_, err := sig.Bind("f", hostfn.Args{Positional: args})
		require.Error(t, err, "arity %d", n)
		aerr, ok := err.(*hostfn.ArityError)
		require.True(t, ok, "expected *ArityError, got %T", err)
		assert.Equal(t, "f", aerr.Fun)
		assert.Equal(t, n, aerr.NArgs)
		assert.Equal(t, 2, aerr.Min)
		assert.Equal(t, 2, aerr.Max)
	}
	_, err := sig.Bind("f", hostfn.Args{Positional: []interface{}{1, 2}})
	assert.NoError(t, err)
}

func TestBindVariadicTail(t *testing.T) {
	sig := mustSignature(t, hostfn.TAny, hostfn.Formals(hostfn.P("a"), hostfn.Rest("rest")))

	// Exactly the fixed prefix yields an empty tail, not an error.
	plan, err := sig.Bind("f", hostfn.Args{Positional: []interface{}{1}})
	require.NoError(t, err)
	assert.Len(t, plan.Tail(), 0)

	// Surplus values are collected in call order.
	plan, err = sig.Bind("f", hostfn.Args{Positional: []interface{}{1, "x", "y", "z"}})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"x", "y", "z"}, plan.Tail())
	assert.Equal(t, []interface{}{1}, planSlots(plan))
}

func TestBindVariadicTooFew(t *testing.T) {
	sig := mustSignature(t, hostfn.TAny, hostfn.Formals(hostfn.P("a"), hostfn.P("b"), hostfn.Rest("rest")))
	_, err := sig.Bind("f", hostfn.Args{Positional: []interface{}{1}})
	require.Error(t, err)
	aerr, ok := err.(*hostfn.ArityError)
	require.True(t, ok)
	assert.Equal(t, -1, aerr.Max)
}

func TestBindContextSlotsNeverCallerFilled(t *testing.T) {
	sig := mustSignature(t, hostfn.TAny, hostfn.Formals(
		hostfn.Context(), hostfn.Span(), hostfn.P("a"),
	))
	plan, err := sig.Bind("f", hostfn.Args{Positional: []interface{}{"v"}})
	require.NoError(t, err)
	// The plan covers user slots only; context and span are supplied by the
	// dispatcher.
	assert.Equal(t, 1, plan.NumSlots())
	assert.Equal(t, []interface{}{"v"}, planSlots(plan))
}

func TestBindUnexpectedBlock(t *testing.T) {
	sig := mustSignature(t, hostfn.TAny, hostfn.Formals(hostfn.P("a")))
	_, err := sig.Bind("f", hostfn.Args{
		Positional: []interface{}{1},
		Block:      hostfn.Literal("block text", nil),
	})
	require.Error(t, err)
	assert.IsType(t, &hostfn.UnexpectedBlockError{}, err)
}

func TestBindBlock(t *testing.T) {
	sig := mustSignature(t, hostfn.TAny, hostfn.Formals(hostfn.P("a"), hostfn.Block("body")))
	block := hostfn.Literal("block text", nil)
	plan, err := sig.Bind("f", hostfn.Args{Positional: []interface{}{1}, Block: block})
	require.NoError(t, err)
	assert.Equal(t, block, plan.Block())
}

func TestBindExpressionSlotPassthrough(t *testing.T) {
	sig := mustSignature(t, hostfn.TAny, hostfn.Formals(hostfn.P("a"), hostfn.ExprParam("expr")))
	node := hostfn.Literal("(raw)", nil)
	plan, err := sig.Bind("f", hostfn.Args{Positional: []interface{}{1, node}})
	require.NoError(t, err)
	_, v := plan.Slot(1)
	assert.Equal(t, node, v)
}
