// Copyright © 2025 The Tanuki authors

package hostfn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanukilang/tanuki/hostfn"
)

func TestSignatureCounts(t *testing.T) {
	// Leading context+span, two required value parameters, two optional.
	sig, err := hostfn.NewSignature(hostfn.TAny, hostfn.Formals(
		hostfn.Context(),
		hostfn.Span(),
		hostfn.P("a"),
		hostfn.P("b"),
		hostfn.Opt("c"),
		hostfn.OptDefault("d", 7),
	))
	require.NoError(t, err)
	assert.True(t, sig.HasContext())
	assert.True(t, sig.HasSpan())
	assert.False(t, sig.HasVariadic())
	assert.Equal(t, 6, sig.DeclaredParameterCount())
	assert.Equal(t, 4, sig.ExpectedUserCount())
	assert.Equal(t, 2, sig.OptionalCount())
	assert.Equal(t, 2, sig.MinimumRequired())
}

func TestSignatureVariadic(t *testing.T) {
	sig, err := hostfn.NewSignature(hostfn.TAny, hostfn.Formals(
		hostfn.P("a"),
		hostfn.RestOf("rest", hostfn.TString),
	))
	require.NoError(t, err)
	assert.True(t, sig.HasVariadic())
	assert.Equal(t, hostfn.TString, sig.VariadicElem())
	assert.Equal(t, 1, sig.ExpectedUserCount())
	assert.Equal(t, 1, sig.MinimumRequired())
}

func TestSignatureVariadicIgnoresOptionalCount(t *testing.T) {
	// A variadic tail makes trailing-optional counting meaningless.
	sig, err := hostfn.NewSignature(hostfn.TAny, hostfn.Formals(
		hostfn.P("a"),
		hostfn.Rest("rest"),
	))
	require.NoError(t, err)
	assert.Equal(t, 0, sig.OptionalCount())
}

func TestSignatureContextOnly(t *testing.T) {
	sig, err := hostfn.NewSignature(hostfn.TAny, hostfn.Formals(
		hostfn.Context(),
		hostfn.P("a"),
	))
	require.NoError(t, err)
	assert.True(t, sig.HasContext())
	assert.False(t, sig.HasSpan())
	assert.Equal(t, 1, sig.ExpectedUserCount())
}

func TestSignatureParameterIndex(t *testing.T) {
	sig, err := hostfn.NewSignature(hostfn.TAny, hostfn.Formals(
		hostfn.Context(),
		hostfn.Span(),
		hostfn.P("a"),
		hostfn.Opt("b"),
		hostfn.Rest("rest"),
	))
	require.NoError(t, err)
	assert.Equal(t, 0, sig.ParameterIndex("a"))
	assert.Equal(t, 1, sig.ParameterIndex("b"))
	// Context, span, and variadic slots are never resolvable by name.
	assert.Equal(t, -1, sig.ParameterIndex("env"))
	assert.Equal(t, -1, sig.ParameterIndex("span"))
	assert.Equal(t, -1, sig.ParameterIndex("rest"))
	assert.Equal(t, -1, sig.ParameterIndex("nope"))
}

func TestSignatureExpressionParameter(t *testing.T) {
	sig, err := hostfn.NewSignature(hostfn.TAny, hostfn.Formals(
		hostfn.P("value"),
		hostfn.ExprParam("expr"),
	))
	require.NoError(t, err)
	assert.False(t, sig.IsExpressionParameter(0))
	assert.True(t, sig.IsExpressionParameter(1))
	assert.False(t, sig.IsExpressionParameter(2))
	assert.False(t, sig.IsExpressionParameter(-1))
}

func TestSignatureBlock(t *testing.T) {
	sig, err := hostfn.NewSignature(hostfn.TAny, hostfn.Formals(
		hostfn.P("a"),
		hostfn.Block("body"),
	))
	require.NoError(t, err)
	assert.True(t, sig.HasBlock())
	assert.Equal(t, 1, sig.ExpectedUserCount())
	assert.Equal(t, -1, sig.ParameterIndex("body"))
}

func TestSignatureErrors(t *testing.T) {
	tests := []struct {
		name    string
		ret     hostfn.Type
		formals []hostfn.Param
	}{
		{"context not first", hostfn.TAny, hostfn.Formals(hostfn.P("a"), hostfn.Context())},
		{"span without context", hostfn.TAny, hostfn.Formals(hostfn.Span(), hostfn.P("a"))},
		{"span late", hostfn.TAny, hostfn.Formals(hostfn.Context(), hostfn.P("a"), hostfn.Span())},
		{"variadic not last", hostfn.TAny, hostfn.Formals(hostfn.Rest("rest"), hostfn.P("a"))},
		{"block not last", hostfn.TAny, hostfn.Formals(hostfn.Block("body"), hostfn.P("a"))},
		{"required after optional", hostfn.TAny, hostfn.Formals(hostfn.Opt("a"), hostfn.P("b"))},
		{"duplicate name", hostfn.TAny, hostfn.Formals(hostfn.P("a"), hostfn.P("a"))},
		{"unnamed parameter", hostfn.TAny, hostfn.Formals(hostfn.Param{Type: hostfn.TAny})},
		{"invalid return", hostfn.TContext, hostfn.Formals(hostfn.P("a"))},
		{"optional context", hostfn.TAny, hostfn.Formals(
			hostfn.Param{Name: "env", Type: hostfn.TContext, Optional: true},
		)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := hostfn.NewSignature(tt.ret, tt.formals)
			require.Error(t, err)
			assert.IsType(t, &hostfn.SignatureError{}, err)
		})
	}
}
