// Copyright © 2025 The Tanuki authors

package libdebug

import (
	"errors"
	"fmt"

	"github.com/tanukilang/tanuki/hostfn"
	"github.com/tanukilang/tanuki/hostfn/funclib/internal/libutil"
	"github.com/tanukilang/tanuki/token"
)

// DefaultPackageName is the package name used by LoadPackage.
const DefaultPackageName = "debug"

// LoadPackage adds the debug package to reg.
func LoadPackage(reg *hostfn.Registry) error {
	return libutil.LoadPackage(reg, DefaultPackageName, builtins)
}

var builtins = []*hostfn.Def{
	libutil.Function("trace", "Write the given values to the runtime's debug stream.",
		hostfn.TAny,
		hostfn.Formals(hostfn.Context(), hostfn.Span(), hostfn.Rest("values")),
		builtinTrace),
	libutil.Function("fail", "Raise an error carrying message.",
		hostfn.TAny,
		hostfn.Formals(hostfn.PT("message", hostfn.TString)),
		builtinFail),
	libutil.Function("quote", "Return the source text of the argument expression.",
		hostfn.TString,
		hostfn.Formals(hostfn.ExprParam("expr")),
		builtinQuote),
	libutil.Function("with-block", "Render prefix followed by the block body's source.",
		hostfn.TString,
		hostfn.Formals(hostfn.PT("prefix", hostfn.TString), hostfn.Block("body")),
		builtinWithBlock),
}

func builtinTrace(env *hostfn.Env, caller *token.Location, args []interface{}) (interface{}, error) {
	values, _ := args[0].([]interface{})
	line := fmt.Sprintln(values...)
	if caller != nil {
		line = fmt.Sprintf("%s: %s", caller, line)
	}
	if _, err := fmt.Fprint(env.Runtime.Stderr, line); err != nil {
		return nil, err
	}
	return nil, nil
}

func builtinFail(args []interface{}) (interface{}, error) {
	msg, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("argument is not a string: %T", args[0])
	}
	return nil, errors.New(msg)
}

func builtinQuote(args []interface{}) (interface{}, error) {
	expr, ok := args[0].(hostfn.Expr)
	if !ok {
		return nil, fmt.Errorf("argument is not an expression: %T", args[0])
	}
	return expr.String(), nil
}

func builtinWithBlock(args []interface{}) (interface{}, error) {
	prefix, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("first argument is not a string: %T", args[0])
	}
	block, ok := args[1].(hostfn.Expr)
	if !ok || block == nil {
		return nil, fmt.Errorf("no block given")
	}
	return prefix + block.String(), nil
}
