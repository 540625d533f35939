// Copyright © 2025 The Tanuki authors

// Package hostfn binds host Go callables to Tanuki call sites.
//
// The scripting front end evaluates a call site into positional and named
// argument values and hands them to a BoundFunction.  The bound function
// owns an immutable Signature describing the callable's declared parameter
// list, produces a transient binding Plan mapping call-site values onto
// parameter slots, and dispatches the call through either a specialized
// dispatcher (for the closed set of builtin shapes, see cache.go) or a
// generic one.  Callables declaring an awaitable return type yield futures
// which the dispatcher unwraps (see future.go).
//
// Signatures are built once per callable and are safe to share across any
// number of concurrent invocations.  Plans are per-call values and must not
// be retained after the call completes.
package hostfn

import (
	"fmt"

	"github.com/tanukilang/tanuki/token"
)

// Type is the declared type of a parameter or return value.  Parameter
// declarations use Type tags instead of runtime type inspection so that a
// callable's calling shape is fixed at registration time.
type Type uint8

// Possible Type values.
const (
	// TInvalid (0) is not a valid declared type.
	TInvalid Type = iota
	// TAny accepts any value.
	TAny
	TBool
	TInt
	TFloat
	TString
	TBytes
	// TList values are []interface{} sequences.
	TList
	// TMap values are map[string]interface{} mappings.
	TMap
	// TExpr marks an expression parameter.  The evaluator does not evaluate
	// the argument expression at such a slot and instead passes the raw Expr
	// node through the binder untouched.
	TExpr
	// TBlock marks a trailing block-body parameter.  A block is supplied by
	// the call site's block syntax, never as a caller argument.
	TBlock
	// TContext marks the leading execution-context parameter.  The context
	// is supplied by the dispatcher, never by the caller.
	TContext
	// TSpan marks the source-position parameter following a context
	// parameter.  Supplied by the dispatcher, never by the caller.
	TSpan
	// TFuture declares a return of a future holding any value.
	TFuture
	// TTextFuture declares a return of a future holding text.
	TTextFuture
	// TTypeMax is numerically greater than all valid Type values.
	TTypeMax
)

var typeStrings = []string{
	TInvalid:    "INVALID",
	TAny:        "any",
	TBool:       "bool",
	TInt:        "int",
	TFloat:      "float",
	TString:     "string",
	TBytes:      "bytes",
	TList:       "list",
	TMap:        "map",
	TExpr:       "expression",
	TBlock:      "block",
	TContext:    "context",
	TSpan:       "span",
	TFuture:     "future",
	TTextFuture: "text-future",
}

func (t Type) String() string {
	if t >= Type(len(typeStrings)) {
		return typeStrings[TInvalid]
	}
	return typeStrings[t]
}

// Expr is an unevaluated argument expression produced by the scripting front
// end.  The binder passes Expr nodes through without evaluating them; only
// slots declared TExpr (and block bodies) ever hold one.
type Expr interface {
	// Pos returns the expression's location in source.
	Pos() *token.Location
	// String renders the expression as source text.
	String() string
}

// NamedArg is one named argument at a call site.
type NamedArg struct {
	Name  string
	Value interface{}
}

// Args bundles the evaluated arguments of one call site.  Slots reported as
// expression parameters by the bound function hold raw Expr nodes in
// Positional/Named instead of computed values.
type Args struct {
	Positional []interface{}
	Named      []NamedArg
	Block      Expr
}

// typeName names a runtime value for error messages.
func typeName(v interface{}) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "bool"
	case int:
		return "int"
	case float64:
		return "float"
	case string:
		return "string"
	case []byte:
		return "bytes"
	case []interface{}:
		return "list"
	case map[string]interface{}:
		return "map"
	case Expr:
		return "expression"
	case *Future:
		return "future"
	case *TextFuture:
		return "text-future"
	default:
		return fmt.Sprintf("%T", v)
	}
}
