// Copyright © 2025 The Tanuki authors

package hostfn

import (
	"github.com/tanukilang/tanuki/token"
)

// The generic callable shapes.  A callable opts into the implicitly
// supplied execution context and source span through its leading Go
// parameters, which must agree with the Context()/Span() formals it
// declares.  These are aliases so that plain function literals satisfy the
// shape checks in Create.
type (
	// Callable receives the execution context and call-site span ahead of
	// the bound argument vector.
	Callable = func(env *Env, caller *token.Location, args []interface{}) (interface{}, error)

	// ContextCallable receives only the execution context.
	ContextCallable = func(env *Env, args []interface{}) (interface{}, error)

	// SimpleCallable receives the bound argument vector alone.
	SimpleCallable = func(args []interface{}) (interface{}, error)
)

// Dispatcher executes a bound call.  The argument vector handed to the
// callable holds the user slots in declaration order, then the variadic
// tail collected into one sequence, then the block body; context and span
// travel as leading Go parameters where the callable declares them.
type Dispatcher interface {
	Dispatch(env *Env, caller *token.Location, plan *Plan) (interface{}, error)
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(env *Env, caller *token.Location, plan *Plan) (interface{}, error)

func (fn DispatcherFunc) Dispatch(env *Env, caller *token.Location, plan *Plan) (interface{}, error) {
	return fn(env, caller, plan)
}

// assemble builds the final argument vector for a generic callable.
func assemble(sig *Signature, plan *Plan) []interface{} {
	n := plan.NumSlots()
	args := make([]interface{}, 0, n+2)
	for i := 0; i < n; i++ {
		_, v := plan.Slot(i)
		args = append(args, v)
	}
	if sig.variadic {
		args = append(args, plan.Tail())
	}
	if sig.hasBlock {
		args = append(args, plan.Block())
	}
	return args
}

// genericDispatcher wraps one of the generic callable shapes.  The shape
// must agree with the declared context/span capabilities.
func genericDispatcher(sig *Signature, fn interface{}) (Dispatcher, error) {
	switch fn := fn.(type) {
	case Callable:
		if !sig.hasContext || !sig.hasSpan {
			return nil, sigErrorf("", "callable takes a context and span but declares none")
		}
		return DispatcherFunc(func(env *Env, caller *token.Location, plan *Plan) (interface{}, error) {
			return fn(env, caller, assemble(sig, plan))
		}), nil
	case ContextCallable:
		if !sig.hasContext {
			return nil, sigErrorf("", "callable takes a context but declares none")
		}
		if sig.hasSpan {
			return nil, sigErrorf("", "callable declares a span parameter it does not take")
		}
		return DispatcherFunc(func(env *Env, _ *token.Location, plan *Plan) (interface{}, error) {
			return fn(env, assemble(sig, plan))
		}), nil
	case SimpleCallable:
		if sig.hasContext {
			return nil, sigErrorf("", "callable declares a context parameter it does not take")
		}
		return DispatcherFunc(func(_ *Env, _ *token.Location, plan *Plan) (interface{}, error) {
			return fn(assemble(sig, plan))
		}), nil
	default:
		return nil, sigErrorf("", "unsupported callable shape: %T", fn)
	}
}
