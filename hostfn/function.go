// Copyright © 2025 The Tanuki authors

package hostfn

import (
	"github.com/google/uuid"

	"github.com/tanukilang/tanuki/token"
)

// Def declares a host callable for registration.
type Def struct {
	// Name is the callable's display name, used in error messages and for
	// registry lookup.
	Name string
	// Doc is the callable's documentation string.
	Doc string
	// Returns is the declared return type.  TFuture and TTextFuture declare
	// asynchronous callables; any other awaitable shape is rejected at
	// registration time.
	Returns Type
	// Formals is the declared parameter list.
	Formals []Param
	// Fn is the host function.  Statically known builtin shapes (see
	// cache.go) dispatch through specialized wrappers; anything else must
	// take one of the generic Callable shapes.
	Fn interface{}
}

// BoundFunction adapts one host callable to the evaluator's calling
// convention.  A BoundFunction is immutable after Create and safe for
// concurrent use.
type BoundFunction struct {
	name        string
	doc         string
	fid         string
	sig         *Signature
	disp        Dispatcher
	target      interface{}
	specialized bool
}

// Create builds a BoundFunction for def.  target is the receiver the
// callable is bound to, or nil for a pure/static function.  Only targetless
// callables consult the identity cache; instance-bound callables always use
// the general dispatch path.
func Create(target interface{}, def *Def) (*BoundFunction, error) {
	if def.Fn == nil {
		return nil, sigErrorf(def.Name, "no function given")
	}
	sig, err := NewSignature(def.Returns, def.Formals)
	if err != nil {
		if serr, ok := err.(*SignatureError); ok {
			serr.Fun = def.Name
		}
		return nil, err
	}
	fun := &BoundFunction{
		name:   def.Name,
		doc:    def.Doc,
		fid:    uuid.NewString(),
		sig:    sig,
		target: target,
	}
	if disp, ok := lookupSpecialized(sig, target == nil, def.Fn); ok {
		fun.disp = disp
		fun.specialized = true
		return fun, nil
	}
	disp, err := genericDispatcher(sig, def.Fn)
	if err != nil {
		if serr, ok := err.(*SignatureError); ok {
			serr.Fun = def.Name
		}
		return nil, err
	}
	fun.disp = disp
	return fun, nil
}

// Name returns the callable's display name.
func (f *BoundFunction) Name() string {
	return f.name
}

// Doc returns the callable's documentation string.
func (f *BoundFunction) Doc() string {
	return f.doc
}

// FID returns the function's process-unique identifier.
func (f *BoundFunction) FID() string {
	return f.fid
}

// Signature returns the callable's signature descriptor.
func (f *BoundFunction) Signature() *Signature {
	return f.sig
}

// Target returns the receiver the callable is bound to, or nil.
func (f *BoundFunction) Target() interface{} {
	return f.target
}

// Specialized reports whether dispatch goes through a cached specialized
// wrapper rather than the generic path.
func (f *BoundFunction) Specialized() bool {
	return f.specialized
}

// RequiredParameterCount returns the minimum number of positional arguments
// the evaluator must supply.  The evaluator reads this for early arity
// validation before evaluating argument expressions.
func (f *BoundFunction) RequiredParameterCount() int {
	return f.sig.MinimumRequired()
}

// IsExpressionParameter reports whether the argument at user slot i should
// be passed as a raw expression node rather than evaluated.
func (f *BoundFunction) IsExpressionParameter(i int) bool {
	return f.sig.IsExpressionParameter(i)
}

// ParameterIndex resolves a named argument, returning -1 when no parameter
// matches.
func (f *BoundFunction) ParameterIndex(name string) int {
	return f.sig.ParameterIndex(name)
}

// Bind produces the binding plan for one call site.
func (f *BoundFunction) Bind(args Args) (*Plan, error) {
	return f.sig.Bind(f.name, args)
}

// Invoke binds args and executes the callable synchronously.  When the
// callable declares an awaitable return the result future is awaited and
// unwrapped to a plain value.  Errors raised by the callable propagate
// unchanged.
func (f *BoundFunction) Invoke(env *Env, caller *token.Location, args Args) (interface{}, error) {
	plan, err := f.Bind(args)
	if err != nil {
		return nil, locateError(err, caller)
	}
	ret, err := f.dispatch(env, caller, plan)
	if err != nil {
		return nil, err
	}
	return f.unwrap(ret)
}

// InvokeAsync binds args and executes the callable, returning its result as
// a future.  A synchronous callable is executed in place and its result
// wrapped in an already-completed future.
func (f *BoundFunction) InvokeAsync(env *Env, caller *token.Location, args Args) (*Future, error) {
	plan, err := f.Bind(args)
	if err != nil {
		return nil, locateError(err, caller)
	}
	ret, err := f.dispatch(env, caller, plan)
	if err != nil {
		return nil, err
	}
	switch f.sig.ret {
	case TFuture:
		fut, ok := ret.(*Future)
		if !ok {
			return nil, sigErrorf(f.name, "callable did not return a future: %v", typeName(ret))
		}
		return fut, nil
	case TTextFuture:
		fut, ok := ret.(*TextFuture)
		if !ok {
			return nil, sigErrorf(f.name, "callable did not return a text future: %v", typeName(ret))
		}
		return fut.Generalize(), nil
	default:
		return CompletedFuture(ret, nil), nil
	}
}

func (f *BoundFunction) dispatch(env *Env, caller *token.Location, plan *Plan) (interface{}, error) {
	if p := env.profiler(); p != nil && p.IsEnabled() {
		stop := p.Start(f)
		defer stop()
	}
	return f.disp.Dispatch(env, caller, plan)
}

// unwrap adapts an awaitable result to the evaluator's single result
// representation.  Futures of values and futures of text are the only
// supported shapes.
func (f *BoundFunction) unwrap(ret interface{}) (interface{}, error) {
	switch f.sig.ret {
	case TFuture:
		fut, ok := ret.(*Future)
		if !ok {
			return nil, sigErrorf(f.name, "callable did not return a future: %v", typeName(ret))
		}
		return fut.Await()
	case TTextFuture:
		fut, ok := ret.(*TextFuture)
		if !ok {
			return nil, sigErrorf(f.name, "callable did not return a text future: %v", typeName(ret))
		}
		s, err := fut.Await()
		return s, err
	default:
		return ret, nil
	}
}
