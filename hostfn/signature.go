// Copyright © 2025 The Tanuki authors

package hostfn

// Param describes one declared parameter of a host callable.
type Param struct {
	// Name is the parameter name used to resolve named arguments.
	Name string
	// Type is the declared parameter type.
	Type Type
	// Optional marks a parameter that may be omitted at the call site.
	Optional bool
	// Default is the value bound when an optional parameter is omitted.
	Default interface{}
	// Rest marks the trailing variadic parameter.  Type gives the element
	// type of the collected tail.
	Rest bool
}

// Formals declares a callable's parameter list.
func Formals(params ...Param) []Param {
	return params
}

// P declares a required parameter accepting any value.
func P(name string) Param {
	return Param{Name: name, Type: TAny}
}

// PT declares a required parameter with a declared type.
func PT(name string, t Type) Param {
	return Param{Name: name, Type: t}
}

// Opt declares an optional parameter with a nil default.
func Opt(name string) Param {
	return Param{Name: name, Type: TAny, Optional: true}
}

// OptDefault declares an optional parameter bound to def when omitted.
func OptDefault(name string, def interface{}) Param {
	return Param{Name: name, Type: TAny, Optional: true, Default: def}
}

// OptTyped declares an optional typed parameter bound to def when omitted.
func OptTyped(name string, t Type, def interface{}) Param {
	return Param{Name: name, Type: t, Optional: true, Default: def}
}

// Rest declares the trailing variadic parameter.  All positional arguments
// beyond the fixed prefix are collected, in call order, into one sequence
// bound to this slot.
func Rest(name string) Param {
	return Param{Name: name, Type: TAny, Rest: true}
}

// RestOf declares a variadic parameter with a declared element type.
func RestOf(name string, elem Type) Param {
	return Param{Name: name, Type: elem, Rest: true}
}

// ExprParam declares an expression parameter.  The evaluator passes the raw
// argument expression for this slot instead of evaluating it.
func ExprParam(name string) Param {
	return Param{Name: name, Type: TExpr}
}

// Block declares a trailing block-body parameter.
func Block(name string) Param {
	return Param{Name: name, Type: TBlock}
}

// Context declares the leading execution-context parameter.
func Context() Param {
	return Param{Name: "env", Type: TContext}
}

// Span declares the source-position parameter.  Only valid directly after a
// context parameter.
func Span() Param {
	return Param{Name: "span", Type: TSpan}
}

// Signature is an immutable structural summary of a callable's parameter
// list.  All counts are computed at construction; a Signature is safe to
// share across unlimited concurrent invocations.
type Signature struct {
	params []Param
	ret    Type

	hasContext bool
	hasSpan    bool
	hasBlock   bool
	variadic   bool

	variadicElem Type
	userOffset   int // leading context/span slots
	userCount    int // caller-facing parameter slots
	optionalCnt  int
	minRequired  int
}

// NewSignature builds a Signature from a declared return type and formal
// parameter list.  It is a pure function of the declaration and fails with a
// *SignatureError when the declaration is malformed.
func NewSignature(ret Type, formals []Param) (*Signature, error) {
	switch ret {
	case TAny, TBool, TInt, TFloat, TString, TBytes, TList, TMap, TFuture, TTextFuture:
	default:
		return nil, sigErrorf("", "invalid return type: %v", ret)
	}
	sig := &Signature{params: formals, ret: ret}

	// Context/span detection takes priority over all other bookkeeping for
	// positions 0 and 1.
	if len(formals) > 0 && formals[0].Type == TContext {
		if formals[0].Optional || formals[0].Rest {
			return nil, sigErrorf("", "context parameter cannot be optional or variadic")
		}
		sig.hasContext = true
		if len(formals) > 1 && formals[1].Type == TSpan {
			if formals[1].Optional || formals[1].Rest {
				return nil, sigErrorf("", "span parameter cannot be optional or variadic")
			}
			sig.hasSpan = true
		}
	}
	sig.userOffset = 0
	if sig.hasContext {
		sig.userOffset++
	}
	if sig.hasSpan {
		sig.userOffset++
	}

	seenOptional := false
	names := make(map[string]bool, len(formals))
	for i := sig.userOffset; i < len(formals); i++ {
		p := formals[i]
		switch p.Type {
		case TContext:
			return nil, sigErrorf("", "context parameter must be declared first")
		case TSpan:
			return nil, sigErrorf("", "span parameter must directly follow a context parameter")
		case TInvalid:
			return nil, sigErrorf("", "parameter %q has no declared type", p.Name)
		}
		if p.Name == "" {
			return nil, sigErrorf("", "parameter %d has no name", i)
		}
		if names[p.Name] {
			return nil, sigErrorf("", "duplicate parameter name: %v", p.Name)
		}
		names[p.Name] = true
		if p.Type == TBlock {
			if i != len(formals)-1 {
				return nil, sigErrorf("", "block parameter must be declared last")
			}
			if p.Optional || p.Rest {
				return nil, sigErrorf("", "block parameter cannot be optional or variadic")
			}
			sig.hasBlock = true
			continue
		}
		if p.Rest {
			if p.Optional {
				return nil, sigErrorf("", "variadic parameter cannot be optional")
			}
			last := len(formals) - 1
			if sig.hasBlock || (i != last && !(i == last-1 && formals[last].Type == TBlock)) {
				return nil, sigErrorf("", "variadic parameter must be the last value parameter")
			}
			sig.variadic = true
			sig.variadicElem = p.Type
			continue
		}
		if p.Optional {
			seenOptional = true
		} else if seenOptional {
			return nil, sigErrorf("", "required parameter %q follows an optional parameter", p.Name)
		}
	}

	sig.userCount = len(formals) - sig.userOffset
	if sig.variadic {
		sig.userCount--
	}
	if sig.hasBlock {
		sig.userCount--
	}
	// A variadic tail absorbs all remaining arguments which makes
	// trailing-optional counting meaningless.
	if !sig.variadic {
		for i := 0; i < sig.userCount; i++ {
			if sig.userParam(i).Optional {
				sig.optionalCnt++
			}
		}
	}
	sig.minRequired = sig.userCount - sig.optionalCnt
	return sig, nil
}

// userParam returns the declared parameter backing user slot i.
func (sig *Signature) userParam(i int) Param {
	return sig.params[sig.userOffset+i]
}

// DeclaredParameterCount returns the raw number of declared parameters,
// including context, span, variadic, and block slots.
func (sig *Signature) DeclaredParameterCount() int {
	return len(sig.params)
}

// Param returns the declared parameter at raw index i.
func (sig *Signature) Param(i int) Param {
	return sig.params[i]
}

// Returns reports the declared return type.
func (sig *Signature) Returns() Type {
	return sig.ret
}

// HasContext reports whether parameter 0 is the execution-context slot.
func (sig *Signature) HasContext() bool {
	return sig.hasContext
}

// HasSpan reports whether parameter 1 is the source-position slot.
func (sig *Signature) HasSpan() bool {
	return sig.hasSpan
}

// HasBlock reports whether the callable accepts a block body.
func (sig *Signature) HasBlock() bool {
	return sig.hasBlock
}

// HasVariadic reports whether the last value parameter is a variadic tail.
func (sig *Signature) HasVariadic() bool {
	return sig.variadic
}

// VariadicElem returns the element type of the variadic tail, or TInvalid
// when there is none.
func (sig *Signature) VariadicElem() Type {
	if !sig.variadic {
		return TInvalid
	}
	return sig.variadicElem
}

// ExpectedUserCount returns the number of caller-facing parameter slots:
// the declared count minus context/span slots and minus the variadic and
// block slots themselves.
func (sig *Signature) ExpectedUserCount() int {
	return sig.userCount
}

// OptionalCount returns the number of optional caller-facing parameters.
func (sig *Signature) OptionalCount() int {
	return sig.optionalCnt
}

// MinimumRequired returns the minimum number of positional arguments a call
// must supply when no named arguments are used.
func (sig *Signature) MinimumRequired() int {
	return sig.minRequired
}

// Awaitable reports whether the declared return type is a future shape.
func (sig *Signature) Awaitable() bool {
	return sig.ret == TFuture || sig.ret == TTextFuture
}

// ParameterIndex resolves a named argument to its user slot, returning -1
// when no caller-facing parameter has that name.  Context, span, variadic,
// and block slots are never resolvable by name.
func (sig *Signature) ParameterIndex(name string) int {
	for i := 0; i < sig.userCount; i++ {
		if sig.userParam(i).Name == name {
			return i
		}
	}
	return -1
}

// IsExpressionParameter reports whether user slot i receives the raw
// argument expression instead of an evaluated value.
func (sig *Signature) IsExpressionParameter(i int) bool {
	if i < 0 || i >= sig.userCount {
		return false
	}
	return sig.userParam(i).Type == TExpr
}
