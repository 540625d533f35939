// Copyright © 2025 The Tanuki authors

package hostfn

import (
	"fmt"
	"strings"

	"github.com/tanukilang/tanuki/token"
)

// The identity cache maps structurally equivalent signatures to specialized
// dispatcher factories.  Two callables are equivalent when both are static
// or both instance-bound and they share a return type and an ordered list
// of parameter types and optionality flags; the declaring owner and the
// function name are irrelevant.  The cache is populated below, before any
// concurrent use begins, and is read-only thereafter, so lookups need no
// coordination.

// sigKey is the structural signature key.  It is a plain comparable value;
// equality and hashing derive from the field values alone.
type sigKey struct {
	static bool
	ret    Type
	shape  string
}

// key derives the structural cache key for a signature.
func (sig *Signature) key(static bool) sigKey {
	var b strings.Builder
	for _, p := range sig.params {
		b.WriteByte(byte('A') + byte(p.Type))
		if p.Optional {
			b.WriteByte('?')
		}
		if p.Rest {
			b.WriteByte('*')
		}
	}
	return sigKey{static: static, ret: sig.ret, shape: b.String()}
}

// specializer adapts a concrete host function into a purpose-built
// dispatcher, reporting false when the function does not have the shape
// the cache entry was built for.
type specializer func(fn interface{}) (Dispatcher, bool)

var specializations = map[sigKey]specializer{}

// lookupSpecialized consults the identity cache.  Only callables with no
// bound target are eligible; instance-bound callables always take the
// generic path.
func lookupSpecialized(sig *Signature, static bool, fn interface{}) (Dispatcher, bool) {
	if !static {
		return nil, false
	}
	sp, ok := specializations[sig.key(true)]
	if !ok {
		return nil, false
	}
	return sp(fn)
}

func mustKey(ret Type, formals []Param) sigKey {
	sig, err := NewSignature(ret, formals)
	if err != nil {
		panic(fmt.Sprintf("hostfn: bad specialization shape: %v", err))
	}
	return sig.key(true)
}

// The closed set of specialized shapes, covering the statically known
// builtin functions in funclib.  Specialized dispatchers read plan slots
// directly and skip generic argument-vector assembly.
func init() {
	specializations[mustKey(TString, Formals(PT("s", TString)))] = func(fn interface{}) (Dispatcher, bool) {
		call, ok := fn.(func(string) string)
		if !ok {
			return nil, false
		}
		return DispatcherFunc(func(_ *Env, _ *token.Location, plan *Plan) (interface{}, error) {
			s, err := slotString(plan, 0)
			if err != nil {
				return nil, err
			}
			return call(s), nil
		}), true
	}
	specializations[mustKey(TString, Formals(PT("a", TString), PT("b", TString)))] = func(fn interface{}) (Dispatcher, bool) {
		call, ok := fn.(func(string, string) string)
		if !ok {
			return nil, false
		}
		return DispatcherFunc(func(_ *Env, _ *token.Location, plan *Plan) (interface{}, error) {
			a, err := slotString(plan, 0)
			if err != nil {
				return nil, err
			}
			b, err := slotString(plan, 1)
			if err != nil {
				return nil, err
			}
			return call(a, b), nil
		}), true
	}
	specializations[mustKey(TBool, Formals(PT("a", TString), PT("b", TString)))] = func(fn interface{}) (Dispatcher, bool) {
		call, ok := fn.(func(string, string) bool)
		if !ok {
			return nil, false
		}
		return DispatcherFunc(func(_ *Env, _ *token.Location, plan *Plan) (interface{}, error) {
			a, err := slotString(plan, 0)
			if err != nil {
				return nil, err
			}
			b, err := slotString(plan, 1)
			if err != nil {
				return nil, err
			}
			return call(a, b), nil
		}), true
	}
	specializations[mustKey(TString, Formals(PT("s", TString), PT("n", TInt)))] = func(fn interface{}) (Dispatcher, bool) {
		call, ok := fn.(func(string, int) string)
		if !ok {
			return nil, false
		}
		return DispatcherFunc(func(_ *Env, _ *token.Location, plan *Plan) (interface{}, error) {
			s, err := slotString(plan, 0)
			if err != nil {
				return nil, err
			}
			n, err := slotInt(plan, 1)
			if err != nil {
				return nil, err
			}
			return call(s, n), nil
		}), true
	}
	specializations[mustKey(TFloat, Formals(PT("x", TFloat)))] = func(fn interface{}) (Dispatcher, bool) {
		call, ok := fn.(func(float64) float64)
		if !ok {
			return nil, false
		}
		return DispatcherFunc(func(_ *Env, _ *token.Location, plan *Plan) (interface{}, error) {
			x, err := slotFloat(plan, 0)
			if err != nil {
				return nil, err
			}
			return call(x), nil
		}), true
	}
	specializations[mustKey(TFloat, Formals(PT("a", TFloat), PT("b", TFloat)))] = func(fn interface{}) (Dispatcher, bool) {
		call, ok := fn.(func(float64, float64) float64)
		if !ok {
			return nil, false
		}
		return DispatcherFunc(func(_ *Env, _ *token.Location, plan *Plan) (interface{}, error) {
			a, err := slotFloat(plan, 0)
			if err != nil {
				return nil, err
			}
			b, err := slotFloat(plan, 1)
			if err != nil {
				return nil, err
			}
			return call(a, b), nil
		}), true
	}
}

func slotString(plan *Plan, i int) (string, error) {
	_, v := plan.Slot(i)
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument is not a string: %v", typeName(v))
	}
	return s, nil
}

func slotInt(plan *Plan, i int) (int, error) {
	_, v := plan.Slot(i)
	switch v := v.(type) {
	case int:
		return v, nil
	case float64:
		// Front ends that only track one numeric type still reach int slots.
		if v == float64(int(v)) {
			return int(v), nil
		}
	}
	return 0, fmt.Errorf("argument is not an int: %v", typeName(v))
}

func slotFloat(plan *Plan, i int) (float64, error) {
	_, v := plan.Slot(i)
	switch v := v.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	}
	return 0, fmt.Errorf("argument is not a number: %v", typeName(v))
}
