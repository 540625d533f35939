// Copyright © 2025 The Tanuki authors

package libmath

import (
	"fmt"
	"math"

	"github.com/tanukilang/tanuki/hostfn"
	"github.com/tanukilang/tanuki/hostfn/funclib/internal/libutil"
)

// DefaultPackageName is the package name used by LoadPackage.
const DefaultPackageName = "math"

// LoadPackage adds the math package to reg.
func LoadPackage(reg *hostfn.Registry) error {
	return libutil.LoadPackage(reg, DefaultPackageName, builtins)
}

var builtins = []*hostfn.Def{
	libutil.Function("abs", "Return the absolute value of x.",
		hostfn.TFloat,
		hostfn.Formals(hostfn.PT("x", hostfn.TFloat)),
		math.Abs),
	libutil.Function("floor", "Return the greatest integer value <= x.",
		hostfn.TFloat,
		hostfn.Formals(hostfn.PT("x", hostfn.TFloat)),
		math.Floor),
	libutil.Function("ceil", "Return the least integer value >= x.",
		hostfn.TFloat,
		hostfn.Formals(hostfn.PT("x", hostfn.TFloat)),
		math.Ceil),
	libutil.Function("pow", "Return a raised to the power b.",
		hostfn.TFloat,
		hostfn.Formals(hostfn.PT("a", hostfn.TFloat), hostfn.PT("b", hostfn.TFloat)),
		math.Pow),
	libutil.Function("mod", "Return the floating point remainder of a/b.",
		hostfn.TFloat,
		hostfn.Formals(hostfn.PT("a", hostfn.TFloat), hostfn.PT("b", hostfn.TFloat)),
		math.Mod),
	libutil.Function("min", "Return the smallest of the given numbers.",
		hostfn.TFloat,
		hostfn.Formals(hostfn.PT("x", hostfn.TFloat), hostfn.RestOf("rest", hostfn.TFloat)),
		builtinMin),
	libutil.Function("max", "Return the largest of the given numbers.",
		hostfn.TFloat,
		hostfn.Formals(hostfn.PT("x", hostfn.TFloat), hostfn.RestOf("rest", hostfn.TFloat)),
		builtinMax),
	libutil.Function("clamp", "Constrain x to the inclusive range [lo, hi].",
		hostfn.TFloat,
		hostfn.Formals(
			hostfn.PT("x", hostfn.TFloat),
			hostfn.PT("lo", hostfn.TFloat),
			hostfn.PT("hi", hostfn.TFloat),
		),
		builtinClamp),
}

func number(v interface{}) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	}
	return 0, fmt.Errorf("argument is not a number: %T", v)
}

func builtinMin(args []interface{}) (interface{}, error) {
	x, err := number(args[0])
	if err != nil {
		return nil, err
	}
	rest, _ := args[1].([]interface{})
	for _, v := range rest {
		y, err := number(v)
		if err != nil {
			return nil, err
		}
		x = math.Min(x, y)
	}
	return x, nil
}

func builtinMax(args []interface{}) (interface{}, error) {
	x, err := number(args[0])
	if err != nil {
		return nil, err
	}
	rest, _ := args[1].([]interface{})
	for _, v := range rest {
		y, err := number(v)
		if err != nil {
			return nil, err
		}
		x = math.Max(x, y)
	}
	return x, nil
}

func builtinClamp(args []interface{}) (interface{}, error) {
	x, err := number(args[0])
	if err != nil {
		return nil, err
	}
	lo, err := number(args[1])
	if err != nil {
		return nil, err
	}
	hi, err := number(args[2])
	if err != nil {
		return nil, err
	}
	if hi < lo {
		return nil, fmt.Errorf("invalid range: %v > %v", lo, hi)
	}
	return math.Min(math.Max(x, lo), hi), nil
}
