// Copyright © 2025 The Tanuki authors

package libseq

import (
	"fmt"

	"github.com/tanukilang/tanuki/hostfn"
	"github.com/tanukilang/tanuki/hostfn/funclib/internal/libutil"
)

// DefaultPackageName is the package name used by LoadPackage.
const DefaultPackageName = "seq"

// LoadPackage adds the seq package to reg.
func LoadPackage(reg *hostfn.Registry) error {
	return libutil.LoadPackage(reg, DefaultPackageName, builtins)
}

var builtins = []*hostfn.Def{
	libutil.Function("list", "Collect the given values into a list.",
		hostfn.TList,
		hostfn.Formals(hostfn.Rest("values")),
		builtinList),
	libutil.Function("len", "Return the number of elements in seq.",
		hostfn.TInt,
		hostfn.Formals(hostfn.P("seq")),
		builtinLen),
	libutil.Function("nth", "Return element n of seq, or default when out of range.",
		hostfn.TAny,
		hostfn.Formals(
			hostfn.PT("seq", hostfn.TList),
			hostfn.PT("n", hostfn.TInt),
			hostfn.Opt("default"),
		),
		builtinNth),
	libutil.Function("reverse", "Return seq with its elements in reverse order.",
		hostfn.TList,
		hostfn.Formals(hostfn.PT("seq", hostfn.TList)),
		builtinReverse),
	libutil.Function("concat", "Concatenate the given lists into one.",
		hostfn.TList,
		hostfn.Formals(hostfn.RestOf("lists", hostfn.TList)),
		builtinConcat),
	libutil.Function("range", "Return integers from start up to but excluding stop.",
		hostfn.TList,
		hostfn.Formals(
			hostfn.PT("start", hostfn.TInt),
			hostfn.PT("stop", hostfn.TInt),
			hostfn.OptTyped("step", hostfn.TInt, 1),
		),
		builtinRange),
}

func builtinList(args []interface{}) (interface{}, error) {
	tail, _ := args[0].([]interface{})
	list := make([]interface{}, len(tail))
	copy(list, tail)
	return list, nil
}

func builtinLen(args []interface{}) (interface{}, error) {
	switch v := args[0].(type) {
	case nil:
		return 0, nil
	case string:
		return len(v), nil
	case []byte:
		return len(v), nil
	case []interface{}:
		return len(v), nil
	case map[string]interface{}:
		return len(v), nil
	}
	return nil, fmt.Errorf("argument is not a sequence: %T", args[0])
}

func builtinNth(args []interface{}) (interface{}, error) {
	seq, ok := args[0].([]interface{})
	if !ok {
		return nil, fmt.Errorf("first argument is not a list: %T", args[0])
	}
	n, ok := args[1].(int)
	if !ok {
		return nil, fmt.Errorf("second argument is not an int: %T", args[1])
	}
	if n < 0 || n >= len(seq) {
		return args[2], nil
	}
	return seq[n], nil
}

func builtinReverse(args []interface{}) (interface{}, error) {
	seq, ok := args[0].([]interface{})
	if !ok {
		return nil, fmt.Errorf("argument is not a list: %T", args[0])
	}
	list := make([]interface{}, len(seq))
	for i, v := range seq {
		list[len(seq)-1-i] = v
	}
	return list, nil
}

func builtinConcat(args []interface{}) (interface{}, error) {
	lists, _ := args[0].([]interface{})
	var out []interface{}
	for i, v := range lists {
		list, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("argument %d is not a list: %T", i+1, v)
		}
		out = append(out, list...)
	}
	if out == nil {
		out = []interface{}{}
	}
	return out, nil
}

func builtinRange(args []interface{}) (interface{}, error) {
	start, ok := args[0].(int)
	if !ok {
		return nil, fmt.Errorf("first argument is not an int: %T", args[0])
	}
	stop, ok := args[1].(int)
	if !ok {
		return nil, fmt.Errorf("second argument is not an int: %T", args[1])
	}
	step, ok := args[2].(int)
	if !ok {
		return nil, fmt.Errorf("third argument is not an int: %T", args[2])
	}
	if step == 0 {
		return nil, fmt.Errorf("step cannot be zero")
	}
	var out []interface{}
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, i)
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, i)
		}
	}
	if out == nil {
		out = []interface{}{}
	}
	return out, nil
}
