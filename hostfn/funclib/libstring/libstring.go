// Copyright © 2025 The Tanuki authors

package libstring

import (
	"fmt"
	"strings"

	"github.com/tanukilang/tanuki/hostfn"
	"github.com/tanukilang/tanuki/hostfn/funclib/internal/libutil"
)

// DefaultPackageName is the package name used by LoadPackage.
const DefaultPackageName = "string"

// LoadPackage adds the string package to reg.
func LoadPackage(reg *hostfn.Registry) error {
	return libutil.LoadPackage(reg, DefaultPackageName, builtins)
}

var builtins = []*hostfn.Def{
	libutil.Function("uppercase", "Return str with all letters uppercased.",
		hostfn.TString,
		hostfn.Formals(hostfn.PT("str", hostfn.TString)),
		strings.ToUpper),
	libutil.Function("lowercase", "Return str with all letters lowercased.",
		hostfn.TString,
		hostfn.Formals(hostfn.PT("str", hostfn.TString)),
		strings.ToLower),
	libutil.Function("trim", "Return str with surrounding whitespace removed.",
		hostfn.TString,
		hostfn.Formals(hostfn.PT("str", hostfn.TString)),
		strings.TrimSpace),
	libutil.Function("contains?", "Return true when str contains substr.",
		hostfn.TBool,
		hostfn.Formals(hostfn.PT("str", hostfn.TString), hostfn.PT("substr", hostfn.TString)),
		strings.Contains),
	libutil.Function("repeat", "Return str repeated n times.",
		hostfn.TString,
		hostfn.Formals(hostfn.PT("str", hostfn.TString), hostfn.PT("n", hostfn.TInt)),
		strings.Repeat),
	libutil.Function("split", "Split str around each instance of sep.",
		hostfn.TList,
		hostfn.Formals(hostfn.PT("str", hostfn.TString), hostfn.PT("sep", hostfn.TString)),
		builtinSplit),
	libutil.Function("join", "Join the strings in list with sep between them.",
		hostfn.TString,
		hostfn.Formals(hostfn.PT("list", hostfn.TList), hostfn.PT("sep", hostfn.TString)),
		builtinJoin),
	libutil.Function("truncate",
		"Shorten str to at most n characters, appending suffix when cut.",
		hostfn.TString,
		hostfn.Formals(
			hostfn.PT("str", hostfn.TString),
			hostfn.PT("n", hostfn.TInt),
			hostfn.OptDefault("suffix", "..."),
		),
		builtinTruncate),
	libutil.Function("format", "Render format with values interpolated.",
		hostfn.TString,
		hostfn.Formals(hostfn.PT("format", hostfn.TString), hostfn.Rest("values")),
		builtinFormat),
}

func builtinSplit(args []interface{}) (interface{}, error) {
	str, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("first argument is not a string: %T", args[0])
	}
	sep, ok := args[1].(string)
	if !ok {
		return nil, fmt.Errorf("second argument is not a string: %T", args[1])
	}
	pieces := strings.Split(str, sep)
	list := make([]interface{}, len(pieces))
	for i, s := range pieces {
		list[i] = s
	}
	return list, nil
}

func builtinJoin(args []interface{}) (interface{}, error) {
	list, ok := args[0].([]interface{})
	if !ok {
		return nil, fmt.Errorf("first argument is not a list: %T", args[0])
	}
	sep, ok := args[1].(string)
	if !ok {
		return nil, fmt.Errorf("second argument is not a string: %T", args[1])
	}
	pieces := make([]string, len(list))
	for i, v := range list {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("list element %d is not a string: %T", i, v)
		}
		pieces[i] = s
	}
	return strings.Join(pieces, sep), nil
}

func builtinTruncate(args []interface{}) (interface{}, error) {
	str, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("first argument is not a string: %T", args[0])
	}
	n, ok := args[1].(int)
	if !ok {
		return nil, fmt.Errorf("second argument is not an int: %T", args[1])
	}
	suffix, ok := args[2].(string)
	if !ok {
		return nil, fmt.Errorf("third argument is not a string: %T", args[2])
	}
	if n < 0 {
		return str, nil
	}
	// Cut on a rune boundary so multi-byte text is never split mid-rune.
	runes := []rune(str)
	if len(runes) <= n {
		return str, nil
	}
	return string(runes[:n]) + suffix, nil
}

func builtinFormat(args []interface{}) (interface{}, error) {
	format, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("first argument is not a string: %T", args[0])
	}
	values, _ := args[1].([]interface{})
	return fmt.Sprintf(format, values...), nil
}
