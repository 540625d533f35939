// Copyright © 2025 The Tanuki authors

package libtime

import (
	"fmt"
	"time"

	"github.com/tanukilang/tanuki/hostfn"
	"github.com/tanukilang/tanuki/hostfn/funclib/internal/libutil"
)

// DefaultPackageName is the package name used by LoadPackage.
const DefaultPackageName = "time"

// LoadPackage adds the time package to reg.
func LoadPackage(reg *hostfn.Registry) error {
	return libutil.LoadPackage(reg, DefaultPackageName, builtins)
}

var builtins = []*hostfn.Def{
	libutil.Function("now", "Return the current time in RFC 3339 format.",
		hostfn.TString,
		hostfn.Formals(),
		builtinNow),
	libutil.Function("sleep", "Resolve to nil after ms milliseconds.",
		hostfn.TFuture,
		hostfn.Formals(hostfn.PT("ms", hostfn.TInt)),
		builtinSleep),
	libutil.Function("delay-text", "Resolve to text after ms milliseconds.",
		hostfn.TTextFuture,
		hostfn.Formals(hostfn.PT("text", hostfn.TString), hostfn.PT("ms", hostfn.TInt)),
		builtinDelayText),
}

func builtinNow(args []interface{}) (interface{}, error) {
	return time.Now().Format(time.RFC3339), nil
}

func milliseconds(v interface{}) (time.Duration, error) {
	ms, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("argument is not an int: %T", v)
	}
	if ms < 0 {
		return 0, fmt.Errorf("negative duration: %d", ms)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func builtinSleep(args []interface{}) (interface{}, error) {
	d, err := milliseconds(args[0])
	if err != nil {
		return nil, err
	}
	return hostfn.GoFuture(func() (interface{}, error) {
		time.Sleep(d)
		return nil, nil
	}), nil
}

func builtinDelayText(args []interface{}) (interface{}, error) {
	text, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("first argument is not a string: %T", args[0])
	}
	d, err := milliseconds(args[1])
	if err != nil {
		return nil, err
	}
	fut := hostfn.NewTextFuture()
	go func() {
		time.Sleep(d)
		fut.Complete(text, nil)
	}()
	return fut, nil
}
