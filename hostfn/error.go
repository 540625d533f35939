// Copyright © 2025 The Tanuki authors

package hostfn

import (
	"fmt"

	"github.com/tanukilang/tanuki/token"
)

// SignatureError reports a malformed callable declaration.  Signature
// errors surface at registration time, never during dispatch.
type SignatureError struct {
	// Fun is the callable's display name, if known.
	Fun string
	msg string
}

func (e *SignatureError) Error() string {
	if e.Fun == "" {
		return e.msg
	}
	return fmt.Sprintf("%s: %s", e.Fun, e.msg)
}

func sigErrorf(fun, format string, v ...interface{}) *SignatureError {
	return &SignatureError{Fun: fun, msg: fmt.Sprintf(format, v...)}
}

// ArityError reports a call with too few or too many positional arguments.
type ArityError struct {
	// Fun is the callable's display name.
	Fun string
	// NArgs is the number of positional arguments supplied.
	NArgs int
	// Min is the minimum number of required positional arguments.
	Min int
	// Max is the expected user parameter count, or -1 when a variadic tail
	// absorbs any surplus.
	Max int
	// Loc is the call site location, when known.
	Loc *token.Location
}

func (e *ArityError) Error() string {
	msg := fmt.Sprintf("%s: invalid number of arguments: %d", e.Fun, e.NArgs)
	if e.NArgs < e.Min {
		msg = fmt.Sprintf("%s (expected at least %d)", msg, e.Min)
	} else if e.Max >= 0 {
		msg = fmt.Sprintf("%s (expected at most %d)", msg, e.Max)
	}
	if e.Loc != nil {
		return fmt.Sprintf("%s: %s", e.Loc, msg)
	}
	return msg
}

// UnknownArgumentError reports a named argument whose name matches no
// caller-facing parameter.
type UnknownArgumentError struct {
	// Fun is the callable's display name.
	Fun string
	// Name is the unmatched argument name.
	Name string
	// Loc is the call site location, when known.
	Loc *token.Location
}

func (e *UnknownArgumentError) Error() string {
	msg := fmt.Sprintf("%s: unrecognized named argument: %v", e.Fun, e.Name)
	if e.Loc != nil {
		return fmt.Sprintf("%s: %s", e.Loc, msg)
	}
	return msg
}

// UnexpectedBlockError reports a block body passed to a callable that does
// not declare a block parameter.
type UnexpectedBlockError struct {
	Fun string
	Loc *token.Location
}

func (e *UnexpectedBlockError) Error() string {
	msg := fmt.Sprintf("%s: function does not take a block", e.Fun)
	if e.Loc != nil {
		return fmt.Sprintf("%s: %s", e.Loc, msg)
	}
	return msg
}

// locateError stamps the call site location onto binding errors that carry
// one.  Errors from the underlying callable are never touched; they
// propagate to the caller verbatim.
func locateError(err error, loc *token.Location) error {
	if loc == nil {
		return err
	}
	switch err := err.(type) {
	case *ArityError:
		err.Loc = loc
	case *UnknownArgumentError:
		err.Loc = loc
	case *UnexpectedBlockError:
		err.Loc = loc
	}
	return err
}
