// Copyright © 2025 The Tanuki authors

// Package funclib loads the standard builtin function library.  The
// builtins registered here form the fixed, closed set of statically known
// host functions the identity cache in hostfn is specialized for.
package funclib

import (
	"github.com/tanukilang/tanuki/hostfn"
	"github.com/tanukilang/tanuki/hostfn/funclib/libdebug"
	"github.com/tanukilang/tanuki/hostfn/funclib/libmath"
	"github.com/tanukilang/tanuki/hostfn/funclib/libseq"
	"github.com/tanukilang/tanuki/hostfn/funclib/libstring"
	"github.com/tanukilang/tanuki/hostfn/funclib/libtime"
)

// LoadLibrary loads all the standard library packages into reg.
func LoadLibrary(reg *hostfn.Registry) error {
	loaders := []func(*hostfn.Registry) error{
		libstring.LoadPackage,
		libmath.LoadPackage,
		libseq.LoadPackage,
		libtime.LoadPackage,
		libdebug.LoadPackage,
	}
	for _, load := range loaders {
		if err := load(reg); err != nil {
			return err
		}
	}
	return nil
}
