// Copyright © 2025 The Tanuki authors

// Package libutil contains helpers shared by the funclib packages.
package libutil

import (
	"github.com/tanukilang/tanuki/hostfn"
)

// Function builds a builtin function definition.
func Function(name, doc string, ret hostfn.Type, formals []hostfn.Param, fn interface{}) *hostfn.Def {
	return &hostfn.Def{
		Name:    name,
		Doc:     doc,
		Returns: ret,
		Formals: formals,
		Fn:      fn,
	}
}

// LoadPackage registers defs under pkg-qualified names ("pkg:name").
func LoadPackage(reg *hostfn.Registry, pkg string, defs []*hostfn.Def) error {
	for _, def := range defs {
		qualified := *def
		qualified.Name = pkg + ":" + def.Name
		if _, err := reg.Register(nil, &qualified); err != nil {
			return err
		}
	}
	return nil
}
