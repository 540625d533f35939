// Copyright © 2025 The Tanuki authors

package hostfn

import (
	"sync"
)

// Registry maps function names to bound functions.  Registries are written
// during startup, while packages load their builtins, and read-mostly
// afterwards; a lock guards registration so embedders may add functions
// lazily.
type Registry struct {
	mu    sync.RWMutex
	funs  map[string]*BoundFunction
	order []string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{funs: make(map[string]*BoundFunction)}
}

// Register creates a bound function for def and adds it under its name.
func (r *Registry) Register(target interface{}, def *Def) (*BoundFunction, error) {
	fun, err := Create(target, def)
	if err != nil {
		return nil, err
	}
	if err := r.Add(fun); err != nil {
		return nil, err
	}
	return fun, nil
}

// Add inserts an already bound function, failing when the name is taken.
func (r *Registry) Add(fun *BoundFunction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.funs[fun.Name()]; ok {
		return sigErrorf(fun.Name(), "function already registered")
	}
	r.funs[fun.Name()] = fun
	r.order = append(r.order, fun.Name())
	return nil
}

// Lookup returns the bound function registered under name, or nil.
func (r *Registry) Lookup(name string) *BoundFunction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.funs[name]
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered functions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.funs)
}
