// Copyright © 2025 The Tanuki authors

package hostfn

import "sync"

// Future is the single awaitable value shape for host callables returning
// results asynchronously.  A Future resolves exactly once; Await blocks the
// calling evaluation until resolution without holding any lock across the
// suspension.
type Future struct {
	done chan struct{}
	once sync.Once
	val  interface{}
	err  error
}

// NewFuture returns an unresolved Future.
func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// CompletedFuture returns a Future already resolved with v and err.
func CompletedFuture(v interface{}, err error) *Future {
	f := NewFuture()
	f.Complete(v, err)
	return f
}

// GoFuture runs fn on its own goroutine and returns a Future resolved with
// its result.
func GoFuture(fn func() (interface{}, error)) *Future {
	f := NewFuture()
	go func() {
		f.Complete(fn())
	}()
	return f
}

// Complete resolves the future.  Calls after the first are ignored.
func (f *Future) Complete(v interface{}, err error) {
	f.once.Do(func() {
		f.val = v
		f.err = err
		close(f.done)
	})
}

// Await blocks until the future resolves and returns its result.
func (f *Future) Await() (interface{}, error) {
	<-f.done
	return f.val, f.err
}

// Done returns a channel closed when the future resolves.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Resolved reports whether the future has resolved without blocking.
func (f *Future) Resolved() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// TextFuture is an awaitable holding text.  It is the only other awaitable
// shape the dispatcher unwraps; callables declaring any other asynchronous
// return fail at registration time.
type TextFuture struct {
	fut *Future
}

// NewTextFuture returns an unresolved TextFuture.
func NewTextFuture() *TextFuture {
	return &TextFuture{fut: NewFuture()}
}

// CompletedTextFuture returns a TextFuture already resolved with s and err.
func CompletedTextFuture(s string, err error) *TextFuture {
	t := NewTextFuture()
	t.Complete(s, err)
	return t
}

// Complete resolves the future.  Calls after the first are ignored.
func (t *TextFuture) Complete(s string, err error) {
	t.fut.Complete(s, err)
}

// Await blocks until the future resolves and returns its text.
func (t *TextFuture) Await() (string, error) {
	v, err := t.fut.Await()
	s, _ := v.(string)
	return s, err
}

// Generalize adapts the text future into the plain Future shape.
func (t *TextFuture) Generalize() *Future {
	return t.fut
}
