// Package atexit keeps teardown hooks that run when the process exits.
//
// Go has no C-style atexit, so programs that want the hooks to run call
// Exit instead of os.Exit, or defer Run in main.
package atexit

import (
	"errors"
	"os"
	"sync"
)

// MaxHooks is the number of hooks a registry accepts.
const MaxHooks = 32

var (
	// ErrFull is returned when a registry already holds MaxHooks hooks.
	ErrFull = errors.New("atexit: too many hooks registered")
	// ErrClosed is returned when registering after the hooks have run.
	ErrClosed = errors.New("atexit: hooks already run")
)

// Registry is an ordered set of teardown hooks.
type Registry struct {
	mu     sync.Mutex
	hooks  []func()
	closed bool
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register adds fn to the hooks run by Run.
func (r *Registry) Register(fn func()) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	if len(r.hooks) >= MaxHooks {
		return ErrFull
	}
	r.hooks = append(r.hooks, fn)
	return nil
}

// Run calls every registered hook once, most recent first. A hook that
// panics does not stop the others. Calling Run again does nothing.
func (r *Registry) Run() {
	r.mu.Lock()
	hooks := r.hooks
	r.hooks = nil
	r.closed = true
	r.mu.Unlock()

	for i := len(hooks) - 1; i >= 0; i-- {
		runHook(hooks[i])
	}
}

func runHook(fn func()) {
	defer func() {
		recover()
	}()
	fn()
}

var std = New()

// Default returns the process-wide registry.
func Default() *Registry {
	return std
}

// Register adds fn to the process-wide registry.
func Register(fn func()) error {
	return std.Register(fn)
}

// Run runs the process-wide hooks.
func Run() {
	std.Run()
}

// Exit runs the process-wide hooks and terminates the process with code.
func Exit(code int) {
	std.Run()
	os.Exit(code)
}
