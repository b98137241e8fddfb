// Package dl opens shared libraries and looks up symbols in them.
//
// The loader is deliberately plain: it tries an ordered list of library
// names, keeps the first one that opens, and never logs or retries.
package dl

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by OpenFirst when none of the candidates open.
var ErrNotFound = errors.New("dl: no candidate library could be opened")

// Library is an opened shared library.
type Library interface {
	// Lookup returns the address of the named symbol.
	Lookup(symbol string) (uintptr, error)
	// Close releases the library handle.
	Close() error
}

// Opener opens a shared library by file name or path.
type Opener interface {
	Open(name string) (Library, error)
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(name string) (Library, error)

func (f OpenerFunc) Open(name string) (Library, error) {
	return f(name)
}

// OpenFirst opens the first name in names that the opener accepts and
// returns the library together with the name that succeeded. Order is
// significant: the first success wins.
func OpenFirst(o Opener, names []string) (Library, string, error) {
	var lastErr error
	for _, name := range names {
		lib, err := o.Open(name)
		if err == nil && lib != nil {
			return lib, name, nil
		}
		lastErr = err
	}
	if lastErr != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrNotFound, lastErr)
	}
	return nil, "", ErrNotFound
}
