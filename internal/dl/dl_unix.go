//go:build darwin || freebsd || linux

package dl

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// System opens libraries with the platform dynamic linker.
var System Opener = OpenerFunc(openLibrary)

type library struct {
	handle uintptr
}

// openLibrary loads a dynamic library on Unix-like systems
func openLibrary(path string) (Library, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW)
	if err != nil {
		return nil, fmt.Errorf("dlopen %s: %w", path, err)
	}
	return &library{handle: handle}, nil
}

func (l *library) Lookup(symbol string) (uintptr, error) {
	return purego.Dlsym(l.handle, symbol)
}

func (l *library) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := purego.Dlclose(l.handle)
	l.handle = 0
	return err
}
