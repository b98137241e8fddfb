//go:build windows

package dl

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// System opens libraries with LoadLibrary.
var System Opener = OpenerFunc(openLibrary)

type library struct {
	dll *windows.DLL
}

// openLibrary loads a dynamic library on Windows
func openLibrary(path string) (Library, error) {
	dll, err := windows.LoadDLL(path)
	if err != nil {
		return nil, fmt.Errorf("LoadDLL failed: %w", err)
	}
	return &library{dll: dll}, nil
}

func (l *library) Lookup(symbol string) (uintptr, error) {
	if l.dll == nil {
		return 0, fmt.Errorf("library not loaded")
	}
	proc, err := l.dll.FindProc(symbol)
	if err != nil {
		return 0, fmt.Errorf("FindProc(%s) failed: %w", symbol, err)
	}
	return proc.Addr(), nil
}

func (l *library) Close() error {
	if l.dll == nil {
		return nil
	}
	err := l.dll.Release()
	l.dll = nil
	return err
}
