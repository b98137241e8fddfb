//go:build !darwin && !freebsd && !linux && !windows

package dl

import (
	"fmt"
	"runtime"
)

// System refuses every library on platforms without a supported loader.
var System Opener = OpenerFunc(func(name string) (Library, error) {
	return nil, fmt.Errorf("dl: dynamic loading unsupported on %s", runtime.GOOS)
})
